package matching

import (
	"math"
	"sort"
	"strings"

	"feasibility-backend/internal/employees"
)

// One ordinal step of seniority mismatch costs this many points.
const seniorityStepPenalty = 25.0

// Engine scores a talent pool against role requirements. It is stateless
// apart from its weights and safe for concurrent use.
type Engine struct {
	weights Weights
}

// NewEngine constructs an Engine, validating the weights.
func NewEngine(weights Weights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: weights}, nil
}

// Rank scores every candidate in the pool against the role and returns the
// full result ordered best-first. Scoring is eager and pure: identical inputs
// always produce identical output. An empty pool yields an empty slice.
//
// Ordering: composite score descending, then hourly rate ascending, then
// name ascending.
func (e *Engine) Rank(role RoleRequirement, pool []employees.Employee) []MatchScore {
	scores := make([]MatchScore, 0, len(pool))
	for _, candidate := range pool {
		scores = append(scores, e.Score(role, candidate))
	}

	sort.Slice(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.HourlyRate != b.HourlyRate {
			return a.HourlyRate < b.HourlyRate
		}
		return a.Name < b.Name
	})
	return scores
}

// Score computes the composite MatchScore for one candidate.
func (e *Engine) Score(role RoleRequirement, candidate employees.Employee) MatchScore {
	skillScore, matched := scoreSkills(role.Skills, candidate.Skills)

	components := ComponentScores{
		Skill:        skillScore,
		Seniority:    scoreSeniority(role.Seniority, candidate.Seniority),
		Rate:         scoreRate(role.RateCeiling, candidate.HourlyRate),
		Availability: scoreAvailability(candidate.Availability),
	}

	composite := e.weights.Skill*components.Skill +
		e.weights.Seniority*components.Seniority +
		e.weights.Rate*components.Rate +
		e.weights.Availability*components.Availability

	return MatchScore{
		EmployeeID:     candidate.ID,
		Name:           candidate.Name,
		Title:          candidate.Title,
		SeniorityLevel: candidate.Seniority.String(),
		Role:           role.Role,
		HourlyRate:     candidate.HourlyRate,
		Availability:   candidate.Availability,
		Score:          roundOneDecimal(composite),
		Components:     components,
		MatchingSkills: matched,
	}
}

// scoreSkills produces the [0,100] skill component: the importance-weighted
// mean of per-skill scores. A role with no weighted skill requirements is
// vacuously satisfied and scores 100.
func scoreSkills(required []RequiredSkill, skills []employees.Skill) (float64, []MatchedSkill) {
	var weightedSum, totalWeight float64
	matched := make([]MatchedSkill, 0, len(required))

	for _, req := range required {
		score, ok := ScoreSkill(req, skills)
		if ok {
			for _, s := range skills {
				if equalFoldTrim(s.Name, req.Name) {
					matched = append(matched, MatchedSkill{
						Name:            s.Name,
						Proficiency:     s.Proficiency,
						YearsExperience: s.YearsExperience,
					})
					break
				}
			}
		}
		if req.Weight <= 0 {
			continue
		}
		weightedSum += score * req.Weight
		totalWeight += req.Weight
	}

	if totalWeight == 0 {
		return 100, matched
	}
	return (weightedSum / totalWeight) * 100, matched
}

// scoreSeniority gives 100 for an exact level match and deducts a fixed
// penalty per ordinal step of distance, floored at 0. An unknown target
// level scores every candidate 100 rather than penalizing the whole pool.
func scoreSeniority(target, candidate employees.Seniority) float64 {
	if target == employees.SeniorityUnknown {
		return 100
	}
	steps := int(target) - int(candidate)
	if steps < 0 {
		steps = -steps
	}
	score := 100 - float64(steps)*seniorityStepPenalty
	if score < 0 {
		return 0
	}
	return score
}

// scoreRate gives 100 at or under the ceiling; over-budget candidates decay
// proportionally to how far over they are. Under-budget earns no bonus.
// A non-positive ceiling means the role carries no rate constraint.
func scoreRate(ceiling, rate float64) float64 {
	if ceiling <= 0 || rate <= ceiling {
		return 100
	}
	over := (rate - ceiling) / ceiling
	score := 100 * (1 - over)
	if score < 0 {
		return 0
	}
	return score
}

func scoreAvailability(availability float64) float64 {
	if availability < 0 {
		return 0
	}
	if availability > 100 {
		return 100
	}
	return availability
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
