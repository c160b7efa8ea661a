package matching

import (
	"fmt"
	"math"

	"feasibility-backend/internal/employees"
)

// RequiredSkill is one skill demanded by a role. Weight expresses relative
// importance in the composite skill score; zero-weight skills are
// informational only and do not move the score.
type RequiredSkill struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// RoleRequirement describes one role to staff.
type RoleRequirement struct {
	Role          string              `json:"role"`
	Seniority     employees.Seniority `json:"-"`
	Skills        []RequiredSkill     `json:"skills"`
	RateCeiling   float64             `json:"rate_ceiling"`
	DurationWeeks int                 `json:"duration_weeks"`
}

// MatchedSkill records one required skill the candidate actually has.
type MatchedSkill struct {
	Name            string  `json:"name"`
	Proficiency     int     `json:"proficiency"`
	YearsExperience float64 `json:"years_experience"`
}

// ComponentScores holds the per-dimension scores, each on [0,100].
type ComponentScores struct {
	Skill        float64 `json:"skill"`
	Seniority    float64 `json:"seniority"`
	Rate         float64 `json:"rate"`
	Availability float64 `json:"availability"`
}

// MatchScore is the Engine's verdict for one (employee, role) pair. It is
// derived data: recomputed per request, never persisted on its own. Field
// names serialize snake_case to sit consistently inside stage payloads,
// which use snake_case throughout.
type MatchScore struct {
	EmployeeID     string          `json:"employee_id"`
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	SeniorityLevel string          `json:"seniority_level"`
	Role           string          `json:"role"`
	HourlyRate     float64         `json:"hourly_rate"`
	Availability   float64         `json:"availability_percentage"`
	Score          float64         `json:"match_score"` // composite, [0,100], one decimal
	Components     ComponentScores `json:"components"`
	MatchingSkills []MatchedSkill  `json:"matching_skills"`
}

// Weights combines the four component scores into the composite. The four
// values must sum to 1.
type Weights struct {
	Skill        float64
	Seniority    float64
	Rate         float64
	Availability float64
}

// DefaultWeights returns the standard combination weights.
func DefaultWeights() Weights {
	return Weights{Skill: 0.5, Seniority: 0.2, Rate: 0.15, Availability: 0.15}
}

// Validate checks that all weights are non-negative and sum to 1.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Skill, w.Seniority, w.Rate, w.Availability} {
		if v < 0 {
			return fmt.Errorf("match weights must be non-negative, got %+v", w)
		}
	}
	sum := w.Skill + w.Seniority + w.Rate + w.Availability
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("match weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}
