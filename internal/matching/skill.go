package matching

import (
	"strings"

	"feasibility-backend/internal/employees"
)

const (
	proficiencyMax = 5.0

	// Experience contributes a diminishing bonus on top of proficiency:
	// years are normalized against referenceYears, capped, then weighted.
	referenceYears   = 10.0
	experienceCap    = 1.0
	experienceWeight = 0.15

	primarySkillBonus = 0.10
)

// ScoreSkill computes the unit-interval score for one required skill against
// a candidate's skill records. Lookup is case-insensitive exact-name match;
// no fuzzy or synonym matching. Absent skills score 0 and report matched=false.
func ScoreSkill(required RequiredSkill, skills []employees.Skill) (float64, bool) {
	for _, s := range skills {
		if !strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(required.Name)) {
			continue
		}

		score := float64(s.Proficiency) / proficiencyMax

		exp := s.YearsExperience / referenceYears
		if exp > experienceCap {
			exp = experienceCap
		}
		if exp > 0 {
			score += exp * experienceWeight
		}

		if s.IsPrimary {
			score += primarySkillBonus
		}

		if score > 1.0 {
			score = 1.0
		}
		if score < 0 {
			score = 0
		}
		return score, true
	}
	return 0, false
}
