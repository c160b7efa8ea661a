package employees

import "strings"

// Seniority is an ordinal career level. Higher values outrank lower ones.
type Seniority int

const (
	SeniorityUnknown Seniority = iota
	SeniorityJunior
	SeniorityMid
	SenioritySenior
	SeniorityLead
	SeniorityPrincipal
)

// ParseSeniority maps a free-form level name to its ordinal. Unknown values
// map to SeniorityUnknown so callers can decide how to treat them.
func ParseSeniority(raw string) Seniority {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "junior", "jr":
		return SeniorityJunior
	case "mid", "mid-level", "intermediate":
		return SeniorityMid
	case "senior", "sr":
		return SenioritySenior
	case "lead":
		return SeniorityLead
	case "principal", "staff":
		return SeniorityPrincipal
	default:
		return SeniorityUnknown
	}
}

func (s Seniority) String() string {
	switch s {
	case SeniorityJunior:
		return "Junior"
	case SeniorityMid:
		return "Mid"
	case SenioritySenior:
		return "Senior"
	case SeniorityLead:
		return "Lead"
	case SeniorityPrincipal:
		return "Principal"
	default:
		return "Unknown"
	}
}

// Skill is one proficiency record on an employee profile.
type Skill struct {
	Name            string  `json:"name"`
	Proficiency     int     `json:"proficiency"` // 1-5
	YearsExperience float64 `json:"yearsExperience"`
	IsPrimary       bool    `json:"isPrimary"`
}

// Employee is a read-only snapshot of one member of the talent pool.
type Employee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Seniority    Seniority `json:"-"`
	HourlyRate   float64   `json:"hourlyRate"`
	Availability float64   `json:"availabilityPercentage"` // 0-100
	Active       bool      `json:"active"`
	Skills       []Skill   `json:"skills"`
}
