package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"feasibility-backend/internal/matching"
)

const defaultHoursPerWeek = 40

// TeamRole is one planned position in the estimated team. RecommendedEmployees
// is filled in after parsing by the matching enrichment step.
type TeamRole struct {
	Role                 string                `json:"role"`
	Seniority            string                `json:"seniority"`
	HoursPerWeek         int                   `json:"hours_per_week"`
	DurationWeeks        int                   `json:"duration_weeks"`
	HourlyRate           float64               `json:"hourly_rate"`
	KeyResponsibilities  []string              `json:"key_responsibilities,omitempty"`
	Justification        string                `json:"justification,omitempty"`
	RecommendedEmployees []matching.MatchScore `json:"recommended_employees,omitempty"`
}

// Expected shape (named optional sections survive enrichment, anything else
// is dropped when the payload is rewritten with recommendations):
// {
//   "team_composition": [
//     { "role": "string", "seniority": "Junior|Mid|Senior|Lead",
//       "hours_per_week": 40, "duration_weeks": 12, "hourly_rate": 75,
//       "key_responsibilities": ["string"], "justification": "string" }
//   ],
//   "cost_breakdown": { ... },
//   "timeline_breakdown": { ... },
//   "feasibility_assessment": { ... }
// }
type EstimationResult struct {
	TeamComposition       []TeamRole      `json:"team_composition"`
	CostBreakdown         json.RawMessage `json:"cost_breakdown,omitempty"`
	TimelineBreakdown     json.RawMessage `json:"timeline_breakdown,omitempty"`
	FeasibilityAssessment json.RawMessage `json:"feasibility_assessment,omitempty"`
}

const estimationPromptTemplate = `You are the estimation analyst for a software project feasibility assessment.

Using the project description, the intake analysis and the technical
recommendations below, plan the delivery team and estimate cost and timeline.
Rates are in USD per hour.

Respond with a single JSON object and nothing else:
{
  "team_composition": [
    {
      "role": "Frontend Developer|Backend Developer|Full Stack Developer|Mobile Developer|AI Engineer|DevOps Engineer|UI/UX Designer|QA Engineer",
      "seniority": "Junior|Mid|Senior|Lead",
      "hours_per_week": 40,
      "duration_weeks": 12,
      "hourly_rate": 75,
      "key_responsibilities": ["string"],
      "justification": "why this role at this seniority"
    }
  ],
  "timeline_breakdown": {
    "phases": [ { "name": "string", "duration_weeks": 2 } ],
    "total_duration_weeks": 14
  },
  "cost_breakdown": {
    "development_cost": 0,
    "contingency_percent": 15,
    "total_estimated_cost": 0
  },
  "feasibility_assessment": {
    "overall_feasibility": "high|medium|low",
    "technical_feasibility": "high|medium|low",
    "timeline_feasibility": "high|medium|low",
    "key_concerns": ["string"]
  }
}
Every team_composition entry must have hourly_rate > 0 and duration_weeks > 0.

Project description:
%s
%s
Intake analysis:
%s

Technical recommendations:
%s`

// EstimationStage plans the team and estimates cost and timeline. Requires
// the intake and technical payloads.
type EstimationStage struct{}

func (EstimationStage) Name() string { return StageEstimation }

func (EstimationStage) BuildPrompt(req Request, prior Context) (string, error) {
	if len(prior.Intake) == 0 || len(prior.Technical) == 0 {
		return "", fmt.Errorf("estimation stage requires intake and technical payloads")
	}
	return fmt.Sprintf(estimationPromptTemplate,
		req.Description, requestContextBlock(req), prior.Intake, prior.Technical), nil
}

func (EstimationStage) Parse(raw string) (json.RawMessage, error) {
	payload := stripCodeFence(raw)
	var result EstimationResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, invalid(StageEstimation, "", "response is not valid JSON: "+err.Error())
	}
	if len(result.TeamComposition) == 0 {
		return nil, invalid(StageEstimation, "team_composition", "must be a non-empty array")
	}
	for i, role := range result.TeamComposition {
		field := fmt.Sprintf("team_composition[%d]", i)
		if strings.TrimSpace(role.Role) == "" {
			return nil, invalid(StageEstimation, field+".role", "must be a non-empty string")
		}
		if strings.TrimSpace(role.Seniority) == "" {
			return nil, invalid(StageEstimation, field+".seniority", "must be a non-empty string")
		}
		if role.HourlyRate <= 0 {
			return nil, invalid(StageEstimation, field+".hourly_rate", "must be greater than zero")
		}
		if role.DurationWeeks <= 0 {
			return nil, invalid(StageEstimation, field+".duration_weeks", "must be greater than zero")
		}
	}
	return json.RawMessage(payload), nil
}

// DecodeEstimation re-reads a stored estimation payload, applying the
// hours-per-week default to entries that omitted it.
func DecodeEstimation(payload json.RawMessage) (EstimationResult, error) {
	var result EstimationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return EstimationResult{}, fmt.Errorf("decode estimation payload: %w", err)
	}
	for i := range result.TeamComposition {
		if result.TeamComposition[i].HoursPerWeek <= 0 {
			result.TeamComposition[i].HoursPerWeek = defaultHoursPerWeek
		}
	}
	return result, nil
}
