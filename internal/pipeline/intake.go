package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Expected shape (extra fields are preserved in the stored payload):
// {
//   "project_summary": "string",
//   "project_type": "web_app | mobile_app | api | ai_ml | other",
//   "domain": "string",
//   "core_features": ["string"],
//   "target_users": "string",
//   "key_requirements": { "functional": ["string"], "non_functional": ["string"] },
//   "complexity_indicators": { "overall_complexity_summary": "string" }
// }
type IntakeResult struct {
	ProjectSummary string   `json:"project_summary"`
	CoreFeatures   []string `json:"core_features"`
}

const intakePromptTemplate = `You are the intake analyst for a software project feasibility assessment.

Read the project description below, extract every stated or implied feature,
classify the project, and summarize what the project aims to achieve and for
whom.

Respond with a single JSON object and nothing else:
{
  "project_summary": "3-5 sentence summary of what the project does and why it matters",
  "project_type": "web_app|mobile_app|desktop_app|api|ai_ml|data_analytics|other",
  "domain": "e-commerce|healthcare|finance|education|entertainment|productivity|other",
  "core_features": ["every feature mentioned or implied, one entry each"],
  "target_users": "who will use this and what they need",
  "key_requirements": {
    "functional": ["specific functional requirement"],
    "non_functional": ["specific performance, security or scale requirement"]
  },
  "complexity_indicators": {
    "data_complexity": "low|medium|high",
    "integration_complexity": "low|medium|high",
    "overall_complexity_summary": "2-3 sentences"
  }
}

Project description:
%s
%s`

// IntakeStage extracts a structured understanding of the project from the
// free-form description. It is the first stage and uses no prior context.
type IntakeStage struct{}

func (IntakeStage) Name() string { return StageIntake }

func (IntakeStage) BuildPrompt(req Request, _ Context) (string, error) {
	return fmt.Sprintf(intakePromptTemplate, req.Description, requestContextBlock(req)), nil
}

func (IntakeStage) Parse(raw string) (json.RawMessage, error) {
	payload := stripCodeFence(raw)
	var result IntakeResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, invalid(StageIntake, "", "response is not valid JSON: "+err.Error())
	}
	if strings.TrimSpace(result.ProjectSummary) == "" {
		return nil, invalid(StageIntake, "project_summary", "must be a non-empty string")
	}
	if len(result.CoreFeatures) == 0 {
		return nil, invalid(StageIntake, "core_features", "must be a non-empty array")
	}
	return json.RawMessage(payload), nil
}

// requestContextBlock renders the optional request fields as a trailing
// context section, omitted entirely when none are set.
func requestContextBlock(req Request) string {
	var lines []string
	if req.CompanySize != "" {
		lines = append(lines, "Company size: "+req.CompanySize)
	}
	if req.BudgetRange != "" {
		lines = append(lines, "Budget range: "+req.BudgetRange)
	}
	if req.TimelinePreference != "" {
		lines = append(lines, "Timeline preference: "+req.TimelinePreference)
	}
	if req.Industry != "" {
		lines = append(lines, "Industry: "+req.Industry)
	}
	if len(lines) == 0 {
		return ""
	}
	return "\nAdditional context:\n" + strings.Join(lines, "\n") + "\n"
}
