// Package pipeline defines the sequential analysis stages a feasibility
// report moves through and the prompt/response contract for each of them.
package pipeline

import "encoding/json"

// Stage names in execution order.
const (
	StageIntake     = "intake"
	StageTechnical  = "technical"
	StageEstimation = "estimation"
	StageSummary    = "summary"
)

// Request carries the caller-supplied project details. Only Description is
// required; the remaining fields give the model extra context when present.
type Request struct {
	Description        string `json:"description"`
	CompanySize        string `json:"company_size,omitempty"`
	BudgetRange        string `json:"budget_range,omitempty"`
	TimelinePreference string `json:"timeline_preference,omitempty"`
	Industry           string `json:"industry,omitempty"`
}

// Context accumulates the validated payloads of stages that have already
// completed. Each stage reads the payloads it depends on and never mutates
// them.
type Context struct {
	Intake     json.RawMessage
	Technical  json.RawMessage
	Estimation json.RawMessage
}

// Stage is a single step of the analysis pipeline. BuildPrompt renders the
// model prompt from the request and prior results; Parse validates the raw
// model output and returns the payload to store.
type Stage interface {
	Name() string
	BuildPrompt(req Request, prior Context) (string, error)
	Parse(raw string) (json.RawMessage, error)
}

// Stages returns the pipeline in execution order.
func Stages() []Stage {
	return []Stage{
		IntakeStage{},
		TechnicalStage{},
		EstimationStage{},
		SummaryStage{},
	}
}
