package analyses

import (
	"encoding/json"
	"time"

	"feasibility-backend/internal/pipeline"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

const (
	StageStatusOK     = "ok"
	StageStatusFailed = "failed"
)

// StageResult records the outcome of one pipeline stage. Exactly one result
// is appended per stage, after it succeeds or exhausts its retries.
type StageResult struct {
	Stage        string          `json:"stage"`
	Status       string          `json:"status"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	AttemptCount int             `json:"attemptCount"`
	Error        string          `json:"error,omitempty"`
}

// Analysis is a feasibility analysis job. Stages holds the per-stage results
// in execution order; on failure the results of stages that completed before
// the failing one are preserved.
type Analysis struct {
	ID          string           `json:"id"`
	Request     pipeline.Request `json:"request"`
	Status      string           `json:"status"`
	Stages      []StageResult    `json:"stages"`
	ErrorCode   string           `json:"errorCode,omitempty"`
	Error       string           `json:"error,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	StartedAt   *time.Time       `json:"startedAt,omitempty"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
}

// StagePayload returns the stored payload of the named stage, or nil when the
// stage has no successful result yet.
func (a Analysis) StagePayload(stage string) json.RawMessage {
	for _, r := range a.Stages {
		if r.Stage == stage && r.Status == StageStatusOK {
			return r.Payload
		}
	}
	return nil
}
