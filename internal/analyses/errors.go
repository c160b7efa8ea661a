package analyses

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters")
	ErrDescriptionTooLong  = errors.New("description must be at most 5000 characters")
)

const (
	ErrorCodeValidation        = "VALIDATION_ERROR"
	ErrorCodeLLMTimeout        = "LLM_TIMEOUT"
	ErrorCodeLLMSchemaMismatch = "LLM_SCHEMA_MISMATCH"
	ErrorCodeStorage           = "STORAGE_ERROR"
	ErrorCodeInternal          = "INTERNAL_ERROR"
)

// StageExhaustedError reports a stage that failed every allowed attempt.
type StageExhaustedError struct {
	Stage      string
	Attempts   int
	LastReason string
}

func (e *StageExhaustedError) Error() string {
	return fmt.Sprintf("%s stage failed after %d attempts: %s", e.Stage, e.Attempts, e.LastReason)
}
