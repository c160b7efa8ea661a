package pipeline

import "fmt"

// ValidationError reports a model response that failed the stage's schema
// checks. The orchestrator treats it as retryable.
type ValidationError struct {
	Stage  string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s stage: field %q: %s", e.Stage, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s stage: %s", e.Stage, e.Reason)
}

func invalid(stage, field, reason string) error {
	return &ValidationError{Stage: stage, Field: field, Reason: reason}
}
