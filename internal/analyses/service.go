package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"feasibility-backend/internal/employees"
	"feasibility-backend/internal/llm"
	"feasibility-backend/internal/matching"
	"feasibility-backend/internal/pipeline"
	"feasibility-backend/internal/shared/metrics"
	"feasibility-backend/internal/shared/telemetry"
)

const (
	descriptionMinChars = 10
	descriptionMaxChars = 5000

	defaultMaxAttempts    = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
	defaultTopCandidates  = 3
)

// Service contains business logic for feasibility analyses.
type Service struct {
	Repo      Repo
	LLM       llm.Client
	Employees employees.Repo
	Matcher   *matching.Engine

	// Stages overrides the default pipeline; used by tests.
	Stages []pipeline.Stage

	MaxAttempts    int
	RetryBaseDelay time.Duration
	TopCandidates  int

	// CandidateFilter drops ranked candidates below the configured floors
	// before recommendations are truncated. The zero value admits everyone.
	CandidateFilter matching.Predicate
}

// Submit validates the request, records a pending analysis and kicks off the
// pipeline in the background. The caller gets the pending record immediately.
func (s *Service) Submit(ctx context.Context, req pipeline.Request) (Analysis, error) {
	req.Description = strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(req.Description) < descriptionMinChars {
		return Analysis{}, ErrDescriptionTooShort
	}
	if utf8.RuneCountInString(req.Description) > descriptionMaxChars {
		return Analysis{}, ErrDescriptionTooLong
	}

	analysis := Analysis{
		ID:        uuid.NewString(),
		Request:   req,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	go s.runPipeline(backgroundWithRequestID(ctx), analysis.ID)

	return analysis, nil
}

// Get returns an analysis by ID.
func (s *Service) Get(ctx context.Context, analysisID string) (Analysis, error) {
	if analysisID == "" {
		return Analysis{}, errors.New("analysisID is required")
	}
	return s.Repo.GetByID(ctx, analysisID)
}

// List returns analyses ordered newest-first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) runPipeline(ctx context.Context, analysisID string) {
	defer func() {
		if r := recover(); r != nil {
			s.failAnalysis(ctx, analysisID, fmt.Errorf("panic: %v", r), nil)
		}
	}()

	startedAt := time.Now().UTC()
	if err := s.Repo.SetProcessing(ctx, analysisID, startedAt); err != nil {
		s.failAnalysis(ctx, analysisID, fmt.Errorf("set processing failed: %w", err), &startedAt)
		return
	}

	analysis, err := s.Repo.GetByID(ctx, analysisID)
	if err != nil {
		s.failAnalysis(ctx, analysisID, fmt.Errorf("analysis lookup: %w", err), &startedAt)
		return
	}
	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"analysis_id":       analysisID,
		"status":            StatusProcessing,
		"status_transition": "pending->processing",
	})
	if s.LLM == nil {
		s.failAnalysis(ctx, analysisID, errors.New("missing llm client"), &startedAt)
		return
	}

	var prior pipeline.Context
	for _, stage := range s.stages() {
		payload, attempts, err := s.runStage(ctx, analysis.Request, stage, prior)
		if err != nil {
			appendErr := s.Repo.AppendStageResult(ctx, analysisID, StageResult{
				Stage:        stage.Name(),
				Status:       StageStatusFailed,
				AttemptCount: attempts,
				Error:        sanitizeError(err),
			})
			if appendErr != nil {
				err = fmt.Errorf("%w (record stage result: %v)", err, appendErr)
			}
			s.failAnalysis(ctx, analysisID, err, &startedAt)
			return
		}

		if stage.Name() == pipeline.StageEstimation {
			payload = s.enrichEstimation(ctx, analysisID, payload, prior.Technical)
		}

		if err := s.Repo.AppendStageResult(ctx, analysisID, StageResult{
			Stage:        stage.Name(),
			Status:       StageStatusOK,
			Payload:      payload,
			AttemptCount: attempts,
		}); err != nil {
			s.failAnalysis(ctx, analysisID, fmt.Errorf("record stage result failed: %w", err), &startedAt)
			return
		}

		switch stage.Name() {
		case pipeline.StageIntake:
			prior.Intake = payload
		case pipeline.StageTechnical:
			prior.Technical = payload
		case pipeline.StageEstimation:
			prior.Estimation = payload
		}
	}

	completedAt := time.Now().UTC()
	if err := s.Repo.Complete(ctx, analysisID, completedAt); err != nil {
		s.failAnalysis(ctx, analysisID, fmt.Errorf("set analysis result failed: %w", err), &startedAt)
		return
	}
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs(&startedAt, &completedAt))
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"analysis_id":       analysisID,
		"status":            StatusCompleted,
		"status_transition": "processing->completed",
		"duration_ms":       durationMs(&startedAt, &completedAt),
	})
}

// runStage drives one stage through its retry budget. Both transport errors
// and schema violations consume an attempt; after the first failure the
// prompt carries a correction hint built from the last rejection reason.
func (s *Service) runStage(ctx context.Context, req pipeline.Request, stage pipeline.Stage, prior pipeline.Context) (json.RawMessage, int, error) {
	prompt, err := stage.BuildPrompt(req, prior)
	if err != nil {
		return nil, 0, err
	}

	maxAttempts := s.maxAttempts()
	wait := backoff.NewExponentialBackOff()
	wait.InitialInterval = s.retryBaseDelay()
	wait.MaxElapsedTime = 0
	wait.Reset()

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		attemptPrompt := prompt
		if lastErr != nil {
			attemptPrompt = prompt + "\n\nYour previous response was invalid: " + sanitizeError(lastErr) +
				"\nReturn only the corrected JSON object."
		}

		raw, genErr := s.LLM.Generate(ctx, attemptPrompt)
		if genErr == nil {
			payload, parseErr := stage.Parse(raw)
			if parseErr == nil {
				return payload, attempt, nil
			}
			lastErr = parseErr
		} else {
			lastErr = genErr
		}

		telemetry.Info("stage.retry", map[string]any{
			"request_id": requestIDFromContext(ctx),
			"stage":      stage.Name(),
			"attempt":    attempt,
			"error":      sanitizeError(lastErr),
		})

		if attempt < maxAttempts {
			metrics.IncStageRetry()
			select {
			case <-time.After(wait.NextBackOff()):
			case <-ctx.Done():
				return nil, attempt, ctx.Err()
			}
		}
	}

	return nil, maxAttempts, &StageExhaustedError{
		Stage:      stage.Name(),
		Attempts:   maxAttempts,
		LastReason: sanitizeError(lastErr),
	}
}

// enrichEstimation attaches candidate recommendations to the estimation
// payload. Enrichment is best-effort; any problem here degrades the payload
// to its unenriched form instead of failing the analysis.
func (s *Service) enrichEstimation(ctx context.Context, analysisID string, payload, technical json.RawMessage) json.RawMessage {
	if s.Matcher == nil || s.Employees == nil {
		return payload
	}

	pool, err := s.Employees.ListActive(ctx)
	if err != nil {
		telemetry.Error("estimation.enrich", map[string]any{
			"request_id":  requestIDFromContext(ctx),
			"analysis_id": analysisID,
			"error":       sanitizeError(err),
		})
		pool = nil
	}

	enriched, err := pipeline.EnrichEstimation(payload, technical, s.Matcher, pool, s.CandidateFilter, s.topCandidates())
	if err != nil {
		telemetry.Error("estimation.enrich", map[string]any{
			"request_id":  requestIDFromContext(ctx),
			"analysis_id": analysisID,
			"error":       sanitizeError(err),
		})
		return payload
	}
	return enriched
}

func (s *Service) failAnalysis(ctx context.Context, analysisID string, err error, startedAt *time.Time) {
	code := classifyFailure(err)
	msg := sanitizeError(err)
	completedAt := time.Now().UTC()
	if updateErr := s.Repo.Fail(context.Background(), analysisID, code, msg, completedAt); updateErr != nil {
		telemetry.Error("analysis.fail", map[string]any{
			"analysis_id": analysisID,
			"error":       sanitizeError(updateErr),
			"cause":       msg,
		})
	}
	metrics.IncAnalysisFailed()
	if startedAt != nil {
		metrics.ObserveAnalysisDurationMs(durationMs(startedAt, &completedAt))
	}
	telemetry.Info("analysis.status", map[string]any{
		"request_id":        requestIDFromContext(ctx),
		"analysis_id":       analysisID,
		"status":            StatusFailed,
		"status_transition": "processing->failed",
		"error_code":        code,
		"duration_ms":       durationMs(startedAt, &completedAt),
	})
}

func (s *Service) stages() []pipeline.Stage {
	if len(s.Stages) > 0 {
		return s.Stages
	}
	return pipeline.Stages()
}

func (s *Service) maxAttempts() int {
	if s.MaxAttempts > 0 {
		return s.MaxAttempts
	}
	return defaultMaxAttempts
}

func (s *Service) retryBaseDelay() time.Duration {
	if s.RetryBaseDelay > 0 {
		return s.RetryBaseDelay
	}
	return defaultRetryBaseDelay
}

func (s *Service) topCandidates() int {
	if s.TopCandidates > 0 {
		return s.TopCandidates
	}
	return defaultTopCandidates
}

func durationMs(startedAt, completedAt *time.Time) float64 {
	if startedAt == nil || completedAt == nil {
		return 0
	}
	return float64(completedAt.Sub(*startedAt).Microseconds()) / 1000.0
}

func classifyFailure(err error) string {
	if err == nil {
		return ErrorCodeInternal
	}
	var exhausted *StageExhaustedError
	if errors.As(err, &exhausted) {
		if strings.Contains(strings.ToLower(exhausted.LastReason), "deadline exceeded") {
			return ErrorCodeLLMTimeout
		}
		return ErrorCodeLLMSchemaMismatch
	}
	var validation *pipeline.ValidationError
	if errors.As(err, &validation) {
		return ErrorCodeLLMSchemaMismatch
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorCodeLLMTimeout
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "stage result") || strings.Contains(msg, "set processing") || strings.Contains(msg, "analysis result") || strings.Contains(msg, "analysis lookup") {
		return ErrorCodeStorage
	}
	return ErrorCodeInternal
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
