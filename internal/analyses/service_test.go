package analyses

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"feasibility-backend/internal/employees"
	"feasibility-backend/internal/matching"
	"feasibility-backend/internal/pipeline"
)

// scriptedLLM replays queued responses in order and records the prompts it
// was given. Once the queue is drained the last entry repeats.
type scriptedLLM struct {
	mu        sync.Mutex
	responses []scriptedResponse
	prompts   []string
}

type scriptedResponse struct {
	text string
	err  error
}

func (s *scriptedLLM) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if len(s.responses) == 0 {
		return "", errors.New("no scripted response")
	}
	next := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return next.text, next.err
}

func (s *scriptedLLM) recordedPrompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

const validDescription = "A web marketplace connecting tutors with students for live lessons."

func validStagePayloads() []scriptedResponse {
	return []scriptedResponse{
		{text: `{"project_summary":"Tutoring marketplace.","core_features":["search","booking","payments"]}`},
		{text: `{"recommended_tech_stack":{"frontend":{"primary":"React 18"},"backend":{"primary":"FastAPI"},"database":{"primary":"PostgreSQL"}}}`},
		{text: `{"team_composition":[{"role":"Frontend Developer","seniority":"Senior","duration_weeks":12,"hourly_rate":110}],"cost_breakdown":{"total_estimated_cost":52800}}`},
		{text: `{"executive_summary":"Feasible in roughly 14 weeks with a team of three."}`},
	}
}

func newTestService(t *testing.T, client *scriptedLLM) (*Service, *MemoryRepo) {
	t.Helper()
	engine, err := matching.NewEngine(matching.DefaultWeights())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	employeeRepo := employees.NewMemoryRepo()
	employeeRepo.Seed(employees.SampleEmployees())
	repo := NewMemoryRepo()
	return &Service{
		Repo:           repo,
		LLM:            client,
		Employees:      employeeRepo,
		Matcher:        engine,
		RetryBaseDelay: time.Millisecond,
	}, repo
}

func waitForFinished(t *testing.T, repo *MemoryRepo, analysisID string) Analysis {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		analysis, err := repo.GetByID(context.Background(), analysisID)
		if err != nil {
			t.Fatalf("get analysis: %v", err)
		}
		if analysis.Status == StatusCompleted || analysis.Status == StatusFailed {
			return analysis
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("analysis %s did not finish in time", analysisID)
	return Analysis{}
}

func TestPipelineCompletesAllStages(t *testing.T) {
	client := &scriptedLLM{responses: validStagePayloads()}
	svc, repo := newTestService(t, client)

	analysis, err := svc.Submit(context.Background(), pipeline.Request{Description: validDescription})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if analysis.Status != StatusPending {
		t.Fatalf("expected pending status, got %q", analysis.Status)
	}

	final := waitForFinished(t, repo, analysis.ID)
	if final.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q (error: %s)", final.Status, final.Error)
	}
	if final.CompletedAt == nil || final.StartedAt == nil {
		t.Fatalf("expected timestamps to be set")
	}
	if len(final.Stages) != 4 {
		t.Fatalf("expected 4 stage results, got %d", len(final.Stages))
	}
	for i, want := range []string{pipeline.StageIntake, pipeline.StageTechnical, pipeline.StageEstimation, pipeline.StageSummary} {
		got := final.Stages[i]
		if got.Stage != want || got.Status != StageStatusOK {
			t.Fatalf("stage %d: expected %s ok, got %s %s", i, want, got.Stage, got.Status)
		}
		if got.AttemptCount != 1 {
			t.Fatalf("stage %s: expected 1 attempt, got %d", got.Stage, got.AttemptCount)
		}
	}

	est, err := pipeline.DecodeEstimation(final.StagePayload(pipeline.StageEstimation))
	if err != nil {
		t.Fatalf("decode estimation: %v", err)
	}
	if len(est.TeamComposition[0].RecommendedEmployees) == 0 {
		t.Fatalf("expected estimation enriched with recommendations")
	}
}

func TestStageRetriesThenSucceeds(t *testing.T) {
	client := &scriptedLLM{responses: []scriptedResponse{
		{text: "not even json"},
		{text: `{"project_summary":"ok","core_features":[]}`},
		{text: `{"project_summary":"Tutoring marketplace.","core_features":["search"]}`},
	}}
	svc, repo := newTestService(t, client)
	svc.Stages = []pipeline.Stage{pipeline.IntakeStage{}}

	analysis, err := svc.Submit(context.Background(), pipeline.Request{Description: validDescription})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	final := waitForFinished(t, repo, analysis.ID)
	if final.Status != StatusCompleted {
		t.Fatalf("expected completed after retries, got %q (error: %s)", final.Status, final.Error)
	}
	if len(final.Stages) != 1 || final.Stages[0].AttemptCount != 3 {
		t.Fatalf("expected single stage with 3 attempts, got %+v", final.Stages)
	}

	prompts := client.recordedPrompts()
	if len(prompts) != 3 {
		t.Fatalf("expected 3 prompts, got %d", len(prompts))
	}
	if strings.Contains(prompts[0], "previous response was invalid") {
		t.Fatalf("first prompt must not carry a correction hint")
	}
	if !strings.Contains(prompts[1], "previous response was invalid") {
		t.Fatalf("retry prompt must carry a correction hint")
	}
}

func TestStageExhaustedPreservesPriorResults(t *testing.T) {
	client := &scriptedLLM{responses: []scriptedResponse{
		{text: `{"project_summary":"Tutoring marketplace.","core_features":["search"]}`},
		{text: `{"recommended_tech_stack":{"frontend":{"primary":"React"}}}`},
		{text: `{"team_composition":[]}`},
	}}
	svc, repo := newTestService(t, client)
	svc.MaxAttempts = 3

	analysis, err := svc.Submit(context.Background(), pipeline.Request{Description: validDescription})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	final := waitForFinished(t, repo, analysis.ID)
	if final.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", final.Status)
	}
	if final.ErrorCode != ErrorCodeLLMSchemaMismatch {
		t.Fatalf("expected %s, got %s", ErrorCodeLLMSchemaMismatch, final.ErrorCode)
	}
	if final.CompletedAt == nil {
		t.Fatalf("expected completedAt on failure")
	}

	if len(final.Stages) != 3 {
		t.Fatalf("expected 3 stage results, got %d", len(final.Stages))
	}
	if final.Stages[0].Status != StageStatusOK || final.Stages[1].Status != StageStatusOK {
		t.Fatalf("expected intake and technical preserved as ok, got %+v", final.Stages)
	}
	estimation := final.Stages[2]
	if estimation.Stage != pipeline.StageEstimation || estimation.Status != StageStatusFailed {
		t.Fatalf("expected failed estimation result, got %+v", estimation)
	}
	if estimation.AttemptCount != 3 {
		t.Fatalf("expected 3 attempts, got %d", estimation.AttemptCount)
	}
	if estimation.Error == "" {
		t.Fatalf("expected stage error to be recorded")
	}
	if final.StagePayload(pipeline.StageSummary) != nil {
		t.Fatalf("summary must not run after estimation fails")
	}
}

func TestTimeoutClassifiedAsLLMTimeout(t *testing.T) {
	client := &scriptedLLM{responses: []scriptedResponse{{err: context.DeadlineExceeded}}}
	svc, repo := newTestService(t, client)
	svc.Stages = []pipeline.Stage{pipeline.IntakeStage{}}
	svc.MaxAttempts = 2

	analysis, err := svc.Submit(context.Background(), pipeline.Request{Description: validDescription})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	final := waitForFinished(t, repo, analysis.ID)
	if final.Status != StatusFailed {
		t.Fatalf("expected failed, got %q", final.Status)
	}
	if final.ErrorCode != ErrorCodeLLMTimeout {
		t.Fatalf("expected %s, got %s", ErrorCodeLLMTimeout, final.ErrorCode)
	}
	if len(final.Stages) != 1 || final.Stages[0].AttemptCount != 2 {
		t.Fatalf("expected exhausted stage with 2 attempts, got %+v", final.Stages)
	}
}

func TestSubmitValidatesDescription(t *testing.T) {
	svc, repo := newTestService(t, &scriptedLLM{})

	if _, err := svc.Submit(context.Background(), pipeline.Request{Description: "too short"}); !errors.Is(err, ErrDescriptionTooShort) {
		t.Fatalf("expected ErrDescriptionTooShort, got %v", err)
	}
	if _, err := svc.Submit(context.Background(), pipeline.Request{Description: strings.Repeat("x", 5001)}); !errors.Is(err, ErrDescriptionTooLong) {
		t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
	}

	items, err := repo.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("rejected submissions must not be stored")
	}
}

func TestEnrichmentDegradesOnEmptyPool(t *testing.T) {
	client := &scriptedLLM{responses: validStagePayloads()}
	svc, repo := newTestService(t, client)
	svc.Employees = employees.NewMemoryRepo()

	analysis, err := svc.Submit(context.Background(), pipeline.Request{Description: validDescription})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	final := waitForFinished(t, repo, analysis.ID)
	if final.Status != StatusCompleted {
		t.Fatalf("expected completed despite empty pool, got %q (error: %s)", final.Status, final.Error)
	}
	est, err := pipeline.DecodeEstimation(final.StagePayload(pipeline.StageEstimation))
	if err != nil {
		t.Fatalf("decode estimation: %v", err)
	}
	if len(est.TeamComposition[0].RecommendedEmployees) != 0 {
		t.Fatalf("expected no recommendations for empty pool")
	}
}

func TestGetUnknownAnalysis(t *testing.T) {
	svc, _ := newTestService(t, &scriptedLLM{})
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStagePayloadHelper(t *testing.T) {
	a := Analysis{Stages: []StageResult{
		{Stage: pipeline.StageIntake, Status: StageStatusOK, Payload: json.RawMessage(`{"a":1}`)},
		{Stage: pipeline.StageTechnical, Status: StageStatusFailed},
	}}
	if a.StagePayload(pipeline.StageIntake) == nil {
		t.Fatalf("expected intake payload")
	}
	if a.StagePayload(pipeline.StageTechnical) != nil {
		t.Fatalf("failed stage must not expose a payload")
	}
}
