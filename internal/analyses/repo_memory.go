package analyses

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo keyed by analysis ID. The pipeline
// goroutine is the only writer for a given ID after creation.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Analysis
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Analysis)}
}

func (r *MemoryRepo) Create(_ context.Context, analysis Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[analysis.ID]; exists {
		return fmt.Errorf("analysis %s already exists", analysis.ID)
	}
	r.items[analysis.ID] = cloneAnalysis(analysis)
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, analysisID string) (Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.items[analysisID]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return cloneAnalysis(analysis), nil
}

func (r *MemoryRepo) List(_ context.Context, limit, offset int) ([]Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Analysis, 0, len(r.items))
	for _, analysis := range r.items {
		all = append(all, cloneAnalysis(analysis))
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})
	if offset >= len(all) {
		return []Analysis{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryRepo) SetProcessing(_ context.Context, analysisID string, startedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis, ok := r.items[analysisID]
	if !ok {
		return ErrNotFound
	}
	analysis.Status = StatusProcessing
	analysis.StartedAt = &startedAt
	r.items[analysisID] = analysis
	return nil
}

func (r *MemoryRepo) AppendStageResult(_ context.Context, analysisID string, result StageResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis, ok := r.items[analysisID]
	if !ok {
		return ErrNotFound
	}
	for _, existing := range analysis.Stages {
		if existing.Stage == result.Stage && existing.Status == StageStatusOK {
			return fmt.Errorf("stage %s already has a successful result", result.Stage)
		}
	}
	analysis.Stages = append(analysis.Stages, result)
	r.items[analysisID] = analysis
	return nil
}

func (r *MemoryRepo) Complete(_ context.Context, analysisID string, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis, ok := r.items[analysisID]
	if !ok {
		return ErrNotFound
	}
	if analysis.CompletedAt != nil {
		return fmt.Errorf("analysis %s already finished", analysisID)
	}
	analysis.Status = StatusCompleted
	analysis.CompletedAt = &completedAt
	r.items[analysisID] = analysis
	return nil
}

func (r *MemoryRepo) Fail(_ context.Context, analysisID, errorCode, message string, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis, ok := r.items[analysisID]
	if !ok {
		return ErrNotFound
	}
	if analysis.CompletedAt != nil {
		return fmt.Errorf("analysis %s already finished", analysisID)
	}
	analysis.Status = StatusFailed
	analysis.ErrorCode = errorCode
	analysis.Error = message
	analysis.CompletedAt = &completedAt
	r.items[analysisID] = analysis
	return nil
}

func cloneAnalysis(a Analysis) Analysis {
	out := a
	if a.Stages != nil {
		out.Stages = make([]StageResult, len(a.Stages))
		copy(out.Stages, a.Stages)
	}
	if a.StartedAt != nil {
		t := *a.StartedAt
		out.StartedAt = &t
	}
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		out.CompletedAt = &t
	}
	return out
}
