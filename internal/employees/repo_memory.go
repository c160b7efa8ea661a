package employees

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores employees in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Employee
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Employee)}
}

// Put inserts or replaces an employee record.
func (r *MemoryRepo) Put(employee Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[employee.ID] = employee
}

// Seed loads the given employees, replacing any existing records with the same ID.
func (r *MemoryRepo) Seed(pool []Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range pool {
		r.byID[e.ID] = e
	}
}

// ListActive returns active employees ordered by name.
func (r *MemoryRepo) ListActive(ctx context.Context) ([]Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, 0, len(r.byID))
	for _, e := range r.byID {
		if !e.Active {
			continue
		}
		copied := e
		copied.Skills = append([]Skill(nil), e.Skills...)
		out = append(out, copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Count returns the number of stored employees, active or not.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
