package analyses

import (
	"context"
	"time"
)

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, analysisID string) (Analysis, error)
	List(ctx context.Context, limit, offset int) ([]Analysis, error)
	SetProcessing(ctx context.Context, analysisID string, startedAt time.Time) error
	AppendStageResult(ctx context.Context, analysisID string, result StageResult) error
	Complete(ctx context.Context, analysisID string, completedAt time.Time) error
	Fail(ctx context.Context, analysisID, errorCode, message string, completedAt time.Time) error
}
