package employees

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an employee does not exist.
var ErrNotFound = errors.New("employee not found")

// Repo provides a read-only snapshot of the talent pool. Only active
// employees participate in matching, so that is the only listing exposed.
type Repo interface {
	ListActive(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int, error)
}
