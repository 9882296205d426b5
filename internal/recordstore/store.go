package recordstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a mutation targets a missing record.
var ErrNotFound = errors.New("record not found")

// Store is the record-store boundary: every logical table is a sequence of
// Records with CRUD semantics. Implementations must treat returned slices
// as snapshots; callers never mutate them in place.
type Store interface {
	List(ctx context.Context, table string) ([]Record, error)
	Create(ctx context.Context, table string, data Record) (Record, error)
	Update(ctx context.Context, table string, id string, data Record) (Record, error)
	Delete(ctx context.Context, table string, id string) error
}
