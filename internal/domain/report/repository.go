package report

import "context"

// Repository persists the report collection as a whole. Append assigns the
// id and returns the stored record. Remove is idempotent: removing an id
// that is not present succeeds silently.
type Repository interface {
	List(ctx context.Context) ([]Report, error)
	Append(ctx context.Context, r Report) (Report, error)
	Remove(ctx context.Context, id int64) error
}
