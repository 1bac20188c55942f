package employee

import "context"

// Repo reads and writes the whole employee collection. Execute runs fn as a
// single exclusive write section.
type Repo interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
	List(ctx context.Context) ([]*Employee, error)
	SaveAll(ctx context.Context, employees []*Employee) error
}
