package assignment

import "context"

// Repo persists the assignment collection. The engine is its only writer.
type Repo interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
	List(ctx context.Context) ([]*Assignment, error)
	SaveAll(ctx context.Context, assignments []*Assignment) error
}
