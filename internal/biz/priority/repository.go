package priority

import "context"

type Repo interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
	List(ctx context.Context) ([]*Priority, error)
	SaveAll(ctx context.Context, priorities []*Priority) error
}
