package commonrepo

import (
	"context"

	"gorm.io/gorm"
)

type dbContextKey struct{}

// DefaultRepo keeps the open transaction in the context so nested repository
// calls made from inside Execute join it.
type DefaultRepo struct {
	db DB
}

func NewDefaultRepo(db DB) DefaultRepo {
	return DefaultRepo{db: db}
}

func (r *DefaultRepo) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(dbContextKey{}).(DB); ok {
		return fn(ctx)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, dbContextKey{}, tx))
	})
}

func (r *DefaultRepo) dbFromContext(ctx context.Context) DB {
	db, ok := ctx.Value(dbContextKey{}).(DB)
	if !ok {
		return r.db
	}
	return db
}

func (r *DefaultRepo) Db(ctx context.Context) DB {
	return r.dbFromContext(ctx).WithContext(ctx)
}

func (r *DefaultRepo) Raw() DB {
	return r.db
}
