package commonrepo

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DB is the subset of *gorm.DB the repositories rely on. Both the root handle
// and a transaction handle satisfy it.
type DB interface {
	Create(value any) (tx *gorm.DB)
	Where(query any, args ...any) (tx *gorm.DB)
	Transaction(fn func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
	AutoMigrate(table ...any) error
	First(dest any, conds ...any) (tx *gorm.DB)
	Clauses(conds ...clause.Expression) (tx *gorm.DB)
	WithContext(ctx context.Context) *gorm.DB
	DB() (*sql.DB, error)
}
