package employeerepo

import (
	"context"

	"github.com/google/wire"
	domain "github.com/notarydesk/priorities/internal/biz/employee"
	"github.com/notarydesk/priorities/internal/infra/persistence/recordstore"
	"github.com/samber/lo"
)

var Provider = wire.NewSet(NewRecordStoreImpl)

type RecordStoreImpl struct {
	store *recordstore.Store
}

func NewRecordStoreImpl(store *recordstore.Store) domain.Repo {
	return &RecordStoreImpl{store: store}
}

func (r *RecordStoreImpl) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.store.Execute(ctx, fn)
}

func (r *RecordStoreImpl) List(ctx context.Context) ([]*domain.Employee, error) {
	pos, err := recordstore.LoadList[EmployeePo](ctx, r.store, recordstore.KeyEmployees)
	if err != nil {
		return nil, err
	}
	return lo.Map(pos, func(po EmployeePo, _ int) *domain.Employee {
		return po.ToDomain()
	}), nil
}

func (r *RecordStoreImpl) SaveAll(ctx context.Context, employees []*domain.Employee) error {
	pos := lo.Map(employees, func(e *domain.Employee, _ int) *EmployeePo {
		return new(EmployeePo).FromDomain(e)
	})
	return recordstore.SaveList(ctx, r.store, recordstore.KeyEmployees, pos)
}
