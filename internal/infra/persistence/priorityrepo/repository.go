package priorityrepo

import (
	"context"

	"github.com/google/wire"
	domain "github.com/notarydesk/priorities/internal/biz/priority"
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

func (r *RecordStoreImpl) List(ctx context.Context) ([]*domain.Priority, error) {
	pos, err := recordstore.LoadList[PriorityPo](ctx, r.store, recordstore.KeyPriorities)
	if err != nil {
		return nil, err
	}
	return lo.Map(pos, func(po PriorityPo, _ int) *domain.Priority {
		return po.ToDomain()
	}), nil
}

func (r *RecordStoreImpl) SaveAll(ctx context.Context, priorities []*domain.Priority) error {
	pos := lo.Map(priorities, func(p *domain.Priority, _ int) *PriorityPo {
		return new(PriorityPo).FromDomain(p)
	})
	return recordstore.SaveList(ctx, r.store, recordstore.KeyPriorities, pos)
}
