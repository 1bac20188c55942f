package backuprepo

import (
	"context"

	"github.com/google/wire"
	domain "github.com/notarydesk/priorities/internal/biz/backup"
	"github.com/notarydesk/priorities/internal/infra/persistence/recordstore"
)

var Provider = wire.NewSet(NewRecordStoreImpl)

type RecordStoreImpl struct {
	store *recordstore.Store
}

func NewRecordStoreImpl(store *recordstore.Store) domain.Repo {
	return &RecordStoreImpl{store: store}
}

// LoadAll reads the three collections inside one section so the snapshot is
// consistent. Missing collections come back nil.
func (r *RecordStoreImpl) LoadAll(ctx context.Context) (domain.Collections, error) {
	var out domain.Collections
	err := r.store.Execute(ctx, func(ctx context.Context) error {
		for _, target := range []struct {
			key recordstore.Key
			dst *[]byte
		}{
			{recordstore.KeyEmployees, &out.Employees},
			{recordstore.KeyPriorities, &out.Priorities},
			{recordstore.KeyAssignments, &out.Assignments},
		} {
			v, ok, err := r.store.Load(ctx, target.key)
			if err != nil {
				return err
			}
			if ok {
				*target.dst = v
			}
		}
		return nil
	})
	return out, err
}

func (r *RecordStoreImpl) ReplaceAll(ctx context.Context, c domain.Collections) error {
	return r.store.ReplaceAll(ctx, map[recordstore.Key][]byte{
		recordstore.KeyEmployees:   c.Employees,
		recordstore.KeyPriorities:  c.Priorities,
		recordstore.KeyAssignments: c.Assignments,
	})
}
