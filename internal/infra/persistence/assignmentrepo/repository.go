package assignmentrepo

import (
	"context"

	"github.com/google/wire"
	domain "github.com/notarydesk/priorities/internal/biz/assignment"
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

// List returns stored assignments in collection order. Empty assignments in
// imported data are skipped; a repeated employee id keeps its first record.
func (r *RecordStoreImpl) List(ctx context.Context) ([]*domain.Assignment, error) {
	pos, err := recordstore.LoadList[AssignmentPo](ctx, r.store, recordstore.KeyAssignments)
	if err != nil {
		return nil, err
	}
	pos = lo.UniqBy(pos, func(po AssignmentPo) string { return po.EmployeeID })
	out := make([]*domain.Assignment, 0, len(pos))
	for i := range pos {
		a := pos[i].ToDomain()
		if a.IsEmpty() {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *RecordStoreImpl) SaveAll(ctx context.Context, assignments []*domain.Assignment) error {
	kept := lo.Filter(assignments, func(a *domain.Assignment, _ int) bool { return !a.IsEmpty() })
	pos := lo.Map(kept, func(a *domain.Assignment, _ int) *AssignmentPo {
		return new(AssignmentPo).FromDomain(a)
	})
	return recordstore.SaveList(ctx, r.store, recordstore.KeyAssignments, pos)
}
