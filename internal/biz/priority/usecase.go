package priority

import (
	"context"
	"strings"
	"time"

	"github.com/google/wire"
	domainerr "github.com/notarydesk/priorities/internal/domain/error"
	"github.com/notarydesk/priorities/pkg/idgen"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"go.uber.org/zap"
)

var Provider = wire.NewSet(NewUsecase)

// Usecase is the priority catalog.
type Usecase struct {
	repo   Repo
	ids    idgen.Generator
	logger *zap.Logger
	now    func() time.Time
}

func NewUsecase(repo Repo, ids idgen.Generator, logger *zap.Logger) *Usecase {
	return &Usecase{repo: repo, ids: ids, logger: logger.Named("priority"), now: time.Now}
}

type CreateRequest struct {
	Name        string
	Description string
	Color       Color
}

func (u *Usecase) Create(ctx context.Context, req CreateRequest) (*Priority, error) {
	p := &Priority{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Color:       normalizeColor(req.Color),
	}
	if err := validate(p.Name, p.Color); err != nil {
		return nil, err
	}

	err := u.repo.Execute(ctx, func(ctx context.Context) error {
		list, err := u.repo.List(ctx)
		if err != nil {
			return err
		}
		p.ID = u.ids.NextID()
		p.CreatedAt = u.now()
		return u.repo.SaveAll(ctx, append(list, p))
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("priority created", zap.String("priority_id", p.ID), zap.String("color", string(p.Color)))
	return p, nil
}

type UpdateRequest struct {
	Name        mo.Option[string]
	Description mo.Option[string]
	Color       mo.Option[Color]
}

func (u *Usecase) Update(ctx context.Context, id string, req *UpdateRequest) (*Priority, error) {
	patch := NewPriorityPatch()
	patch.Name = req.Name.ToPointer()
	patch.Description = req.Description.ToPointer()
	patch.Color = req.Color.ToPointer()

	var updated *Priority
	err := u.repo.Execute(ctx, func(ctx context.Context) error {
		list, err := u.repo.List(ctx)
		if err != nil {
			return err
		}
		p, ok := lo.Find(list, func(p *Priority) bool { return p.ID == id })
		if !ok {
			return domainerr.ErrPriorityNotFound
		}
		if err := p.Apply(patch); err != nil {
			return err
		}
		updated = p
		return u.repo.SaveAll(ctx, list)
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("priority updated", zap.String("priority_id", id))
	return updated, nil
}

// Delete drops the priority type. Assignments that still reference it keep
// the dangling id; readers filter it out.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	return u.repo.Execute(ctx, func(ctx context.Context) error {
		list, err := u.repo.List(ctx)
		if err != nil {
			return err
		}
		kept := lo.Filter(list, func(p *Priority, _ int) bool { return p.ID != id })
		if len(kept) == len(list) {
			return nil
		}
		u.logger.Info("priority deleted", zap.String("priority_id", id))
		return u.repo.SaveAll(ctx, kept)
	})
}

func (u *Usecase) Get(ctx context.Context, id string) (*Priority, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := lo.Find(list, func(p *Priority) bool { return p.ID == id })
	if !ok {
		return nil, domainerr.ErrPriorityNotFound
	}
	return p, nil
}

func (u *Usecase) List(ctx context.Context) ([]*Priority, error) {
	return u.repo.List(ctx)
}

// Index maps priority id to record for joins.
func Index(list []*Priority) map[string]*Priority {
	return lo.KeyBy(list, func(p *Priority) string { return p.ID })
}
