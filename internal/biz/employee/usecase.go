package employee

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

type Usecase struct {
	repo   Repo
	ids    idgen.Generator
	logger *zap.Logger
	now    func() time.Time
}

func NewUsecase(repo Repo, ids idgen.Generator, logger *zap.Logger) *Usecase {
	return &Usecase{repo: repo, ids: ids, logger: logger.Named("employee"), now: time.Now}
}

type CreateRequest struct {
	FullName string
	Position string
}

func (u *Usecase) Create(ctx context.Context, req CreateRequest) (*Employee, error) {
	emp := &Employee{
		FullName: strings.TrimSpace(req.FullName),
		Position: strings.TrimSpace(req.Position),
	}
	if err := validate(emp.FullName, emp.Position); err != nil {
		return nil, err
	}

	err := u.repo.Execute(ctx, func(ctx context.Context) error {
		list, err := u.repo.List(ctx)
		if err != nil {
			return err
		}
		emp.ID = u.ids.NextID()
		emp.CreatedAt = u.now()
		return u.repo.SaveAll(ctx, append(list, emp))
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("employee created", zap.String("employee_id", emp.ID))
	return emp, nil
}

type UpdateRequest struct {
	FullName mo.Option[string]
	Position mo.Option[string]
}

func (u *Usecase) Update(ctx context.Context, id string, req *UpdateRequest) (*Employee, error) {
	patch := NewEmployeePatch()
	patch.FullName = req.FullName.ToPointer()
	patch.Position = req.Position.ToPointer()

	var updated *Employee
	err := u.repo.Execute(ctx, func(ctx context.Context) error {
		list, err := u.repo.List(ctx)
		if err != nil {
			return err
		}
		emp, ok := lo.Find(list, func(e *Employee) bool { return e.ID == id })
		if !ok {
			return domainerr.ErrEmployeeNotFound
		}
		if err := emp.Apply(patch); err != nil {
			return err
		}
		updated = emp
		return u.repo.SaveAll(ctx, list)
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("employee updated", zap.String("employee_id", id))
	return updated, nil
}

// Delete removes the employee if present. Its assignment, if any, stays and
// is skipped by the read side.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	return u.repo.Execute(ctx, func(ctx context.Context) error {
		list, err := u.repo.List(ctx)
		if err != nil {
			return err
		}
		kept := lo.Filter(list, func(e *Employee, _ int) bool { return e.ID != id })
		if len(kept) == len(list) {
			return nil
		}
		u.logger.Info("employee deleted", zap.String("employee_id", id))
		return u.repo.SaveAll(ctx, kept)
	})
}

func (u *Usecase) Get(ctx context.Context, id string) (*Employee, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	emp, ok := lo.Find(list, func(e *Employee) bool { return e.ID == id })
	if !ok {
		return nil, domainerr.ErrEmployeeNotFound
	}
	return emp, nil
}

func (u *Usecase) List(ctx context.Context) ([]*Employee, error) {
	return u.repo.List(ctx)
}
