package assignment

import (
	"context"

	"github.com/google/wire"
	"github.com/notarydesk/priorities/internal/biz/priority"
	"go.uber.org/zap"
)

var Provider = wire.NewSet(NewEngine, wire.Bind(new(Catalog), new(priority.Repo)))

// Catalog resolves priority ids for ranked reads.
type Catalog interface {
	List(ctx context.Context) ([]*priority.Priority, error)
}

// Engine owns every employee's ranked priority list. Each mutating call loads
// the collection, applies one change and persists it inside a single write
// section. Employee and priority ids are not checked for existence.
type Engine struct {
	repo    Repo
	catalog Catalog
	logger  *zap.Logger
}

func NewEngine(repo Repo, catalog Catalog, logger *zap.Logger) *Engine {
	return &Engine{repo: repo, catalog: catalog, logger: logger.Named("assignment")}
}

// AddEntry appends priorityID to the employee's list, creating the
// assignment on first use. A priority already present is a
// DuplicateAssignmentError and leaves the list untouched.
func (e *Engine) AddEntry(ctx context.Context, employeeID, priorityID string) (*Assignment, error) {
	return e.mutate(ctx, employeeID, "add", priorityID, func(a *Assignment) (bool, error) {
		if err := a.Add(priorityID); err != nil {
			return false, err
		}
		return true, nil
	})
}

// RemoveEntry drops priorityID if present. Removing the last entry deletes
// the assignment and returns nil.
func (e *Engine) RemoveEntry(ctx context.Context, employeeID, priorityID string) (*Assignment, error) {
	return e.mutate(ctx, employeeID, "remove", priorityID, func(a *Assignment) (bool, error) {
		return a.Remove(priorityID), nil
	})
}

func (e *Engine) MoveUp(ctx context.Context, employeeID, priorityID string) (*Assignment, error) {
	return e.mutate(ctx, employeeID, "move_up", priorityID, func(a *Assignment) (bool, error) {
		return a.MoveUp(priorityID), nil
	})
}

func (e *Engine) MoveDown(ctx context.Context, employeeID, priorityID string) (*Assignment, error) {
	return e.mutate(ctx, employeeID, "move_down", priorityID, func(a *Assignment) (bool, error) {
		return a.MoveDown(priorityID), nil
	})
}

// Save replaces the employee's whole list with priorityIDs, in order. An
// empty list deletes the assignment. The assignment keeps its position in the
// stored collection.
func (e *Engine) Save(ctx context.Context, employeeID string, priorityIDs []string) (*Assignment, error) {
	return e.mutate(ctx, employeeID, "save", "", func(a *Assignment) (bool, error) {
		if err := a.Reset(priorityIDs); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Get returns the employee's assignment or nil when it has none.
func (e *Engine) Get(ctx context.Context, employeeID string) (*Assignment, error) {
	all, err := e.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_, a := find(all, employeeID)
	return a, nil
}

func (e *Engine) List(ctx context.Context) ([]*Assignment, error) {
	return e.repo.List(ctx)
}

// ListRanked returns the employee's priorities in rank order, skipping ids
// that no longer resolve in the catalog.
func (e *Engine) ListRanked(ctx context.Context, employeeID string) ([]RankedPriority, error) {
	a, err := e.Get(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	list, err := e.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(a, priority.Index(list)), nil
}

func (e *Engine) mutate(ctx context.Context, employeeID, op, priorityID string, apply func(a *Assignment) (bool, error)) (*Assignment, error) {
	var result *Assignment
	err := e.repo.Execute(ctx, func(ctx context.Context) error {
		all, err := e.repo.List(ctx)
		if err != nil {
			return err
		}
		_, current := find(all, employeeID)
		work := &Assignment{EmployeeID: employeeID}
		if current != nil {
			work = current.Clone()
		}

		changed, err := apply(work)
		if err != nil {
			return err
		}
		if !changed {
			result = current
			return nil
		}

		if !work.IsEmpty() {
			result = work
		}
		return e.persist(ctx, all, work)
	})
	if err != nil {
		e.logger.Debug("assignment change rejected",
			zap.String("op", op),
			zap.String("employee_id", employeeID),
			zap.String("priority_id", priorityID),
			zap.Error(err))
		return nil, err
	}
	e.logger.Debug("assignment changed",
		zap.String("op", op),
		zap.String("employee_id", employeeID),
		zap.String("priority_id", priorityID))
	return result, nil
}

// persist writes all back with a in place of the employee's previous
// assignment. A new assignment goes last; an empty one is dropped. Edits keep
// the collection order stable, whereas the browser app removed the edited
// entry and appended it, moving it to the end. Readers must not depend on
// the collection order.
func (e *Engine) persist(ctx context.Context, all []*Assignment, a *Assignment) error {
	i, _ := find(all, a.EmployeeID)
	switch {
	case a.IsEmpty() && i >= 0:
		all = append(all[:i], all[i+1:]...)
	case a.IsEmpty():
		return nil
	case i >= 0:
		all[i] = a
	default:
		all = append(all, a)
	}
	return e.repo.SaveAll(ctx, all)
}

func find(all []*Assignment, employeeID string) (int, *Assignment) {
	for i, a := range all {
		if a.EmployeeID == employeeID {
			return i, a
		}
	}
	return -1, nil
}
