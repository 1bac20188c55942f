// Package projection builds the read-only views of the priority board:
// dashboard counters, an employee's own ranked list and report aggregates.
// Dangling references are skipped, never reported.
package projection

import (
	"context"

	"github.com/google/wire"
	"github.com/notarydesk/priorities/internal/biz/assignment"
	"github.com/notarydesk/priorities/internal/biz/employee"
	"github.com/notarydesk/priorities/internal/biz/priority"
	domainerr "github.com/notarydesk/priorities/internal/domain/error"
	"github.com/samber/lo"
)

var Provider = wire.NewSet(NewProjector)

// AllEmployees selects every employee in Report.
const AllEmployees = "all"

type EmployeeSource interface {
	List(ctx context.Context) ([]*employee.Employee, error)
}

type PrioritySource interface {
	List(ctx context.Context) ([]*priority.Priority, error)
}

type AssignmentSource interface {
	List(ctx context.Context) ([]*assignment.Assignment, error)
}

type Dashboard struct {
	TotalEmployees             int `json:"totalEmployees"`
	TotalPriorities            int `json:"totalPriorities"`
	EmployeesWithPriorities    int `json:"employeesWithPriorities"`
	EmployeesWithoutPriorities int `json:"employeesWithoutPriorities"`
}

type EmployeeRanking struct {
	Employee   *employee.Employee
	Priorities []assignment.RankedPriority
}

type Report struct {
	// Selection is AllEmployees or the id of the selected employee.
	Selection string
	Rows      []EmployeeRanking
}

type Projector struct {
	employees   EmployeeSource
	priorities  PrioritySource
	assignments AssignmentSource
}

func NewProjector(employees employee.Repo, priorities priority.Repo, assignments assignment.Repo) *Projector {
	return &Projector{employees: employees, priorities: priorities, assignments: assignments}
}

type snapshot struct {
	employees   []*employee.Employee
	catalog     map[string]*priority.Priority
	priorities  []*priority.Priority
	assignments map[string]*assignment.Assignment
}

func (p *Projector) load(ctx context.Context) (*snapshot, error) {
	employees, err := p.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	priorities, err := p.priorities.List(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := p.assignments.List(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot{
		employees:   employees,
		priorities:  priorities,
		catalog:     priority.Index(priorities),
		assignments: lo.KeyBy(assignments, func(a *assignment.Assignment) string { return a.EmployeeID }),
	}, nil
}

// Dashboard counts employees and priority types. An employee counts as having
// priorities when it has a stored assignment; assignments of deleted
// employees are not counted. Counts are read from the store on every call,
// so writes made by other processes sharing the storage show up at once.
func (p *Projector) Dashboard(ctx context.Context) (Dashboard, error) {
	snap, err := p.load(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	with := lo.CountBy(snap.employees, func(e *employee.Employee) bool {
		a, ok := snap.assignments[e.ID]
		return ok && !a.IsEmpty()
	})
	return Dashboard{
		TotalEmployees:             len(snap.employees),
		TotalPriorities:            len(snap.priorities),
		EmployeesWithPriorities:    with,
		EmployeesWithoutPriorities: len(snap.employees) - with,
	}, nil
}

// EmployeeView is the employee's own ranked list.
func (p *Projector) EmployeeView(ctx context.Context, employeeID string) (*EmployeeRanking, error) {
	snap, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	emp, ok := lo.Find(snap.employees, func(e *employee.Employee) bool { return e.ID == employeeID })
	if !ok {
		return nil, domainerr.ErrEmployeeNotFound
	}
	return snap.ranking(emp), nil
}

// Report returns every employee with its ranked list, or only the selected
// one. An empty selection means AllEmployees.
func (p *Projector) Report(ctx context.Context, selection string) (*Report, error) {
	if selection == "" {
		selection = AllEmployees
	}
	snap, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Selection: selection, Rows: []EmployeeRanking{}}
	if selection == AllEmployees {
		for _, emp := range snap.employees {
			report.Rows = append(report.Rows, *snap.ranking(emp))
		}
		return report, nil
	}

	emp, ok := lo.Find(snap.employees, func(e *employee.Employee) bool { return e.ID == selection })
	if !ok {
		return nil, domainerr.ErrEmployeeNotFound
	}
	report.Rows = append(report.Rows, *snap.ranking(emp))
	return report, nil
}

// Available lists the priority types the employee does not have yet, in
// catalog order.
func (p *Projector) Available(ctx context.Context, employeeID string) ([]*priority.Priority, error) {
	snap, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	a := snap.assignments[employeeID]
	return lo.Filter(snap.priorities, func(pr *priority.Priority, _ int) bool {
		return a == nil || !a.Has(pr.ID)
	}), nil
}

func (s *snapshot) ranking(emp *employee.Employee) *EmployeeRanking {
	return &EmployeeRanking{
		Employee:   emp,
		Priorities: assignment.Rank(s.assignments[emp.ID], s.catalog),
	}
}
