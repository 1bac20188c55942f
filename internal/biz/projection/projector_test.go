package projection_test

import (
	"context"
	"testing"

	"github.com/notarydesk/priorities/internal/biz/assignment"
	"github.com/notarydesk/priorities/internal/biz/employee"
	"github.com/notarydesk/priorities/internal/biz/priority"
	"github.com/notarydesk/priorities/internal/biz/projection"
	domainerr "github.com/notarydesk/priorities/internal/domain/error"
	"github.com/notarydesk/priorities/internal/event"
	"github.com/notarydesk/priorities/internal/infra/persistence/assignmentrepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/employeerepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/priorityrepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/recordstore"
	"github.com/notarydesk/priorities/pkg/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testSetup struct {
	employees  *employee.Usecase
	priorities *priority.Usecase
	engine     *assignment.Engine
	projector  *projection.Projector
}

func setupProjector(t *testing.T) *testSetup {
	t.Helper()
	store := recordstore.New(recordstore.NewMemory(), event.NewBus(), zap.NewNop())
	ids := idgen.NewSequence()
	employeeRepo := employeerepo.NewRecordStoreImpl(store)
	priorityRepo := priorityrepo.NewRecordStoreImpl(store)
	assignmentRepo := assignmentrepo.NewRecordStoreImpl(store)

	s := &testSetup{
		employees:  employee.NewUsecase(employeeRepo, ids, zap.NewNop()),
		priorities: priority.NewUsecase(priorityRepo, ids, zap.NewNop()),
		engine:     assignment.NewEngine(assignmentRepo, priorityRepo, zap.NewNop()),
		projector:  projection.NewProjector(employeeRepo, priorityRepo, assignmentRepo),
	}
	return s
}

func (s *testSetup) employee(t *testing.T, name string) *employee.Employee {
	t.Helper()
	e, err := s.employees.Create(context.Background(), employee.CreateRequest{FullName: name, Position: "Escrevente"})
	require.NoError(t, err)
	return e
}

func (s *testSetup) priority(t *testing.T, name string) *priority.Priority {
	t.Helper()
	p, err := s.priorities.Create(context.Background(), priority.CreateRequest{Name: name})
	require.NoError(t, err)
	return p
}

func TestProjector_Dashboard(t *testing.T) {
	s := setupProjector(t)
	ctx := context.Background()

	d, err := s.projector.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, projection.Dashboard{}, d)

	ana := s.employee(t, "Ana")
	bia := s.employee(t, "Bia")
	s.employee(t, "Caio")
	p1 := s.priority(t, "Escrituras")
	s.priority(t, "Protestos")

	_, err = s.engine.AddEntry(ctx, ana.ID, p1.ID)
	require.NoError(t, err)
	_, err = s.engine.AddEntry(ctx, bia.ID, p1.ID)
	require.NoError(t, err)

	d, err = s.projector.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, projection.Dashboard{
		TotalEmployees:             3,
		TotalPriorities:            2,
		EmployeesWithPriorities:    2,
		EmployeesWithoutPriorities: 1,
	}, d)

	require.NoError(t, s.employees.Delete(ctx, bia.ID))
	d, err = s.projector.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.TotalEmployees)
	assert.Equal(t, 1, d.EmployeesWithPriorities)
	assert.Equal(t, 1, d.EmployeesWithoutPriorities)
}

func TestProjector_DashboardSeesSharedStorageWrites(t *testing.T) {
	backend := recordstore.NewMemory()
	ctx := context.Background()

	// server and CLI: two processes, each with its own store and bus, on
	// one storage
	serverStore := recordstore.New(backend, event.NewBus(), zap.NewNop())
	cliStore := recordstore.New(backend, event.NewBus(), zap.NewNop())

	projector := projection.NewProjector(
		employeerepo.NewRecordStoreImpl(serverStore),
		priorityrepo.NewRecordStoreImpl(serverStore),
		assignmentrepo.NewRecordStoreImpl(serverStore),
	)
	d, err := projector.Dashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, d.TotalEmployees)

	cli := employee.NewUsecase(employeerepo.NewRecordStoreImpl(cliStore), idgen.NewSequence(), zap.NewNop())
	_, err = cli.Create(ctx, employee.CreateRequest{FullName: "Ana", Position: "Escrevente"})
	require.NoError(t, err)

	d, err = projector.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d.TotalEmployees)
	assert.Equal(t, 1, d.EmployeesWithoutPriorities)
}

func TestProjector_EmployeeView(t *testing.T) {
	s := setupProjector(t)
	ctx := context.Background()
	ana := s.employee(t, "Ana")
	p1 := s.priority(t, "Escrituras")
	p2 := s.priority(t, "Protestos")

	view, err := s.projector.EmployeeView(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, ana.ID, view.Employee.ID)
	assert.Empty(t, view.Priorities)

	_, err = s.engine.Save(ctx, ana.ID, []string{p2.ID, p1.ID})
	require.NoError(t, err)
	view, err = s.projector.EmployeeView(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, view.Priorities, 2)
	assert.Equal(t, "Protestos", view.Priorities[0].Priority.Name)
	assert.Equal(t, 1, view.Priorities[0].Rank)
	assert.Equal(t, "Escrituras", view.Priorities[1].Priority.Name)

	_, err = s.projector.EmployeeView(ctx, "missing")
	assert.ErrorIs(t, err, domainerr.ErrEmployeeNotFound)
}

func TestProjector_Report(t *testing.T) {
	s := setupProjector(t)
	ctx := context.Background()
	ana := s.employee(t, "Ana")
	bia := s.employee(t, "Bia")
	p1 := s.priority(t, "Escrituras")
	p2 := s.priority(t, "Protestos")

	_, err := s.engine.Save(ctx, ana.ID, []string{p1.ID, p2.ID})
	require.NoError(t, err)
	// an assignment left behind by a deleted employee is not reported
	_, err = s.engine.Save(ctx, "ghost", []string{p1.ID})
	require.NoError(t, err)
	require.NoError(t, s.priorities.Delete(ctx, p1.ID))

	all, err := s.projector.Report(ctx, projection.AllEmployees)
	require.NoError(t, err)
	assert.Equal(t, projection.AllEmployees, all.Selection)
	require.Len(t, all.Rows, 2)
	assert.Equal(t, ana.ID, all.Rows[0].Employee.ID)
	require.Len(t, all.Rows[0].Priorities, 1)
	assert.Equal(t, p2.ID, all.Rows[0].Priorities[0].Priority.ID)
	assert.Equal(t, 1, all.Rows[0].Priorities[0].Rank)
	assert.Equal(t, bia.ID, all.Rows[1].Employee.ID)
	assert.Empty(t, all.Rows[1].Priorities)

	empty, err := s.projector.Report(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, projection.AllEmployees, empty.Selection)
	assert.Len(t, empty.Rows, 2)

	one, err := s.projector.Report(ctx, bia.ID)
	require.NoError(t, err)
	require.Len(t, one.Rows, 1)
	assert.Equal(t, bia.ID, one.Rows[0].Employee.ID)

	_, err = s.projector.Report(ctx, "missing")
	assert.True(t, domainerr.IsNotFound(err))
}

func TestProjector_Available(t *testing.T) {
	s := setupProjector(t)
	ctx := context.Background()
	p1 := s.priority(t, "Escrituras")
	p2 := s.priority(t, "Protestos")
	p3 := s.priority(t, "Registro")

	list, err := s.projector.Available(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = s.engine.AddEntry(ctx, "e1", p2.ID)
	require.NoError(t, err)
	list, err = s.projector.Available(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, p1.ID, list[0].ID)
	assert.Equal(t, p3.ID, list[1].ID)
}
