package backup_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/notarydesk/priorities/internal/biz/assignment"
	"github.com/notarydesk/priorities/internal/biz/backup"
	"github.com/notarydesk/priorities/internal/biz/employee"
	"github.com/notarydesk/priorities/internal/biz/priority"
	domainerr "github.com/notarydesk/priorities/internal/domain/error"
	"github.com/notarydesk/priorities/internal/event"
	"github.com/notarydesk/priorities/internal/infra/persistence/assignmentrepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/backuprepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/employeerepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/priorityrepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/recordstore"
	"github.com/notarydesk/priorities/pkg/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testSetup struct {
	store      *recordstore.Store
	codec      *backup.Codec
	employees  *employee.Usecase
	priorities *priority.Usecase
	engine     *assignment.Engine
	events     []event.Event
}

func setupCodec(t *testing.T) *testSetup {
	t.Helper()
	s := &testSetup{}
	bus := event.NewBus()
	bus.Subscribe(func(_ context.Context, ev event.Event) { s.events = append(s.events, ev) })
	s.store = recordstore.New(recordstore.NewMemory(), bus, zap.NewNop())

	ids := idgen.NewSequence()
	priorityRepo := priorityrepo.NewRecordStoreImpl(s.store)
	s.codec = backup.NewCodec(backuprepo.NewRecordStoreImpl(s.store), zap.NewNop())
	s.employees = employee.NewUsecase(employeerepo.NewRecordStoreImpl(s.store), ids, zap.NewNop())
	s.priorities = priority.NewUsecase(priorityRepo, ids, zap.NewNop())
	s.engine = assignment.NewEngine(assignmentrepo.NewRecordStoreImpl(s.store), priorityRepo, zap.NewNop())
	return s
}

func (s *testSetup) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	ana, err := s.employees.Create(ctx, employee.CreateRequest{FullName: "Ana", Position: "Escrevente"})
	require.NoError(t, err)
	_, err = s.employees.Create(ctx, employee.CreateRequest{FullName: "Bia", Position: "Auxiliar"})
	require.NoError(t, err)
	p1, err := s.priorities.Create(ctx, priority.CreateRequest{Name: "Escrituras", Color: priority.ColorRed})
	require.NoError(t, err)
	p2, err := s.priorities.Create(ctx, priority.CreateRequest{Name: "Protestos"})
	require.NoError(t, err)
	_, err = s.engine.Save(ctx, ana.ID, []string{p2.ID, p1.ID})
	require.NoError(t, err)
}

func (s *testSetup) snapshot(t *testing.T) map[recordstore.Key]string {
	t.Helper()
	out := map[recordstore.Key]string{}
	for _, k := range recordstore.Keys {
		v, _, err := s.store.Load(context.Background(), k)
		require.NoError(t, err)
		out[k] = string(v)
	}
	return out
}

func TestCodec_ExportEmptyStore(t *testing.T) {
	s := setupCodec(t)
	env, err := s.codec.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[]", env.Employees)
	assert.Equal(t, "[]", env.Priorities)
	assert.Equal(t, "[]", env.Assignments)

	ts, err := time.Parse(backup.TimestampLayout, env.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestCodec_RoundTrip(t *testing.T) {
	s := setupCodec(t)
	ctx := context.Background()
	s.seed(t)
	before := s.snapshot(t)

	env, err := s.codec.Export(ctx)
	require.NoError(t, err)
	data, err := backup.Marshal(env)
	require.NoError(t, err)

	other := setupCodec(t)
	_, err = other.codec.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, before, other.snapshot(t))

	list, err := other.employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].FullName)

	require.Len(t, other.events, 1)
	assert.Equal(t, event.KindCollectionReplaced, other.events[0].Kind)
	assert.Len(t, other.events[0].Keys, 3)
}

func TestCodec_ImportAcceptsArrays(t *testing.T) {
	s := setupCodec(t)
	payload := `{
		"employees": [{"id":"7","fullName":"Ana","position":"Escrevente","createdAt":"2024-05-01T10:00:00.000Z"}],
		"priorities": "[{\"id\":\"9\",\"name\":\"Escrituras\",\"description\":\"\",\"color\":\"bg-red-500\",\"createdAt\":\"2024-05-01T10:00:00.000Z\"}]",
		"assignments": [{"employeeId":"7","priorities":[{"priorityId":"9","order":1}]}],
		"timestamp": "2024-05-01T10:00:00.000Z"
	}`
	env, err := s.codec.Import(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:00:00.000Z", env.Timestamp)

	a, err := s.engine.Get(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, a.PriorityIDs())
}

func TestCodec_ImportRejectsCorruptPayloads(t *testing.T) {
	cases := map[string]string{
		"not json":              `{`,
		"not an object":         `[]`,
		"missing employees":     `{"priorities":"[]","assignments":"[]"}`,
		"null priorities":       `{"employees":"[]","priorities":null,"assignments":"[]"}`,
		"string is not json":    `{"employees":"oops","priorities":"[]","assignments":"[]"}`,
		"object not array":      `{"employees":"{}","priorities":"[]","assignments":"[]"}`,
		"number":                `{"employees":"[]","priorities":42,"assignments":"[]"}`,
		"wrong field type":      `{"employees":[{"id":1}],"priorities":"[]","assignments":"[]"}`,
		"bad order type":        `{"employees":"[]","priorities":"[]","assignments":[{"employeeId":"1","priorities":[{"priorityId":"2","order":"x"}]}]}`,
		"bad date":              `{"employees":[{"id":"1","createdAt":"yesterday"}],"priorities":"[]","assignments":"[]"}`,
		"last field corrupted":  `{"employees":"[]","priorities":"[]","assignments":"[1,2"}`,
		"numeric timestamp":     `{"employees":"[]","priorities":"[]","assignments":"[]","timestamp":123}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			s := setupCodec(t)
			s.seed(t)
			before := s.snapshot(t)
			written := len(s.events)

			_, err := s.codec.Import(context.Background(), []byte(payload))
			require.Error(t, err)
			assert.True(t, domainerr.IsCorruptBackup(err), "got %v", err)
			assert.Equal(t, before, s.snapshot(t))
			assert.Len(t, s.events, written)
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := backup.Marshal(&backup.Envelope{
		Employees:   "[]",
		Priorities:  "[]",
		Assignments: "[]",
		Timestamp:   "2024-05-01T10:00:00.000Z",
	})
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, map[string]string{
		"employees":   "[]",
		"priorities":  "[]",
		"assignments": "[]",
		"timestamp":   "2024-05-01T10:00:00.000Z",
	}, fields)
}

func TestFileName(t *testing.T) {
	ts := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "backup-prioridades-2024-05-01.json", backup.FileName(ts))
}
