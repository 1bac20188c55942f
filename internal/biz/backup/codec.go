package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/wire"
	domainerr "github.com/notarydesk/priorities/internal/domain/error"
	"go.uber.org/zap"
)

var Provider = wire.NewSet(NewCodec)

// TimestampLayout matches the ISO-8601 form browsers produce.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Collections holds the serialized JSON array of each collection.
type Collections struct {
	Employees   []byte
	Priorities  []byte
	Assignments []byte
}

// Repo reads and replaces the three collections as raw JSON. ReplaceAll must
// write all of them or none.
type Repo interface {
	LoadAll(ctx context.Context) (Collections, error)
	ReplaceAll(ctx context.Context, c Collections) error
}

// Envelope is the backup file. Each data field carries the collection in its
// stored string form.
type Envelope struct {
	Employees   string `json:"employees"`
	Priorities  string `json:"priorities"`
	Assignments string `json:"assignments"`
	Timestamp   string `json:"timestamp"`
}

type Codec struct {
	repo   Repo
	logger *zap.Logger
	now    func() time.Time
}

func NewCodec(repo Repo, logger *zap.Logger) *Codec {
	return &Codec{repo: repo, logger: logger.Named("backup"), now: time.Now}
}

// FileName is the suggested name of a backup taken at t.
func FileName(t time.Time) string {
	return "backup-prioridades-" + t.Format("2006-01-02") + ".json"
}

// Export snapshots the three collections. Collections never written export
// as an empty array.
func (c *Codec) Export(ctx context.Context) (*Envelope, error) {
	cols, err := c.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export backup: %w", err)
	}
	return &Envelope{
		Employees:   orEmpty(cols.Employees),
		Priorities:  orEmpty(cols.Priorities),
		Assignments: orEmpty(cols.Assignments),
		Timestamp:   c.now().UTC().Format(TimestampLayout),
	}, nil
}

// Marshal renders an envelope the way backup files are written.
func Marshal(env *Envelope) ([]byte, error) {
	return json.MarshalIndent(env, "", "  ")
}

// Import validates payload and, if every collection is well formed, replaces
// all three at once. Any problem is a CorruptBackupError and nothing is
// written.
func (c *Codec) Import(ctx context.Context, payload []byte) (*Envelope, error) {
	cols, env, err := Decode(payload)
	if err != nil {
		c.logger.Warn("backup rejected", zap.Error(err))
		return nil, err
	}
	if err := c.repo.ReplaceAll(ctx, cols); err != nil {
		return nil, fmt.Errorf("import backup: %w", err)
	}
	c.logger.Info("backup restored", zap.String("timestamp", env.Timestamp))
	return env, nil
}

// Decode parses and shape-checks a backup payload without touching storage.
// Each data field may be a JSON string holding an array, or the array itself.
func Decode(payload []byte) (Collections, *Envelope, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return Collections{}, nil, domainerr.NewCorruptBackupError(err)
	}

	employees, err := field(raw, "employees", checkEmployees)
	if err != nil {
		return Collections{}, nil, err
	}
	priorities, err := field(raw, "priorities", checkPriorities)
	if err != nil {
		return Collections{}, nil, err
	}
	assignments, err := field(raw, "assignments", checkAssignments)
	if err != nil {
		return Collections{}, nil, err
	}

	env := &Envelope{
		Employees:   string(employees),
		Priorities:  string(priorities),
		Assignments: string(assignments),
	}
	if ts, ok := raw["timestamp"]; ok {
		if err := json.Unmarshal(ts, &env.Timestamp); err != nil {
			return Collections{}, nil, domainerr.NewCorruptBackupError(fmt.Errorf("timestamp: %w", err))
		}
	}
	return Collections{Employees: employees, Priorities: priorities, Assignments: assignments}, env, nil
}

func field(raw map[string]json.RawMessage, name string, check func([]byte) error) ([]byte, error) {
	value, ok := raw[name]
	if !ok || isNull(value) {
		return nil, domainerr.NewCorruptBackupError(fmt.Errorf("missing %s", name))
	}

	data := []byte(value)
	if bytes.HasPrefix(bytes.TrimSpace(value), []byte(`"`)) {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, domainerr.NewCorruptBackupError(fmt.Errorf("%s: %w", name, err))
		}
		data = []byte(s)
	}

	if err := check(data); err != nil {
		return nil, domainerr.NewCorruptBackupError(fmt.Errorf("%s: %w", name, err))
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return nil, domainerr.NewCorruptBackupError(fmt.Errorf("%s: %w", name, err))
	}
	return compact.Bytes(), nil
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func orEmpty(v []byte) string {
	if len(bytes.TrimSpace(v)) == 0 {
		return "[]"
	}
	return string(v)
}

var errNotArray = errors.New("not a JSON array")

// The shapes below only pin field types; presence and content are not
// checked.

type employeeShape struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

type priorityShape struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

type assignmentShape struct {
	EmployeeID string `json:"employeeId"`
	Priorities []struct {
		PriorityID string `json:"priorityId"`
		Order      int    `json:"order"`
	} `json:"priorities"`
}

func checkEmployees(data []byte) error {
	var v []*employeeShape
	return decodeArray(data, &v)
}

func checkPriorities(data []byte) error {
	var v []*priorityShape
	return decodeArray(data, &v)
}

func checkAssignments(data []byte) error {
	var v []*assignmentShape
	return decodeArray(data, &v)
}

func decodeArray(data []byte, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return errNotArray
	}
	return json.Unmarshal(trimmed, v)
}
