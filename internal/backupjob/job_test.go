package backupjob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/notarydesk/priorities/internal/biz/backup"
	"github.com/notarydesk/priorities/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeExporter struct {
	env *backup.Envelope
	err error
}

func (f *fakeExporter) Export(context.Context) (*backup.Envelope, error) {
	return f.env, f.err
}

func newTestJob(t *testing.T, keep int, exporter Exporter) (*Job, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "backups")
	j := newJob(config.BackupConfig{Dir: dir, Keep: keep}, exporter, localLocker{}, zap.NewNop())
	return j, dir
}

func TestJob_Run(t *testing.T) {
	env := &backup.Envelope{Employees: "[]", Priorities: "[]", Assignments: "[]", Timestamp: "2025-03-07T12:00:00.000Z"}
	j, dir := newTestJob(t, 3, &fakeExporter{env: env})
	j.now = func() time.Time { return time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC) }

	path, err := j.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "backup-prioridades-2025-03-07.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := backup.Marshal(env)
	require.NoError(t, err)
	assert.Equal(t, want, data)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestJob_RunPrunes(t *testing.T) {
	j, dir := newTestJob(t, 2, &fakeExporter{env: &backup.Envelope{}})
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		at := day.AddDate(0, 0, i)
		j.now = func() time.Time { return at }
		_, err := j.Run(context.Background())
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	_, err := j.Run(context.Background())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"backup-prioridades-2025-03-03.json",
		"backup-prioridades-2025-03-04.json",
		"notes.txt",
	}, names)
}

func TestJob_RunExportError(t *testing.T) {
	boom := errors.New("store down")
	j, dir := newTestJob(t, 2, &fakeExporter{err: boom})

	_, err := j.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestJob_Schedule(t *testing.T) {
	j, _ := newTestJob(t, 1, &fakeExporter{env: &backup.Envelope{}})
	assert.False(t, j.Enabled())
	require.NoError(t, j.Start())
	j.Stop()

	j.cfg.Schedule = "not a cron line"
	assert.True(t, j.Enabled())
	assert.Error(t, j.Start())

	j.cfg.Schedule = "@every 1h"
	require.NoError(t, j.Start())
	assert.Len(t, j.cron.Entries(), 1)
	j.Stop()
}

type fakeLocker struct {
	grant    bool
	err      error
	unlocked int
}

func (l *fakeLocker) TryLock(context.Context) (bool, error) { return l.grant, l.err }

func (l *fakeLocker) Unlock(context.Context) error {
	l.unlocked++
	return nil
}

func TestJob_ScheduledHonorsLock(t *testing.T) {
	j, dir := newTestJob(t, 1, &fakeExporter{env: &backup.Envelope{}})

	lost := &fakeLocker{grant: false}
	j.locker = lost
	j.scheduled()
	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
	assert.Zero(t, lost.unlocked)

	failing := &fakeLocker{err: errors.New("redis down")}
	j.locker = failing
	j.scheduled()
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))

	won := &fakeLocker{grant: true}
	j.locker = won
	j.scheduled()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, won.unlocked)
}
