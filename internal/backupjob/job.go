// Package backupjob writes periodic backup files on a cron schedule.
package backupjob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	redis "github.com/go-redis/redis/v8"
	"github.com/google/wire"
	"github.com/notarydesk/priorities/internal/biz/backup"
	"github.com/notarydesk/priorities/pkg/config"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var Provider = wire.NewSet(New)

const filePrefix = "backup-prioridades-"

type Exporter interface {
	Export(ctx context.Context) (*backup.Envelope, error)
}

type Job struct {
	cfg      config.BackupConfig
	exporter Exporter
	locker   Locker
	logger   *zap.Logger
	cron     *cron.Cron
	now      func() time.Time
}

// New builds the job. With a redis client, instances sharing it elect one
// writer per scheduled run.
func New(cfg config.Config, exporter *backup.Codec, rdb *redis.Client, logger *zap.Logger) *Job {
	logger = logger.Named("backupjob")
	return newJob(cfg.Backup, exporter, newLocker(rdb, logger), logger)
}

func newJob(cfg config.BackupConfig, exporter Exporter, locker Locker, logger *zap.Logger) *Job {
	return &Job{
		cfg:      cfg,
		exporter: exporter,
		locker:   locker,
		logger:   logger,
		cron:     cron.New(),
		now:      time.Now,
	}
}

// Enabled reports whether a schedule is configured.
func (j *Job) Enabled() bool {
	return strings.TrimSpace(j.cfg.Schedule) != ""
}

// Start registers the export on the configured schedule. Without a schedule
// it does nothing.
func (j *Job) Start() error {
	if !j.Enabled() {
		return nil
	}
	entryID, err := j.cron.AddFunc(j.cfg.Schedule, j.scheduled)
	if err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", j.cfg.Schedule, err)
	}
	j.cron.Start()
	j.logger.Info("backup scheduled",
		zap.String("cron", j.cfg.Schedule),
		zap.String("dir", j.cfg.Dir),
		zap.Int("entry_id", int(entryID)))
	return nil
}

func (j *Job) scheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ok, err := j.locker.TryLock(ctx)
	if err != nil {
		j.logger.Error("scheduled backup skipped", zap.Error(err))
		return
	}
	if !ok {
		j.logger.Debug("scheduled backup taken by another instance")
		return
	}
	defer func() {
		if err := j.locker.Unlock(ctx); err != nil {
			j.logger.Warn("failed to release backup lock", zap.Error(err))
		}
	}()

	if _, err := j.Run(ctx); err != nil {
		j.logger.Error("scheduled backup failed", zap.Error(err))
	}
}

func (j *Job) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

// Run exports once into the backup directory and prunes old files. A second
// run on the same day overwrites that day's file.
func (j *Job) Run(ctx context.Context) (string, error) {
	env, err := j.exporter.Export(ctx)
	if err != nil {
		return "", err
	}
	data, err := backup.Marshal(env)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(j.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	path := filepath.Join(j.cfg.Dir, backup.FileName(j.now()))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	j.logger.Info("backup written", zap.String("path", path))

	if err := j.prune(); err != nil {
		j.logger.Warn("backup prune failed", zap.Error(err))
	}
	return path, nil
}

// prune keeps the newest cfg.Keep files. Names sort by date.
func (j *Job) prune() error {
	if j.cfg.Keep <= 0 {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(j.cfg.Dir, filePrefix+"*.json"))
	if err != nil {
		return err
	}
	if len(matches) <= j.cfg.Keep {
		return nil
	}
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-j.cfg.Keep] {
		if err := os.Remove(old); err != nil {
			return err
		}
		j.logger.Debug("backup pruned", zap.String("path", old))
	}
	return nil
}
