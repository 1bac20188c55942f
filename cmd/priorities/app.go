package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/notarydesk/priorities/internal/api"
	"github.com/notarydesk/priorities/internal/backupjob"
	"github.com/notarydesk/priorities/internal/biz/backup"
	"github.com/notarydesk/priorities/internal/biz/projection"
	"github.com/notarydesk/priorities/internal/event"
	"github.com/notarydesk/priorities/internal/infra/persistence/recordstore"
	"github.com/notarydesk/priorities/internal/metrics"
	"github.com/notarydesk/priorities/pkg/config"
	"go.uber.org/zap"
)

// App owns the long-lived components of one process.
type App struct {
	cfg       config.Config
	logger    *zap.Logger
	server    *api.Server
	store     *recordstore.Store
	bus       *event.Bus
	relay     *event.RedisRelay
	projector *projection.Projector
	codec     *backup.Codec
	metrics   *metrics.Metrics
	job       *backupjob.Job

	httpServer  *http.Server
	unsubscribe []func()
}

func NewApp(
	cfg config.Config,
	logger *zap.Logger,
	server *api.Server,
	store *recordstore.Store,
	bus *event.Bus,
	relay *event.RedisRelay,
	projector *projection.Projector,
	codec *backup.Codec,
	m *metrics.Metrics,
	job *backupjob.Job,
) *App {
	app := &App{
		cfg:       cfg,
		logger:    logger,
		server:    server,
		store:     store,
		bus:       bus,
		relay:     relay,
		projector: projector,
		codec:     codec,
		metrics:   m,
		job:       job,
	}
	app.unsubscribe = append(app.unsubscribe,
		m.Watch(bus),
		bus.Subscribe(func(_ context.Context, ev event.Event) {
			logger.Debug("store changed",
				zap.String("kind", string(ev.Kind)),
				zap.Strings("keys", ev.Keys),
				zap.Bool("remote", ev.Remote))
		}),
	)
	return app
}

// Serve starts the background workers and the HTTP server and blocks until
// ctx is done or the server fails.
func (a *App) Serve(ctx context.Context) error {
	if err := a.relay.Start(ctx); err != nil {
		return fmt.Errorf("start event relay: %w", err)
	}
	if err := a.job.Start(); err != nil {
		return err
	}

	a.httpServer = &http.Server{
		Addr:           net.JoinHostPort(a.cfg.Server.IP, strconv.Itoa(a.cfg.Server.Port)),
		Handler:        a.server.Router(),
		ReadTimeout:    a.cfg.Server.ReadTimeout,
		WriteTimeout:   a.cfg.Server.WriteTimeout,
		MaxHeaderBytes: a.cfg.Server.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting API server", zap.String("addr", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	}
}

// Shutdown stops everything Serve started and closes the store.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown api server: %w", err))
		}
	}
	a.job.Stop()
	a.relay.Stop()
	for _, unsubscribe := range a.unsubscribe {
		unsubscribe()
	}
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	return errors.Join(errs...)
}
