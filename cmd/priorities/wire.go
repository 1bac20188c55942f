//go:build wireinject
// +build wireinject

package main

//go:generate go run -mod=mod github.com/google/wire/cmd/wire

import (
	"github.com/google/wire"
	"github.com/notarydesk/priorities/internal/api"
	"github.com/notarydesk/priorities/internal/backupjob"
	"github.com/notarydesk/priorities/internal/biz/assignment"
	"github.com/notarydesk/priorities/internal/biz/backup"
	"github.com/notarydesk/priorities/internal/biz/employee"
	"github.com/notarydesk/priorities/internal/biz/priority"
	"github.com/notarydesk/priorities/internal/biz/projection"
	"github.com/notarydesk/priorities/internal/event"
	"github.com/notarydesk/priorities/internal/infra/persistence/assignmentrepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/backuprepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/employeerepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/priorityrepo"
	"github.com/notarydesk/priorities/internal/infra/persistence/recordstore"
	"github.com/notarydesk/priorities/internal/metrics"
	"github.com/notarydesk/priorities/pkg/config"
	"github.com/notarydesk/priorities/pkg/idgen"
	"go.uber.org/zap"
)

func InitializeApp(logger *zap.Logger, cfg config.Config) (*App, error) {
	wire.Build(
		NewApp,

		ProvideRedisClient,

		// other
		event.Provider,
		metrics.Provider,
		backupjob.Provider,
		idgen.Provider,

		// http api providers
		api.Provider,

		// biz providers
		employee.Provider,
		priority.Provider,
		assignment.Provider,
		projection.Provider,
		backup.Provider,

		// infra providers
		recordstore.Provider,
		employeerepo.Provider,
		priorityrepo.Provider,
		assignmentrepo.Provider,
		backuprepo.Provider,
	)
	return nil, nil
}
