package recordstore

import (
	"fmt"

	redis "github.com/go-redis/redis/v8"
	"github.com/google/wire"
	"github.com/notarydesk/priorities/internal/orm"
	"github.com/notarydesk/priorities/pkg/config"
	"go.uber.org/zap"
)

var Provider = wire.NewSet(OpenBackend, New)

// OpenBackend picks the storage medium from storage.driver. rdb may be nil
// unless the driver is redis.
func OpenBackend(cfg config.Config, rdb *redis.Client, logger *zap.Logger) (Backend, error) {
	switch cfg.Storage.Driver {
	case "memory":
		logger.Warn("using in-memory record store, data is lost on exit")
		return NewMemory(), nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("storage driver redis requires redis.enabled")
		}
		return NewRedis(rdb), nil
	case "mysql", "postgres", "sqlite":
		db, err := orm.Open(cfg, logger)
		if err != nil {
			return nil, err
		}
		return NewGorm(db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
