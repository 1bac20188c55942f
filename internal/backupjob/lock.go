package backupjob

import (
	"context"
	"fmt"
	"time"

	redis "github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const lockKey = "priority-system:backup-lock"

// Locker elects the instance that writes a scheduled backup.
type Locker interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
}

// localLocker always wins; used when instances share no redis.
type localLocker struct{}

func (localLocker) TryLock(context.Context) (bool, error) { return true, nil }
func (localLocker) Unlock(context.Context) error          { return nil }

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// RedisLocker holds a SET NX lease on lockKey. The lease expires after ttl
// so a crashed holder never blocks later runs.
type RedisLocker struct {
	rdb    *redis.Client
	ttl    time.Duration
	token  string
	logger *zap.Logger
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl, token: uuid.NewString(), logger: logger}
}

func (l *RedisLocker) TryLock(ctx context.Context) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, lockKey, l.token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if ok {
		l.logger.Debug("acquired backup lock", zap.String("lock_name", lockKey))
	}
	return ok, nil
}

func (l *RedisLocker) Unlock(ctx context.Context) error {
	n, err := releaseScript.Run(ctx, l.rdb, []string{lockKey}, l.token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to release lock: not owner or lock expired")
	}
	return nil
}

func newLocker(rdb *redis.Client, logger *zap.Logger) Locker {
	if rdb == nil {
		return localLocker{}
	}
	return NewRedisLocker(rdb, 10*time.Minute, logger)
}
