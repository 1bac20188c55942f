package event

import (
	"context"
	"encoding/json"
	"sync"

	redis "github.com/go-redis/redis/v8"
	"github.com/notarydesk/priorities/pkg/config"
	"go.uber.org/zap"
)

const redisChannel = "priority-system:events"

// RedisRelay mirrors local bus events to other instances over redis pub/sub
// and replays theirs on the local bus. It is a no-op unless redis.relay is
// set and a client is available, so a single instance works without redis.
type RedisRelay struct {
	bus    *Bus
	rdb    *redis.Client
	logger *zap.Logger

	mu          sync.Mutex
	cancel      context.CancelFunc
	unsubscribe func()
	done        chan struct{}
}

func NewRedisRelay(cfg config.Config, bus *Bus, rdb *redis.Client, logger *zap.Logger) *RedisRelay {
	if !cfg.Redis.Relay {
		rdb = nil
	}
	return &RedisRelay{bus: bus, rdb: rdb, logger: logger.Named("event-relay")}
}

func (r *RedisRelay) Start(ctx context.Context) error {
	if r.rdb == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return nil
	}

	pubsub := r.rdb.Subscribe(ctx, redisChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	r.unsubscribe = r.bus.Subscribe(r.forward)

	go func() {
		defer close(r.done)
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-runCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				r.receive(runCtx, msg.Payload)
			}
		}
	}()

	r.logger.Info("event relay started", zap.String("channel", redisChannel), zap.String("instance_id", r.bus.InstanceID()))
	return nil
}

func (r *RedisRelay) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel == nil {
		return
	}
	r.unsubscribe()
	r.cancel()
	<-r.done
	r.cancel = nil
}

func (r *RedisRelay) forward(ctx context.Context, ev Event) {
	if ev.Remote || ev.Source != r.bus.InstanceID() {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		r.logger.Error("failed to encode event", zap.Error(err))
		return
	}
	if err := r.rdb.Publish(ctx, redisChannel, payload).Err(); err != nil {
		r.logger.Warn("failed to publish event", zap.Error(err), zap.String("kind", string(ev.Kind)))
	}
}

func (r *RedisRelay) receive(ctx context.Context, payload string) {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		r.logger.Warn("dropping malformed event", zap.Error(err))
		return
	}
	if ev.Source == r.bus.InstanceID() {
		return
	}
	ev.Remote = true
	r.bus.dispatch(ctx, ev)
}
