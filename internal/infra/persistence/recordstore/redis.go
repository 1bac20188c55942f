package recordstore

import (
	"context"
	"errors"

	redis "github.com/go-redis/redis/v8"
)

// Redis keeps every collection as a plain string key, the same layout a
// browser's localStorage would have.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Load(ctx context.Context, key Key) ([]byte, bool, error) {
	v, err := r.rdb.Get(ctx, string(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return v, true, nil
}

func (r *Redis) Save(ctx context.Context, key Key, value []byte) error {
	return r.rdb.Set(ctx, string(key), value, 0).Err()
}

func (r *Redis) ReplaceAll(ctx context.Context, values map[Key][]byte) error {
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range Keys {
			if v, ok := values[k]; ok {
				pipe.Set(ctx, string(k), v, 0)
			}
		}
		return nil
	})
	return err
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
