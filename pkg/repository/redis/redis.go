package redis

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

const keyPrefix = "coachnote:"

// Redis stores device entries as plain string keys
type Redis struct {
	client   *goredis.Client
	deviceID types.DeviceID
	ttl      time.Duration
}

var _ interfaces.Repository = &Redis{}

type Option func(*Redis)

// WithTTL expires entries ttl after their last write. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// New connects to addr and verifies the connection with PING
func New(ctx context.Context, addr, password string, db int, deviceID types.DeviceID, opts ...Option) (*Redis, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "failed to connect to redis", goerr.V("addr", addr))
	}

	r := &Redis{client: client, deviceID: deviceID}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Redis) key(key types.StorageKey) string {
	return keyPrefix + r.deviceID.String() + ":" + key.String()
}

func (r *Redis) Get(ctx context.Context, key types.StorageKey) ([]byte, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get entry", goerr.V("key", key))
	}
	return value, nil
}

func (r *Redis) Put(ctx context.Context, key types.StorageKey, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to put entry", goerr.V("key", key))
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key types.StorageKey) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return goerr.Wrap(err, "failed to delete entry", goerr.V("key", key))
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
