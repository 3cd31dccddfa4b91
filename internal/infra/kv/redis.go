package kv

import (
	"context"
	"errors"
	"log/slog"

	"genesis-storefront/internal/infra"
	"genesis-storefront/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

// Redis keeps each document under <namespace>:<key> with no expiry.
type Redis struct {
	client    *redis.Client
	namespace string
	logger    *slog.Logger
}

func NewRedis(ctx context.Context, opts *redis.Options, namespace string, logger *slog.Logger) (*Redis, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "ping redis")
	}
	return &Redis{client: client, namespace: namespace, logger: logger}, nil
}

func (r *Redis) Driver() Driver { return DriverRedis }

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindInvalidRecord, "redis get "+key, err)
	}
	payload, err := r.client.Get(ctx, namespaced(r.namespace, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "redis get "+key, nil)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "redis get "+key, err)
	}
	return payload, nil
}

func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindInvalidRecord, "redis put "+key, err)
	}
	if err := r.client.Set(ctx, namespaced(r.namespace, key), value, 0).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "redis put "+key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindInvalidRecord, "redis delete "+key, err)
	}
	if err := r.client.Del(ctx, namespaced(r.namespace, key)).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "redis delete "+key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
