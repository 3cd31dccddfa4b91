package kv

import (
	"context"
	"log/slog"

	"genesis-storefront/internal/infra/db"
	"genesis-storefront/internal/pkg/config"
	"genesis-storefront/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

// Open selects a Backend from the store configuration.
//
//	STORE_DRIVER: memory|file|sqlite|postgres|redis|s3 (default file)
//
// The returned cleanup releases the backend and any connection pool opened
// for it.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (Backend, func(), error) {
	sc := cfg.Store
	switch Driver(sc.Driver) {
	case DriverMemory:
		b := NewMemory(sc.Namespace, logger)
		return b, func() {}, nil
	case DriverFile, "":
		b, err := NewFile(sc.Dir, sc.Namespace, logger)
		if err != nil {
			return nil, nil, err
		}
		return b, func() {}, nil
	case DriverSQLite:
		b, err := NewSQLite(ctx, sc.SQLitePath, sc.Namespace, logger)
		if err != nil {
			return nil, nil, err
		}
		return b, closer(b, logger), nil
	case DriverPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		b, err := NewPostgres(ctx, pool, sc.Namespace, logger)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		return b, cleanup, nil
	case DriverRedis:
		b, err := NewRedis(ctx, &redis.Options{
			Addr:     sc.RedisAddr,
			Password: sc.RedisPassword,
			DB:       sc.RedisDB,
		}, sc.Namespace, logger)
		if err != nil {
			return nil, nil, err
		}
		return b, closer(b, logger), nil
	case DriverS3:
		b, err := NewS3(ctx, S3Options{
			Bucket:          sc.S3.Bucket,
			Region:          sc.S3.Region,
			Endpoint:        sc.S3.Endpoint,
			AccessKeyID:     sc.S3.AccessKeyID,
			SecretAccessKey: sc.S3.SecretAccessKey,
			PathStyle:       sc.S3.PathStyle,
		}, sc.Namespace, logger)
		if err != nil {
			return nil, nil, err
		}
		return b, func() {}, nil
	default:
		return nil, nil, errs.New("unknown store driver " + sc.Driver)
	}
}

func closer(b Backend, logger *slog.Logger) func() {
	return func() {
		if err := b.Close(); err != nil {
			logger.Error("failed to close store backend", "driver", string(b.Driver()), "error", err)
		}
	}
}
