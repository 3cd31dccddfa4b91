package kv

import (
	"context"
	"strings"

	"genesis-storefront/internal/infra"
	"genesis-storefront/internal/pkg/errs"
)

//go:generate mockgen -source=backend.go -destination=../../../tests/mock/kv/backend.go -package=kvmock

// Driver names a durable backend implementation.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverFile     Driver = "file"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverRedis    Driver = "redis"
	DriverS3       Driver = "s3"
)

// Backend stores opaque documents by key. Payloads are returned exactly as
// written. A missing key is reported as an infra.KindNotFound error.
type Backend interface {
	Driver() Driver
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var errInvalidKey = errs.New("invalid document key")

// validateKey keeps keys to a flat, path-safe alphabet so every backend can
// use them verbatim.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errInvalidKey
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return errInvalidKey
		}
	}
	return nil
}

func namespaced(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + ":" + key
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// IsNotFound reports whether err is a backend miss.
func IsNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
