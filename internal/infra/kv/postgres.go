package kv

import (
	"context"
	"errors"
	"log/slog"

	"genesis-storefront/internal/infra"
	"genesis-storefront/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS storefront_documents (
	key text PRIMARY KEY,
	payload bytea NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

// Postgres stores documents as bytea so the payload is kept byte-for-byte.
type Postgres struct {
	pool      *pgxpool.Pool
	namespace string
	logger    *slog.Logger
}

// NewPostgres does not take ownership of the pool; Close is a no-op and the
// caller that opened the pool closes it.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool, namespace string, logger *slog.Logger) (*Postgres, error) {
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		return nil, errs.Wrap(err, "create storefront_documents table")
	}
	return &Postgres{pool: pool, namespace: namespace, logger: logger}, nil
}

func (p *Postgres) Driver() Driver { return DriverPostgres }

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, infra.WrapRepoErr(p.logger, infra.KindInvalidRecord, "postgres get "+key, err)
	}
	var payload []byte
	err := p.pool.QueryRow(ctx,
		`SELECT payload FROM storefront_documents WHERE key = $1`,
		namespaced(p.namespace, key),
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(p.logger, infra.KindNotFound, "postgres get "+key, nil)
		}
		return nil, infra.WrapRepoErr(p.logger, infra.KindStoreFailure, "postgres get "+key, err)
	}
	return payload, nil
}

func (p *Postgres) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindInvalidRecord, "postgres put "+key, err)
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO storefront_documents (key, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		namespaced(p.namespace, key), value,
	)
	if err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindStoreFailure, "postgres put "+key, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindInvalidRecord, "postgres delete "+key, err)
	}
	if _, err := p.pool.Exec(ctx, `DELETE FROM storefront_documents WHERE key = $1`, namespaced(p.namespace, key)); err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindStoreFailure, "postgres delete "+key, err)
	}
	return nil
}

func (p *Postgres) Close() error { return nil }
