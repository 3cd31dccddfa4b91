package kv

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"genesis-storefront/internal/infra"
	"genesis-storefront/internal/pkg/errs"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS documents (
	key TEXT PRIMARY KEY,
	payload BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLite keeps every document as a row of a single table.
type SQLite struct {
	db        *sql.DB
	namespace string
	logger    *slog.Logger
}

func NewSQLite(ctx context.Context, path, namespace string, logger *slog.Logger) (*SQLite, error) {
	if path == "" {
		path = "genesis.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, errs.Wrap(err, "create sqlite directory")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errs.Wrap(err, "open sqlite")
	}
	// A single connection serialises writers, matching sqlite's own locking.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "create documents table")
	}
	return &SQLite{db: db, namespace: namespace, logger: logger}, nil
}

func (s *SQLite) Driver() Driver { return DriverSQLite }

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindInvalidRecord, "sqlite get "+key, err)
	}
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM documents WHERE key = ?`,
		namespaced(s.namespace, key),
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "sqlite get "+key, nil)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "sqlite get "+key, err)
	}
	return payload, nil
}

func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindInvalidRecord, "sqlite put "+key, err)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents(key, payload, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		namespaced(s.namespace, key), value,
	)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "sqlite put "+key, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindInvalidRecord, "sqlite delete "+key, err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, namespaced(s.namespace, key)); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "sqlite delete "+key, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
