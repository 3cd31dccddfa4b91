package document

import (
	"context"
	"log/slog"

	"genesis-storefront/internal/infra/kv"
	"genesis-storefront/internal/pkg/errs"
)

// Store reads and writes validated JSON documents through a kv.Backend.
type Store struct {
	backend kv.Backend
	codec   *Codec
	logger  *slog.Logger
}

func NewStore(backend kv.Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		codec:   NewCodec(),
		logger:  logger,
	}
}

// Save encodes v and writes it under key. Nothing is written when the value
// does not validate.
func (s *Store) Save(ctx context.Context, key Key, v any) error {
	data, err := s.codec.Encode(key, v)
	if err != nil {
		return err
	}
	if err := s.backend.Put(ctx, key.String(), data); err != nil {
		return errs.Wrap(err, "save "+key.String())
	}
	return nil
}

// Load decodes the document under key into out. found is false when the
// document is absent or corrupt; corrupt documents are logged and otherwise
// treated as absent so callers fall back to their defaults. Only backend
// failures are returned as errors.
func (s *Store) Load(ctx context.Context, key Key, out any) (found bool, err error) {
	data, err := s.backend.Get(ctx, key.String())
	if err != nil {
		if kv.IsNotFound(err) {
			return false, nil
		}
		return false, errs.Wrap(err, "load "+key.String())
	}
	if err := s.codec.Decode(key, data, out); err != nil {
		s.logger.Warn("discarding corrupt document",
			slog.String("key", key.String()),
			slog.String("driver", string(s.backend.Driver())),
			slog.Any("error", err),
		)
		return false, nil
	}
	return true, nil
}

// Clear removes the document under key. Clearing an absent key is not an
// error.
func (s *Store) Clear(ctx context.Context, key Key) error {
	if err := s.backend.Delete(ctx, key.String()); err != nil {
		return errs.Wrap(err, "clear "+key.String())
	}
	return nil
}

func (s *Store) Driver() kv.Driver {
	return s.backend.Driver()
}
