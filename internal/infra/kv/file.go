package kv

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"genesis-storefront/internal/infra"
	"genesis-storefront/internal/pkg/errs"
)

// File keeps one <root>/<namespace>/<key>.json file per document. Writes go
// through a temp file and a rename so a reader never sees a partial payload.
type File struct {
	root   string
	logger *slog.Logger
}

func NewFile(dir, namespace string, logger *slog.Logger) (*File, error) {
	if dir == "" {
		dir = "./data"
	}
	root := filepath.Join(dir, namespace)
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, errs.Wrap(err, "create store directory")
	}
	return &File{root: root, logger: logger}, nil
}

func (f *File) Driver() Driver { return DriverFile }

func (f *File) pathFor(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	return filepath.Join(f.root, key+".json"), nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	path, err := f.pathFor(key)
	if err != nil {
		return nil, infra.WrapRepoErr(f.logger, infra.KindInvalidRecord, "file get "+key, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, infra.WrapRepoErr(f.logger, infra.KindNotFound, "file get "+key, nil)
		}
		return nil, infra.WrapRepoErr(f.logger, infra.KindStoreFailure, "file get "+key, err)
	}
	return data, nil
}

func (f *File) Put(_ context.Context, key string, value []byte) error {
	path, err := f.pathFor(key)
	if err != nil {
		return infra.WrapRepoErr(f.logger, infra.KindInvalidRecord, "file put "+key, err)
	}
	if err := writeAtomic(path, value); err != nil {
		return infra.WrapRepoErr(f.logger, infra.KindStoreFailure, "file put "+key, err)
	}
	return nil
}

func (f *File) Delete(_ context.Context, key string) error {
	path, err := f.pathFor(key)
	if err != nil {
		return infra.WrapRepoErr(f.logger, infra.KindInvalidRecord, "file delete "+key, err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return infra.WrapRepoErr(f.logger, infra.KindStoreFailure, "file delete "+key, err)
	}
	return nil
}

func (f *File) Close() error { return nil }

func writeAtomic(path string, value []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
