package kv

import (
	"context"
	"log/slog"
	"sync"

	"genesis-storefront/internal/infra"
)

// Memory is a process-local backend.
type Memory struct {
	mu        sync.RWMutex
	namespace string
	data      map[string][]byte
	logger    *slog.Logger
}

func NewMemory(namespace string, logger *slog.Logger) *Memory {
	return &Memory{
		namespace: namespace,
		data:      make(map[string][]byte),
		logger:    logger,
	}
}

func (m *Memory) Driver() Driver { return DriverMemory }

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, infra.WrapRepoErr(m.logger, infra.KindInvalidRecord, "memory get "+key, err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[namespaced(m.namespace, key)]
	if !ok {
		return nil, infra.WrapRepoErr(m.logger, infra.KindNotFound, "memory get "+key, nil)
	}
	return cloneBytes(v), nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(m.logger, infra.KindInvalidRecord, "memory put "+key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[namespaced(m.namespace, key)] = cloneBytes(value)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(m.logger, infra.KindInvalidRecord, "memory delete "+key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, namespaced(m.namespace, key))
	return nil
}

func (m *Memory) Close() error { return nil }
