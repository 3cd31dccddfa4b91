package kv

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented counts every call on the wrapped backend by op and result
// (ok, not_found or error).
type Instrumented struct {
	Backend
	ops *prometheus.CounterVec
}

func Instrument(b Backend, ops *prometheus.CounterVec) *Instrumented {
	return &Instrumented{Backend: b, ops: ops}
}

func (i *Instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := i.Backend.Get(ctx, key)
	i.observe("get", err)
	return v, err
}

func (i *Instrumented) Put(ctx context.Context, key string, value []byte) error {
	err := i.Backend.Put(ctx, key, value)
	i.observe("put", err)
	return err
}

func (i *Instrumented) Delete(ctx context.Context, key string) error {
	err := i.Backend.Delete(ctx, key)
	i.observe("delete", err)
	return err
}

func (i *Instrumented) observe(op string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case IsNotFound(err):
		result = "not_found"
	default:
		result = "error"
	}
	i.ops.WithLabelValues(string(i.Backend.Driver()), op, result).Inc()
}
