package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// FetchFunc loads the full collection from the backend.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Resource caches one collection. The cache only changes through Refresh,
// and a refresh answer is dropped if a later-issued refresh already landed.
type Resource[T any] struct {
	name   string
	fetch  FetchFunc[T]
	logger *slog.Logger

	mu      sync.RWMutex
	items   []T
	loaded  bool
	lastErr error
	issued  uint64
	applied uint64
}

// NewResource creates an empty resource backed by fetch.
func NewResource[T any](name string, fetch FetchFunc[T], logger *slog.Logger) *Resource[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resource[T]{name: name, fetch: fetch, logger: logger}
}

// Name identifies the resource in logs and errors.
func (r *Resource[T]) Name() string {
	return r.name
}

// List returns a copy of the cached collection.
func (r *Resource[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the cached collection size.
func (r *Resource[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Loaded reports whether any refresh has succeeded.
func (r *Resource[T]) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Err returns the error of the most recent failed refresh, cleared by the
// next successful one.
func (r *Resource[T]) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// Refresh fetches the collection and replaces the cache. On failure the
// previous snapshot is kept.
func (r *Resource[T]) Refresh(ctx context.Context) error {
	r.mu.Lock()
	r.issued++
	seq := r.issued
	r.mu.Unlock()

	items, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		if seq > r.applied {
			r.lastErr = err
		}
		return fmt.Errorf("refreshing %s: %w", r.name, err)
	}
	if seq < r.applied {
		r.logger.Debug("dropping stale refresh", "resource", r.name, "seq", seq, "applied", r.applied)
		return nil
	}
	if items == nil {
		items = []T{}
	}
	r.items = items
	r.applied = seq
	r.loaded = true
	r.lastErr = nil
	return nil
}

// Mutate runs write and then refreshes. A failed write is returned as is
// and skips the refresh. A failed refresh after a successful write wraps
// ErrReloadFailed.
func (r *Resource[T]) Mutate(ctx context.Context, write func(ctx context.Context) error) error {
	if err := write(ctx); err != nil {
		return err
	}
	if err := r.Refresh(ctx); err != nil {
		r.logger.Warn("reload after write failed", "resource", r.name, "error", err)
		return fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return nil
}
