// SPDX-License-Identifier: MIT

// Package coord: functional configuration for parallel batch transforms.
//
// Design goals:
//   - Deterministic output: worker count and chunk size never change results,
//     only how the work is scheduled.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package coord

import (
	"fmt"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers = 0 means runtime.GOMAXPROCS(0) workers.
	DefaultWorkers = 0

	// DefaultChunkSize is the number of points handed to a worker at a time.
	DefaultChunkSize = 1024
)

// Option configures TransformAllParallel and TransformCollectionParallel.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers   int // ≥ 0; 0 → GOMAXPROCS
	chunkSize int // ≥ 1
}

// WithWorkers bounds the number of goroutines converting at once.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("WithWorkers(%d): %w", n, ErrInvalidOption))
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkSize sets how many consecutive points one task converts.
// Panics when n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("WithChunkSize(%d): %w", n, ErrInvalidOption))
	}

	return func(o *Options) { o.chunkSize = n }
}

// Workers reports the resolved worker bound.
func (o Options) Workers() int {
	if o.workers == DefaultWorkers {
		return runtime.GOMAXPROCS(0)
	}

	return o.workers
}

// ChunkSize reports the resolved chunk size.
func (o Options) ChunkSize() int { return o.chunkSize }

// NewOptions resolves setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   DefaultWorkers,
		chunkSize: DefaultChunkSize,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
