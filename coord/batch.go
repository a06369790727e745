// SPDX-License-Identifier: MIT

// Package coord: batch transforms.
//
// The default batch algorithm converts element by element with the converter
// Transform would pick. A source basis may take over a whole slice through
// BatchConverter; its output must equal the element-wise default.
// Points are independent, so the parallel variant only decides scheduling:
// output index i always holds the conversion of input index i.
package coord

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// TransformAll converts every point from one basis into another and returns
// the results in input order. points is not modified. On error no partial
// result is returned.
// Complexity: O(len(points)).
func TransformAll(points []RawPoint, from, to Basis) ([]RawPoint, error) {
	if err := checkBases(from, to); err != nil {
		return nil, coordErrorf("TransformAll", err)
	}
	dst := make([]RawPoint, len(points))
	if err := transformInto(dst, points, concrete(from), concrete(to), 0); err != nil {
		return nil, fmt.Errorf("TransformAll %v→%v: %w", from, to, err)
	}

	return dst, nil
}

// TransformAllParallel is TransformAll with the slice split into chunks that
// a bounded pool of goroutines converts concurrently.
//
// Implementation:
//   - Stage 1: reject nil endpoints (ErrNilBasis) and unwrap both bases once.
//   - Stage 2: resolve options (WithWorkers, WithChunkSize) against defaults.
//   - Stage 3: schedule chunk [lo, hi) per task on an errgroup bounded by the
//     worker count; each task writes only dst[lo:hi].
//   - Stage 4: wait; on error return it with the pair as context.
//
// Errors:
//   - ErrNilBasis; otherwise the first converter error, labelled with the
//     index of the failing point. The output is discarded on error.
//
// Complexity:
//   - Time O(len(points)/workers) wall clock, Space O(len(points)).
//
// Notes:
//   - Results are bit-identical to TransformAll for any worker count or
//     chunk size: scheduling never changes which converter runs on a point.
func TransformAllParallel(points []RawPoint, from, to Basis, opts ...Option) ([]RawPoint, error) {
	if err := checkBases(from, to); err != nil {
		return nil, coordErrorf("TransformAllParallel", err)
	}
	o := gatherOptions(opts...)
	f, t := concrete(from), concrete(to)

	dst := make([]RawPoint, len(points))
	var g errgroup.Group
	g.SetLimit(o.Workers())
	for lo := 0; lo < len(points); lo += o.chunkSize {
		lo, hi := lo, min(lo+o.chunkSize, len(points))
		g.Go(func() error {
			return transformInto(dst[lo:hi], points[lo:hi], f, t, lo)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("TransformAllParallel %v→%v: %w", from, to, err)
	}

	return dst, nil
}

// transformInto writes the conversion of src into dst (equal lengths) using
// concrete bases. offset is the index of src[0] in the caller's slice and
// only labels errors.
func transformInto(dst, src []RawPoint, from, to Basis, offset int) error {
	if bc, ok := from.(BatchConverter); ok {
		if fn, ok := bc.DirectBatchTo(to); ok {
			return fn(dst, src)
		}
	}

	_, conv := resolve(from, to)
	var err error
	for i := range src {
		if dst[i], err = conv(src[i]); err != nil {
			return fmt.Errorf("point %d: %w", offset+i, err)
		}
	}

	return nil
}
