// SPDX-License-Identifier: MIT

// Package coord represents 3-component physical quantities tagged with a
// coordinate basis and converts them between bases.
//
// 🚀 What is in the box?
//
//   - RawPoint: a basis-agnostic [3]float64, the currency of every conversion.
//   - Basis catalog: Cartesian, Cylindrical (r, φ, z), Spherical (r, θ, φ),
//     ScaledCartesian(s) and VectorBasis(M) with three linearly independent rows.
//   - Point[B] and Collection[B]: data bound to the basis it is expressed in.
//   - AnyBasis: a basis whose concrete variant is picked at run time. It takes
//     part in the very same conversions and yields bit-identical results.
//
// ✨ Resolution order used by Transform (most specific wins):
//
//  1. a direct converter offered by the source basis for the target's type
//     (PairConverter), identity converters included;
//  2. a direct converter offered by the target basis for the source's type
//     (TargetConverter), so a basis defined elsewhere can claim Cylindrical → T;
//  3. source is Cartesian: the target's FromCartesian;
//  4. target is Cartesian: the source's ToCartesian;
//  5. otherwise go through Cartesian: Transform(Transform(p, from, Cartesian{}), Cartesian{}, to).
//
// If both sides offer a direct converter, the source's is used.
// AnyBasis endpoints and pointers to catalog bases are unwrapped to their
// concrete value before step 1.
// Resolve reports which rule a pair of bases will use.
//
// ⚙️ Usage:
//
//	p := coord.NewPoint(1, 0, 5, coord.Cylindrical{})
//	q, err := coord.TransformPoint(p, coord.Cartesian{}) // (1, 0, 5)
//
//	raw, err := coord.Transform(coord.NewRawPoint(2, 4, 6),
//		coord.Cartesian{}, coord.MustScaledCartesian(2)) // (1, 2, 3)
//
// Adding a basis means implementing Basis (ToCartesian and FromCartesian);
// everything else falls back through Cartesian. A new basis does not take
// part in AnyBasis until Kind and AnyBasis are extended.
//
// Degenerate geometry: when x = y = 0 the azimuth is reported as 0, and at the
// origin the spherical polar angle is 0 too. Results are never NaN for finite input.
//
// All functions are pure; bases are immutable and safe for concurrent use.
// Collections must not be mutated while another goroutine reads them.
package coord
