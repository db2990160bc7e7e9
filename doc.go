// Package quatmath is a small, precision-generic quaternion library for
// 3D rotation math and general quaternion algebra.
//
// 🚀 What is quatmath?
//
//	A pure-Go value-type library that brings together:
//		• Quaternion[F]: a 4-component hypercomplex value over float32 or float64
//		• Classification: finite / normal / subnormal / zero / real / pure
//		• Canonical forms: one representative per mathematical value, and one
//		  per 3D transform (q and −q collapsed)
//		• Cross-precision conversion: rounding (total) and exact (all-or-nothing)
//		• Algebra: Hamilton product, conjugate, axis-angle rotation, slerp
//
// ✨ Why choose quatmath?
//
//   - IEEE-754 done right – signed zero, subnormals, infinities and NaN are
//     classified jointly across all four components, not per-component ad hoc
//   - Value semantics – no pointers, no shared state, safe to copy anywhere
//   - Pure Go – no cgo, no hidden runtime deps
//   - Precision-generic – one implementation for float32 and float64
//
// Under the hood, everything is organized under two subpackages:
//
//	fp/   — the generic real-number layer: IEEE-754 classification and
//	        cross-precision conversion primitives for float32 | float64
//	quat/ — the Quaternion and Vector value types, predicates, canonical
//	        forms, constructors, conversions and rotation algebra
//
// Quick ASCII example:
//
//	q = x·i + y·j + z·k + r
//
//	(-0, -0, -0 | r=-0)  ── Canonicalized ──▶  (+0, +0, +0 | r=+0)
//	(+∞,  0,  0 | r=-5)  ── Canonicalized ──▶  (+0, +0, +0 | r=+∞)
//	( 1,  2,  3 | r=-3)  ── CanonicalizedTransform ──▶  (-1, -2, -3 | r=+3)
//
// Dive into the quat package docs for the full contract of each predicate
// and canonical form.
//
//	go get github.com/katalvlaran/quatmath/quat
package quatmath
