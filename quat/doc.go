// Package quat provides a precision-generic quaternion value type for 3D
// rotation math and general quaternion algebra.
//
// A Quaternion[F] is the 4-tuple q = x·i + y·j + z·k + r over F, where F is
// float32 or float64 (see the fp package for the exact contract required of
// F). It is a plain value: copy it freely, compare it with ==, never worry
// about shared state.
//
// The package splits into five concerns:
//
//   - Classification — IsFinite, IsNormal, IsSubnormal, IsZero, IsReal,
//     IsPure. The four components are judged jointly: one non-finite
//     component taints the whole value, one normal component is enough to
//     make a finite value normal.
//   - Canonical forms — Canonicalized picks a single representative per
//     mathematical value (+0 everywhere for zero, (+0,+0,+0 | r=+∞) for
//     anything non-finite); CanonicalizedTransform additionally collapses q
//     and −q, yielding a non-negative real part, for callers that compare
//     quaternions as 3D transforms.
//   - Construction — New (real part + imaginary vector, the general form)
//     and its wrappers FromReal, FromImaginary and Pure, plus the named
//     representatives Zero, One, I, J, K, Inf.
//   - Cross-precision conversion — Convert (componentwise rounding, total)
//     and ConvertExact (all four components exactly representable or no
//     result at all).
//   - Algebra — conjugate, Hamilton product, axis-angle rotation, slerp.
//     Deliberately absent: Euclidean norm/length and mixed real⊕quaternion
//     operators.
//
// Policy choices worth knowing before relying on canonical forms:
//
//   - Zero is always positively signed: any quaternion whose components all
//     compare equal to zero canonicalizes to +0 everywhere, even if every
//     input component carried a minus sign bit.
//   - Infinity has no direction: a single infinite or NaN component
//     discards all the others. (-5 | x=+∞) and (+∞,+∞,+∞ | r=+∞)
//     canonicalize to the same representative.
//   - Equality (==) is componentwise and is NOT transform equivalence:
//     q and −q are unequal values representing the same rotation. Use
//     EqualAsRotation when that distinction matters.
//
// Every operation is a pure function of its inputs; the only fallible one
// is ConvertExact, which reports absence through comma-ok rather than an
// error.
package quat
