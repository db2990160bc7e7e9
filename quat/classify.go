// Package quat: the six classification predicates.
//
// All predicates read the stored components directly — never the Real or
// Imaginary accessors, whose NaN normalization itself depends on IsFinite.
//
// Contract, for q = (x, y, z | r):
//
//	IsFinite    — all four components finite (no Inf, no NaN)
//	IsNormal    — IsFinite AND at least one component of normal magnitude
//	IsSubnormal — IsFinite AND NOT IsNormal AND NOT IsZero
//	IsZero      — all four components == 0 (either sign of zero)
//	IsReal      — x, y, z all == 0 (either sign of zero)
//	IsPure      — r == 0 (either sign of zero)
//
// Over finite nonzero quaternions, IsNormal and IsSubnormal are mutually
// exclusive and jointly exhaustive. IsZero implies both IsReal and IsPure.
package quat

import "github.com/katalvlaran/quatmath/fp"

// IsFinite reports whether all four components are finite. A single
// infinite or NaN component taints the whole value.
func (q Quaternion[F]) IsFinite() bool {
	return fp.IsFinite(q.X) && fp.IsFinite(q.Y) && fp.IsFinite(q.Z) && fp.IsFinite(q.R)
}

// IsNormal reports whether q is finite and at least one component has a
// normal (full-precision) magnitude. A finite quaternion composed entirely
// of zeros and subnormals is not normal.
func (q Quaternion[F]) IsNormal() bool {
	if !q.IsFinite() {
		return false
	}
	return fp.IsNormal(q.X) || fp.IsNormal(q.Y) || fp.IsNormal(q.Z) || fp.IsNormal(q.R)
}

// IsSubnormal reports whether q is finite, nonzero, and composed only of
// zero and subnormal magnitudes — the reduced-precision regime between
// zero and the smallest normal quaternion.
func (q Quaternion[F]) IsSubnormal() bool {
	return q.IsFinite() && !q.IsNormal() && !q.IsZero()
}

// IsZero reports whether all four components compare equal to zero.
// Signed-zero-insensitive: -0 counts as zero in any component.
func (q Quaternion[F]) IsZero() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.R == 0
}

// IsReal reports whether the imaginary part is zero (either sign of zero in
// any of x, y, z). The real part may be anything, including zero, Inf or
// NaN.
func (q Quaternion[F]) IsReal() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0
}

// IsPure reports whether the real component is zero (either sign). The
// imaginary components may be anything.
func (q Quaternion[F]) IsPure() bool {
	return q.R == 0
}
