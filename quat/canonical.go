// Package quat: the two canonical-form reductions.
//
// Canonicalized picks one representative per mathematical value;
// CanonicalizedTransform additionally picks one representative per 3D
// transform by collapsing q and −q. Both are idempotent.
package quat

import "github.com/katalvlaran/quatmath/fp"

// Canonicalized returns the canonical representative of q:
//
//  1. Zero (any signed-zero pattern) becomes (+0, +0, +0 | r=+0).
//  2. Anything non-finite becomes (+0, +0, +0 | r=+∞); all directional
//     information is discarded, including finite components sitting next
//     to the infinite or NaN one.
//  3. Every other value is returned unchanged: the Float widths admit
//     exactly one bit pattern per finite nonzero value, so per-component
//     representation canonicalization is the identity here. Negative signs,
//     including -0 components of a nonzero quaternion, are preserved.
//
// Idempotent: Canonicalized of a canonical value is that value.
func (q Quaternion[F]) Canonicalized() Quaternion[F] {
	if q.IsZero() {
		return Zero[F]()
	}
	if !q.IsFinite() {
		return Inf[F]()
	}
	return q
}

// CanonicalizedTransform returns the canonical representative of q under
// the q ≡ −q equivalence of 3D transforms: Canonicalized, then negated as
// a whole if the real component's sign bit is set. The result always has a
// non-negative real part.
//
// The zero and infinity representatives already carry a positive real sign
// and pass through unchanged. A pure quaternion with r = -0 counts as
// negatively signed and gets flipped, so pure quaternions come out with
// r = +0 and a sign-normalized imaginary part.
func (q Quaternion[F]) CanonicalizedTransform() Quaternion[F] {
	c := q.Canonicalized()
	if fp.Signbit(c.R) {
		return c.Neg()
	}
	return c
}
