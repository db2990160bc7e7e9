// Package quat: rotation construction and application — axis-angle
// construction, rotating vectors, and spherical interpolation.
//
// Intermediate trigonometry runs at float64 and narrows on the way out, so
// float32 instantiation does not pay float32 trig error on top of its own
// rounding.
package quat

import (
	"math"

	"github.com/katalvlaran/quatmath/fp"
)

// FromAxisAngle constructs the unit quaternion rotating by angle radians
// around axis. The axis is assumed to be of unit length; a non-unit axis
// yields a non-unit quaternion.
func FromAxisAngle[F fp.Float](axis Vector[F], angle F) Quaternion[F] {
	half := float64(angle) / 2
	sin, cos := math.Sincos(half)

	return New(F(cos), axis.Scale(F(sin)))
}

// Rotate applies the rotation q represents to v. q is assumed to be a unit
// quaternion.
//
// Uses the expansion v + 2r·(q_v × v) + 2·q_v × (q_v × v), which costs two
// cross products instead of two Hamilton products.
func (q Quaternion[F]) Rotate(v Vector[F]) Vector[F] {
	qv := Vector[F]{X: q.X, Y: q.Y, Z: q.Z}
	c := qv.Cross(v)

	return v.Add(c.Scale(2 * q.R)).Add(qv.Scale(2).Cross(c))
}

// Slerp interpolates spherically from q (t=0) to p (t=1). Both inputs are
// assumed to be unit quaternions; t outside [0,1] clamps to the nearer
// endpoint. The shorter arc is taken: when q and p sit in opposite
// hemispheres, p is negated first.
func (q Quaternion[F]) Slerp(p Quaternion[F], t F) Quaternion[F] {
	if t <= 0 {
		return q
	}
	if t >= 1 {
		return p
	}

	cos := float64(q.Dot(p))
	if math.Abs(cos) >= 1 {
		// Same (or negated-same) orientation: nothing to interpolate.
		return q
	}
	if cos < 0 {
		p = p.Neg()
		cos = -cos
	}

	sin := math.Sqrt(1 - cos*cos)
	theta := math.Atan2(sin, cos)

	ratioA := F(math.Sin((1-float64(t))*theta) / sin)
	ratioB := F(math.Sin(float64(t)*theta) / sin)

	return q.Scale(ratioA).Add(p.Scale(ratioB))
}
