package quat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quatmath/quat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vecInDelta asserts componentwise closeness of two float64 vectors.
func vecInDelta(t *testing.T, want, got quat.Vector[float64], delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x component")
	assert.InDelta(t, want.Y, got.Y, delta, "y component")
	assert.InDelta(t, want.Z, got.Z, delta, "z component")
}

// TestFromAxisAngle verifies the half-angle construction against known
// rotations.
func TestFromAxisAngle(t *testing.T) {
	identity := quat.FromAxisAngle(quat.Vec(0.0, 0.0, 1.0), 0.0)
	assert.Equal(t, quat.One[float64](), identity, "zero angle yields the identity")

	// 180° about z is the k basis element.
	halfTurn := quat.FromAxisAngle(quat.Vec(0.0, 0.0, 1.0), math.Pi)
	assert.InDelta(t, 0, halfTurn.R, 1e-15, "cos(π/2) = 0")
	assert.InDelta(t, 1, halfTurn.Z, 1e-15, "sin(π/2) = 1 along the axis")

	// Unit in, unit out.
	q := quat.FromAxisAngle(quat.Vec(1.0, 0.0, 0.0), 0.3)
	assert.InDelta(t, 1, q.Dot(q), 1e-15, "unit axis yields a unit quaternion")
}

// TestRotate_QuarterTurn verifies that a 90° rotation about z maps x̂ to ŷ
// and ŷ to -x̂.
func TestRotate_QuarterTurn(t *testing.T) {
	q := quat.FromAxisAngle(quat.Vec(0.0, 0.0, 1.0), math.Pi/2)

	vecInDelta(t, quat.Vec(0.0, 1.0, 0.0), q.Rotate(quat.Vec(1.0, 0.0, 0.0)), 1e-15)
	vecInDelta(t, quat.Vec(-1.0, 0.0, 0.0), q.Rotate(quat.Vec(0.0, 1.0, 0.0)), 1e-15)
	vecInDelta(t, quat.Vec(0.0, 0.0, 1.0), q.Rotate(quat.Vec(0.0, 0.0, 1.0)), 1e-15)
}

// TestRotate_MatchesNegation verifies the q ≡ −q equivalence in action:
// both rotate vectors identically.
func TestRotate_MatchesNegation(t *testing.T) {
	q := quat.FromAxisAngle(quat.Vec(0.0, 1.0, 0.0), 1.1)
	v := quat.Vec(0.3, -0.7, 2.0)

	vecInDelta(t, q.Rotate(v), q.Neg().Rotate(v), 1e-15)
	assert.True(t, q.EqualAsRotation(q.Neg()), "and the comparison agrees")
}

// TestSlerp_Endpoints verifies clamping and the exact endpoints.
func TestSlerp_Endpoints(t *testing.T) {
	q := quat.FromAxisAngle(quat.Vec(0.0, 0.0, 1.0), 0.0)
	p := quat.FromAxisAngle(quat.Vec(0.0, 0.0, 1.0), math.Pi/2)

	assert.Equal(t, q, q.Slerp(p, 0), "t=0 is the start")
	assert.Equal(t, p, q.Slerp(p, 1), "t=1 is the end")
	assert.Equal(t, q, q.Slerp(p, -0.5), "t<0 clamps to the start")
	assert.Equal(t, p, q.Slerp(p, 1.5), "t>1 clamps to the end")
}

// TestSlerp_Midpoint verifies that the halfway point of a 90° rotation is
// the 45° rotation.
func TestSlerp_Midpoint(t *testing.T) {
	q := quat.One[float64]()
	p := quat.FromAxisAngle(quat.Vec(0.0, 0.0, 1.0), math.Pi/2)

	mid := q.Slerp(p, 0.5)
	want := quat.FromAxisAngle(quat.Vec(0.0, 0.0, 1.0), math.Pi/4)

	assert.InDelta(t, want.R, mid.R, 1e-12, "real part at the midpoint")
	assert.InDelta(t, want.Z, mid.Z, 1e-12, "imaginary part at the midpoint")
	assert.InDelta(t, 1, mid.Dot(mid), 1e-12, "slerp stays on the unit sphere")
}

// TestSlerp_TakesShorterArc verifies hemisphere correction: interpolating
// toward a negated target must not swing the long way around.
func TestSlerp_TakesShorterArc(t *testing.T) {
	q := quat.One[float64]()
	p := quat.FromAxisAngle(quat.Vec(0.0, 0.0, 1.0), math.Pi/2)

	mid := q.Slerp(p, 0.5)
	midNeg := q.Slerp(p.Neg(), 0.5)

	require.True(t, mid.EqualAsRotation(midNeg), "the negated target folds back onto the short arc")
	assert.Equal(t, mid, midNeg, "and the fold happens before interpolating, not after")

	// Identical orientations interpolate to the start.
	assert.Equal(t, q, q.Slerp(q, 0.5), "slerp between equal inputs is the input")
}
