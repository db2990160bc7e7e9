// Package quat: the Quaternion value type and its named representatives.
//
// This file declares the Quaternion[F] storage, the Stringer form, and the
// singular representatives Zero, One, I, J, K and Inf. Constructors and
// accessors live in quaternion.go; the imaginary-part Vector type lives in
// vector.go.
package quat

import (
	"fmt"

	"github.com/katalvlaran/quatmath/fp"
)

// Quaternion represents the hypercomplex number x·i + y·j + z·k + r over
// the real-number width F.
//
// The four exported components are the single source of truth; the Real and
// Imaginary accessors are derived views over them. A Quaternion has value
// semantics: assignment copies, == compares componentwise, and mutation
// through a setter is local to the copy it is called on.
type Quaternion[F fp.Float] struct {
	// X is the coefficient of the imaginary basis element i.
	X F

	// Y is the coefficient of the imaginary basis element j.
	Y F

	// Z is the coefficient of the imaginary basis element k.
	Z F

	// R is the real (scalar) component.
	R F
}

// Zero returns the additive identity (+0, +0, +0 | r=+0).
//
// Zero is also the canonical representative of every quaternion whose
// components all compare equal to zero, whatever their signs.
func Zero[F fp.Float]() Quaternion[F] {
	return Quaternion[F]{}
}

// One returns the multiplicative identity (0, 0, 0 | r=1).
func One[F fp.Float]() Quaternion[F] {
	return Quaternion[F]{R: 1}
}

// I returns the unit quaternion along the first imaginary axis.
func I[F fp.Float]() Quaternion[F] {
	return Quaternion[F]{X: 1}
}

// J returns the unit quaternion along the second imaginary axis.
func J[F fp.Float]() Quaternion[F] {
	return Quaternion[F]{Y: 1}
}

// K returns the unit quaternion along the third imaginary axis.
func K[F fp.Float]() Quaternion[F] {
	return Quaternion[F]{Z: 1}
}

// Inf returns the canonical non-finite representative (+0, +0, +0 | r=+∞).
//
// Every quaternion with at least one infinite or NaN component
// canonicalizes to this value: infinity has no preferred direction in this
// model, so all directional information is discarded.
func Inf[F fp.Float]() Quaternion[F] {
	return Quaternion[F]{R: fp.Inf[F]()}
}

// String renders the quaternion as "(x, y, z | r=…)".
func (q Quaternion[F]) String() string {
	return fmt.Sprintf("(%v, %v, %v | r=%v)", q.X, q.Y, q.Z, q.R)
}
