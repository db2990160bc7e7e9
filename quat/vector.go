// Package quat: the imaginary-part Vector type and the small vector
// algebra the quaternion operations are built from.
package quat

import "github.com/katalvlaran/quatmath/fp"

// Vector is the three-component imaginary part of a quaternion: the
// coefficients of the basis elements i, j, k. Like Quaternion it is a plain
// value with componentwise ==.
type Vector[F fp.Float] struct {
	// X is the coefficient of i.
	X F

	// Y is the coefficient of j.
	Y F

	// Z is the coefficient of k.
	Z F
}

// Vec constructs a Vector from its three components.
func Vec[F fp.Float](x, y, z F) Vector[F] {
	return Vector[F]{X: x, Y: y, Z: z}
}

// Add returns v + w componentwise.
func (v Vector[F]) Add(w Vector[F]) Vector[F] {
	return Vector[F]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w componentwise.
func (v Vector[F]) Sub(w Vector[F]) Vector[F] {
	return Vector[F]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Neg returns the componentwise negation of v.
func (v Vector[F]) Neg() Vector[F] {
	return Vector[F]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vector[F]) Scale(s F) Vector[F] {
	return Vector[F]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the scalar product v · w.
func (v Vector[F]) Dot(w Vector[F]) F {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v × w (right-handed).
func (v Vector[F]) Cross(w Vector[F]) Vector[F] {
	return Vector[F]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}
