// Package quat: constructors and the derived-view accessors.
//
// New is the general constructor (real part + imaginary vector); FromReal,
// FromImaginary and Pure are convenience wrappers around it. Direct struct
// literals are equally valid — the components are exported on purpose.
package quat

import "github.com/katalvlaran/quatmath/fp"

// New constructs a quaternion from its real part and imaginary vector.
// This is the canonical general constructor; every other constructor in the
// package is a wrapper around it.
func New[F fp.Float](real F, imaginary Vector[F]) Quaternion[F] {
	return Quaternion[F]{X: imaginary.X, Y: imaginary.Y, Z: imaginary.Z, R: real}
}

// FromReal constructs a quaternion with the given real part and zero
// imaginary part.
func FromReal[F fp.Float](real F) Quaternion[F] {
	return New(real, Vector[F]{})
}

// FromImaginary constructs a pure quaternion (zero real part) from the
// given imaginary vector.
func FromImaginary[F fp.Float](imaginary Vector[F]) Quaternion[F] {
	var zero F
	return New(zero, imaginary)
}

// Pure constructs a pure quaternion from the three imaginary components.
func Pure[F fp.Float](x, y, z F) Quaternion[F] {
	return FromImaginary(Vec(x, y, z))
}

// Real returns the real (scalar) component of q.
//
// The view is normalized at read time: when q is not finite the real part
// reads as NaN, whatever the stored component holds. Classification
// predicates and canonical forms never go through this accessor — they read
// the stored components directly.
func (q Quaternion[F]) Real() F {
	if !q.IsFinite() {
		return fp.NaN[F]()
	}
	return q.R
}

// Imaginary returns the imaginary (vector) part of q.
//
// Like Real, the view is normalized at read time: when q is not finite all
// three components read as NaN.
func (q Quaternion[F]) Imaginary() Vector[F] {
	if !q.IsFinite() {
		n := fp.NaN[F]()
		return Vector[F]{X: n, Y: n, Z: n}
	}
	return Vector[F]{X: q.X, Y: q.Y, Z: q.Z}
}

// SetReal writes the real component directly, with no normalization.
// Mutation is local to the value q points at; other copies are unaffected.
func (q *Quaternion[F]) SetReal(real F) {
	q.R = real
}

// SetImaginary writes the three imaginary components directly, with no
// normalization.
func (q *Quaternion[F]) SetImaginary(imaginary Vector[F]) {
	q.X, q.Y, q.Z = imaginary.X, imaginary.Y, imaginary.Z
}
