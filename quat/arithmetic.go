// Package quat: the quaternion algebra — negation, conjugation, sums, the
// Hamilton product, scaling and the 4D dot product.
//
// Absent on purpose: Euclidean norm/length and mixed real⊕quaternion
// operators. Promote a real with FromReal before mixing it in.
package quat

// Neg returns −q: every component negated. Negating flips sign bits, so
// -(-0) components come back as +0.
func (q Quaternion[F]) Neg() Quaternion[F] {
	return Quaternion[F]{X: -q.X, Y: -q.Y, Z: -q.Z, R: -q.R}
}

// Conjugate returns q with the imaginary part negated: the conjugate of
// x·i + y·j + z·k + r is −x·i − y·j − z·k + r.
func (q Quaternion[F]) Conjugate() Quaternion[F] {
	return Quaternion[F]{X: -q.X, Y: -q.Y, Z: -q.Z, R: q.R}
}

// Add returns q + p componentwise.
func (q Quaternion[F]) Add(p Quaternion[F]) Quaternion[F] {
	return Quaternion[F]{X: q.X + p.X, Y: q.Y + p.Y, Z: q.Z + p.Z, R: q.R + p.R}
}

// Sub returns q − p componentwise.
func (q Quaternion[F]) Sub(p Quaternion[F]) Quaternion[F] {
	return Quaternion[F]{X: q.X - p.X, Y: q.Y - p.Y, Z: q.Z - p.Z, R: q.R - p.R}
}

// Scale returns q with every component multiplied by s.
func (q Quaternion[F]) Scale(s F) Quaternion[F] {
	return Quaternion[F]{X: q.X * s, Y: q.Y * s, Z: q.Z * s, R: q.R * s}
}

// Mul returns the Hamilton product q ⋅ p. Not commutative: q.Mul(p) and
// p.Mul(q) differ whenever the imaginary parts are not parallel.
//
// In vector form, with q = (v, a) and p = (w, b):
//
//	q ⋅ p = (v×w + b·v + a·w, a·b − v·w)
func (q Quaternion[F]) Mul(p Quaternion[F]) Quaternion[F] {
	v := Vector[F]{X: q.X, Y: q.Y, Z: q.Z}
	w := Vector[F]{X: p.X, Y: p.Y, Z: p.Z}

	imag := v.Cross(w).Add(v.Scale(p.R)).Add(w.Scale(q.R))

	return New(q.R*p.R-v.Dot(w), imag)
}

// Dot returns the 4D scalar product of q and p.
func (q Quaternion[F]) Dot(p Quaternion[F]) F {
	return q.X*p.X + q.Y*p.Y + q.Z*p.Z + q.R*p.R
}

// EqualAsRotation reports whether q and p represent the same 3D transform:
// both are reduced with CanonicalizedTransform and compared componentwise,
// so q and −q compare equal here even though q == −q is false.
func (q Quaternion[F]) EqualAsRotation(p Quaternion[F]) bool {
	return q.CanonicalizedTransform() == p.CanonicalizedTransform()
}
