// Package quat: cross-precision conversion between quaternion widths.
//
// Free functions rather than methods: Go methods cannot introduce the
// target width as a type parameter.
package quat

import "github.com/katalvlaran/quatmath/fp"

// Convert converts q to width To by rounding each of the four components
// independently (round-to-nearest). Total: components below To's range
// underflow to zero, components above it overflow to infinity, signs are
// preserved throughout.
func Convert[To, From fp.Float](q Quaternion[From]) Quaternion[To] {
	return Quaternion[To]{
		X: fp.Convert[To](q.X),
		Y: fp.Convert[To](q.Y),
		Z: fp.Convert[To](q.Z),
		R: fp.Convert[To](q.R),
	}
}

// ConvertExact converts q to width To only if all four components are
// exactly representable there. All-or-nothing: the first component that
// fails aborts the whole conversion with ok=false and the zero Quaternion —
// a partially converted value is never returned.
func ConvertExact[To, From fp.Float](q Quaternion[From]) (converted Quaternion[To], ok bool) {
	x, ok := fp.ConvertExact[To](q.X)
	if !ok {
		return Quaternion[To]{}, false
	}
	y, ok := fp.ConvertExact[To](q.Y)
	if !ok {
		return Quaternion[To]{}, false
	}
	z, ok := fp.ConvertExact[To](q.Z)
	if !ok {
		return Quaternion[To]{}, false
	}
	r, ok := fp.ConvertExact[To](q.R)
	if !ok {
		return Quaternion[To]{}, false
	}

	return Quaternion[To]{X: x, Y: y, Z: z, R: r}, true
}
