// Package fp: cross-precision conversion between Float widths.
//
// Two conversions, one policy question between them — what happens when the
// target width cannot hold the value:
//
//   - Convert rounds and always answers.
//   - ConvertExact refuses (comma-ok false) unless the answer would be the
//     question.
package fp

// Convert converts x to width To using round-to-nearest, the rounding of
// Go's built-in float conversions. It is total: values below the target's
// subnormal range underflow to zero, values above its finite range overflow
// to infinity, and signs (including the sign of zero) are preserved.
// Widening never changes the value.
func Convert[To, From Float](x From) To {
	return To(x)
}

// ConvertExact converts x to width To only if the value is exactly
// representable there, reporting success in ok. On failure it returns the
// zero value of To.
//
// Exactness is decided by round-trip: convert to To, widen back, compare.
// Round-to-nearest moves a value iff it is not representable, and the
// return trip to the wider (or equal) width is always exact, so the
// round-trip preserves x iff the first conversion dropped nothing.
//
// Consequences of the round-trip oracle:
//
//   - ±Inf and ±0 always convert exactly (sign preserved).
//   - NaN never converts exactly: NaN != NaN. Use Convert to carry NaN
//     across widths.
//   - A float64 whose fraction needs more than 23 bits, or whose exponent
//     leaves the float32 range, fails.
func ConvertExact[To, From Float](x From) (converted To, ok bool) {
	y := To(x)
	if From(y) != x {
		var zero To
		return zero, false
	}
	return y, true
}
