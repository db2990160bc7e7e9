// Package fp: classification primitives over the Float constraint.
//
// This file declares the Float constraint, the per-width encoding
// constants, and the classification predicates (IsNaN, IsInf, IsFinite,
// IsNormal, IsSubnormal, Signbit) plus the sign/magnitude helpers
// (Copysign, Abs) and the generic NaN/Inf constructors.
package fp

import "math"

// Float is the set of real-number representations the library is generic
// over. The constraint is exact on purpose: classification is width-aware
// and dispatches on the dynamic type, so the type set must be closed.
type Float interface {
	float32 | float64
}

// Per-width encoding constants (IEEE 754 binary32 / binary64).
const (
	expMask32  = 0xff      // 8 exponent bits
	expShift32 = 23        // 23 fraction bits
	fracMask32 = 1<<23 - 1 // fraction field mask

	expMask64  = 0x7ff     // 11 exponent bits
	expShift64 = 52        // 52 fraction bits
	fracMask64 = 1<<52 - 1 // fraction field mask
)

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN[F Float](x F) bool {
	// IEEE 754: NaN is the only value that compares unequal to itself.
	return x != x
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[F Float](x F) bool {
	// Widening float32 -> float64 maps infinities to infinities and every
	// finite value to a finite value, so one check covers both widths.
	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite[F Float](x F) bool {
	return !IsNaN(x) && !IsInf(x)
}

// IsNormal reports whether x is a finite nonzero value of full-precision
// (normal) magnitude in x's own width. Zero, subnormals, infinities and
// NaN all report false.
//
// Width matters: IsNormal(float32(0x1p-130)) is false even though the same
// value as a float64 is normal.
func IsNormal[F Float](x F) bool {
	switch v := any(x).(type) {
	case float32:
		e := math.Float32bits(v) >> expShift32 & expMask32
		return e != 0 && e != expMask32
	case float64:
		e := math.Float64bits(v) >> expShift64 & expMask64
		return e != 0 && e != expMask64
	}
	return false // unreachable: Float is closed over float32 | float64
}

// IsSubnormal reports whether x is a finite nonzero value too small to be
// represented with full precision in x's own width (biased exponent zero,
// nonzero fraction).
func IsSubnormal[F Float](x F) bool {
	switch v := any(x).(type) {
	case float32:
		b := math.Float32bits(v)
		return b>>expShift32&expMask32 == 0 && b&fracMask32 != 0
	case float64:
		b := math.Float64bits(v)
		return b>>expShift64&expMask64 == 0 && b&fracMask64 != 0
	}
	return false // unreachable: Float is closed over float32 | float64
}

// Signbit reports whether x is negative or negative zero.
func Signbit[F Float](x F) bool {
	// Widening preserves the sign bit, including the sign of zero.
	return math.Signbit(float64(x))
}

// Copysign returns a value with the magnitude of f and the sign of sign.
func Copysign[F Float](f, sign F) F {
	return F(math.Copysign(float64(f), float64(sign)))
}

// Abs returns the absolute value of x.
//
// Special cases are:
//
//	Abs(±Inf) = +Inf
//	Abs(NaN) = NaN
func Abs[F Float](x F) F {
	return F(math.Abs(float64(x)))
}

// NaN returns an IEEE 754 "not-a-number" value of width F.
func NaN[F Float]() F {
	return F(math.NaN())
}

// Inf returns positive infinity of width F.
func Inf[F Float]() F {
	return F(math.Inf(1))
}
