package fp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quatmath/fp"
	"github.com/stretchr/testify/assert"
)

// TestConvert_RoundsToNearest verifies the rounding conversion on values
// that float32 cannot hold exactly.
func TestConvert_RoundsToNearest(t *testing.T) {
	got := fp.Convert[float32](math.Pi)
	assert.Equal(t, float32(math.Pi), got, "Pi rounds to the nearest float32")
	assert.NotEqual(t, math.Pi, float64(got), "and the rounding is visible when widened back")

	third := fp.Convert[float32](1.0 / 3.0)
	assert.Equal(t, float32(1.0/3.0), third, "1/3 rounds to the nearest float32")
}

// TestConvert_TotalOnExtremes verifies that the rounding conversion never
// fails: overflow saturates to infinity, underflow flushes to zero, and
// both keep their sign.
func TestConvert_TotalOnExtremes(t *testing.T) {
	assert.True(t, fp.IsInf(fp.Convert[float32](math.MaxFloat64)), "overflow becomes +Inf")
	assert.True(t, fp.Signbit(fp.Convert[float32](-math.MaxFloat64)), "overflow keeps its sign")

	tiny := fp.Convert[float32](math.SmallestNonzeroFloat64)
	assert.Equal(t, float32(0), tiny, "underflow flushes to zero")
	assert.False(t, fp.Signbit(tiny), "positive underflow yields +0")

	negTiny := fp.Convert[float32](-math.SmallestNonzeroFloat64)
	assert.Equal(t, float32(0), negTiny, "negative underflow also flushes to zero")
	assert.True(t, fp.Signbit(negTiny), "but keeps the sign bit")

	assert.True(t, fp.IsNaN(fp.Convert[float32](fp.NaN[float64]())), "NaN converts to NaN")
	assert.True(t, fp.IsInf(fp.Convert[float64](fp.Inf[float32]())), "Inf widens to Inf")
}

// TestConvertExact_RoundTrip verifies that exactly representable values
// survive narrow-then-widen untouched.
func TestConvertExact_RoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 0.5, -2.25, 1024, 0x1p-126, math.MaxFloat32} {
		narrow, ok := fp.ConvertExact[float32](x)
		assert.True(t, ok, "%g is exactly representable as float32", x)

		wide, ok := fp.ConvertExact[float64](narrow)
		assert.True(t, ok, "widening is always exact")
		assert.Equal(t, x, wide, "round-trip must reproduce %g", x)
	}
}

// TestConvertExact_Refusals verifies the failure side: values needing more
// mantissa bits or exponent range than float32 offers, and NaN.
func TestConvertExact_Refusals(t *testing.T) {
	for name, x := range map[string]float64{
		"more mantissa bits than 23": 1 + 0x1p-40,
		"Pi":                         math.Pi,
		"beyond float32 range":       math.MaxFloat64,
		"below float32 range":        math.SmallestNonzeroFloat64,
		"NaN":                        fp.NaN[float64](),
	} {
		got, ok := fp.ConvertExact[float32](x)
		assert.False(t, ok, "%s must not convert exactly", name)
		assert.Equal(t, float32(0), got, "failed conversion returns the zero value")
	}
}

// TestConvertExact_SpecialValues verifies the values that are always exact:
// infinities of both signs and both zeros, sign preserved.
func TestConvertExact_SpecialValues(t *testing.T) {
	inf, ok := fp.ConvertExact[float32](fp.Inf[float64]())
	assert.True(t, ok, "+Inf is exactly representable at any width")
	assert.True(t, fp.IsInf(inf), "and stays infinite")

	ninf, ok := fp.ConvertExact[float32](-fp.Inf[float64]())
	assert.True(t, ok, "-Inf likewise")
	assert.True(t, fp.Signbit(ninf), "with its sign")

	nz, ok := fp.ConvertExact[float32](math.Copysign(0, -1))
	assert.True(t, ok, "-0 is exactly representable")
	assert.True(t, fp.Signbit(nz), "and keeps its sign bit")
}
