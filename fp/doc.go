// Package fp provides the generic real-number layer that the quat package
// is parameterized over: IEEE-754 binary floating-point classification and
// cross-precision conversion for float32 and float64.
//
// The Float constraint is deliberately exact (float32 | float64, no ~):
// normal/subnormal classification depends on the bit width of the concrete
// type, so every classifier dispatches on the dynamic type and must be able
// to enumerate the type set exhaustively.
//
// What the package guarantees:
//
//   - Classification (IsNaN, IsInf, IsFinite, IsNormal, IsSubnormal) follows
//     the IEEE-754 encoding of the instantiated width. A float32 subnormal
//     stays subnormal here even though the same value widened to float64
//     would be normal.
//   - Signed zero is observable through Signbit and preserved by Copysign
//     and by both conversions.
//   - Convert is total: it rounds to nearest, underflows to (signed) zero,
//     and overflows to (signed) infinity, exactly like Go's built-in float
//     conversions.
//   - ConvertExact succeeds iff the value round-trips bit-for-bit through
//     the target width. NaN never round-trips (NaN != NaN), so NaN is never
//     exactly representable — callers that need to carry NaN across widths
//     use Convert.
//
// Every function is a pure, total, allocation-free operation; the only
// "failure" in the package is ConvertExact's comma-ok false.
package fp
