// Package decimal provides the arbitrary-precision signed decimal type
// carried inside vm.Value. It wraps github.com/ericlagergren/decimal, the
// same big-decimal library the pack's viro-lang-viro interpreter uses for
// its own numeric tower, so that every arithmetic intrinsic shares one
// well-tested decimal implementation instead of a hand-rolled one.
package decimal

import (
	"fmt"

	"github.com/ericlagergren/decimal"
	dmath "github.com/ericlagergren/decimal/math"
)

// precision is the number of significant decimal digits carried through
// every operation. 38 digits comfortably covers the range and precision of
// the int64/double conversions the VM also needs to perform losslessly.
const precision = 38

var defaultContext = decimal.Context{
	Precision:     precision,
	RoundingMode:  decimal.ToNearestEven,
	OperatingMode: decimal.GDA,
}

// Decimal is an immutable arbitrary-precision signed decimal value. Every
// method returns a new Decimal; the receiver is never mutated, matching the
// copy-by-value semantics the surrounding vm.Value union assumes.
type Decimal struct {
	big *decimal.Big
}

func wrap(b *decimal.Big) Decimal {
	b.Context = defaultContext
	return Decimal{big: b}
}

// Zero is the additive identity.
var Zero = FromInt64(0)

// FromInt64 constructs a Decimal losslessly from a signed 64-bit integer.
func FromInt64(v int64) Decimal {
	return wrap(new(decimal.Big).SetUint64(0).SetMantScale(v, 0))
}

// FromInt32 constructs a Decimal losslessly from a signed 32-bit integer.
func FromInt32(v int32) Decimal {
	return FromInt64(int64(v))
}

// FromFloat64 constructs a Decimal from an IEEE-754 double. The conversion
// is exact for any double that SetFloat64 can represent; callers that need
// the source program's "best effort" semantics should prefer this over a
// string round-trip.
func FromFloat64(v float64) Decimal {
	b := new(decimal.Big)
	b.Context = defaultContext
	b.SetFloat64(v)
	return Decimal{big: b}
}

// Parse parses a canonical decimal string such as "-12.340". It returns
// false if s is not a valid decimal literal.
func Parse(s string) (Decimal, bool) {
	b, ok := new(decimal.Big).SetString(s)
	if !ok {
		return Decimal{}, false
	}
	return wrap(b), true
}

func (d Decimal) ensure() *decimal.Big {
	if d.big == nil {
		return new(decimal.Big).SetMantScale(0, 0)
	}
	return d.big
}

// String formats the value using the canonical decimal representation
// (plain notation, no exponent, trailing zeros trimmed by the underlying
// library's default formatting).
func (d Decimal) String() string {
	return d.ensure().String()
}

// Int64 narrows the value to a signed 64-bit integer, truncating toward
// zero. The second return is false if the value does not fit in an int64.
func (d Decimal) Int64() (int64, bool) {
	b := d.ensure()
	i, ok := b.Int64()
	if !ok {
		return 0, false
	}
	return i, true
}

// Int32 narrows the value to a signed 32-bit integer, truncating toward
// zero and wrapping on overflow the same way a C-style narrowing cast
// would (matching the source's getInt32 "coerce, don't fault" contract).
func (d Decimal) Int32() int32 {
	i, _ := d.Int64()
	return int32(i)
}

// Float64 performs a best-effort, potentially lossy conversion to double.
func (d Decimal) Float64() float64 {
	f, _ := d.ensure().Float64()
	return f
}

func binOp(f func(z, x, y *decimal.Big) *decimal.Big, a, b Decimal) Decimal {
	z := new(decimal.Big)
	z.Context = defaultContext
	return wrap(f(z, a.ensure(), b.ensure()))
}

// Add returns a + b.
func Add(a, b Decimal) Decimal { return binOp((*decimal.Big).Add, a, b) }

// Sub returns a - b.
func Sub(a, b Decimal) Decimal { return binOp((*decimal.Big).Sub, a, b) }

// Mul returns a * b.
func Mul(a, b Decimal) Decimal { return binOp((*decimal.Big).Mul, a, b) }

// Div returns a / b. Division by zero panics with decimal.ErrNaN, the same
// way the source's decimal library faults; callers (the arithmetic
// intrinsics) must recover this the same way they recover any other
// internal fault.
func Div(a, b Decimal) Decimal { return binOp((*decimal.Big).Quo, a, b) }

// Mod returns the remainder of a / b with the sign of a (truncated
// division remainder), matching the source's `num % num` operator.
func Mod(a, b Decimal) Decimal { return binOp((*decimal.Big).Rem, a, b) }

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func Cmp(a, b Decimal) int { return a.ensure().Cmp(b.ensure()) }

// Equal reports whether a and b compare equal.
func Equal(a, b Decimal) bool { return Cmp(a, b) == 0 }

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	z := new(decimal.Big)
	z.Context = defaultContext
	return wrap(z.Abs(d.ensure()))
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	z := new(decimal.Big)
	z.Context = defaultContext
	return wrap(z.Neg(d.ensure()))
}

// Ceil rounds d toward positive infinity.
func (d Decimal) Ceil() Decimal {
	return d.roundTo(decimal.ToPositiveInf)
}

// Floor rounds d toward negative infinity.
func (d Decimal) Floor() Decimal {
	return d.roundTo(decimal.ToNegativeInf)
}

// Trunc rounds d toward zero.
func (d Decimal) Trunc() Decimal {
	return d.roundTo(decimal.ToZero)
}

// Round rounds d to the nearest integer, breaking ties to the nearest even
// integer (banker's rounding), matching spec's Round contract exactly.
func (d Decimal) Round() Decimal {
	return d.roundTo(decimal.ToNearestEven)
}

func (d Decimal) roundTo(mode decimal.RoundingMode) Decimal {
	b := d.ensure()
	if b.IsInt() {
		return d
	}
	z := new(decimal.Big)
	z.Context = decimal.Context{Precision: precision, RoundingMode: mode}
	z.Copy(b)
	z.Quantize(0)
	return wrap(z)
}

// Sqrt returns the square root of d. Negative operands produce the
// library's NaN result, surfaced by the arithmetic intrinsics as a
// recovered internal fault (code -1), matching spec's "domain errors...
// propagate as generic faults" rule.
func (d Decimal) Sqrt() Decimal {
	z := new(decimal.Big)
	z.Context = defaultContext
	return wrap(dmath.Sqrt(z, d.ensure()))
}

// Ln returns the natural logarithm of d.
func (d Decimal) Ln() Decimal {
	z := new(decimal.Big)
	z.Context = defaultContext
	return wrap(dmath.Log(z, d.ensure()))
}

// Log10 returns the base-10 logarithm of d.
func (d Decimal) Log10() Decimal {
	z := new(decimal.Big)
	z.Context = defaultContext
	return wrap(dmath.Log10(z, d.ensure()))
}

// Exp returns e raised to the power of d.
func (d Decimal) Exp() Decimal {
	z := new(decimal.Big)
	z.Context = defaultContext
	return wrap(dmath.Exp(z, d.ensure()))
}

// Pow returns d raised to the power of exponent.
func (d Decimal) Pow(exponent Decimal) Decimal {
	z := new(decimal.Big)
	z.Context = defaultContext
	return wrap(dmath.Pow(z, d.ensure(), exponent.ensure()))
}

// Transcendental1 widens to float64, applies f, and narrows back to a
// Decimal. Used by the VM's Acos/Asin/Atan/Atan2/Cos/Sin/Tan intrinsics,
// which spec.md defines as lossy double operations rather than exact
// decimal ones; NaN/Inf results are representable and are not errors.
func Transcendental1(d Decimal, f func(float64) float64) Decimal {
	return FromFloat64(f(d.Float64()))
}

// Transcendental2 is the two-argument analogue, used by Atan2.
func Transcendental2(a, b Decimal, f func(x, y float64) float64) Decimal {
	return FromFloat64(f(a.Float64(), b.Float64()))
}

// IsNaN reports whether d is Not-a-Number (e.g. the result of Sqrt(-1)).
func (d Decimal) IsNaN() bool { return d.ensure().IsNaN(0) }

// GoString supports %#v and debugger printing.
func (d Decimal) GoString() string { return fmt.Sprintf("decimal.Decimal(%s)", d.String()) }
