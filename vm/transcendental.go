package vm

import (
	"math"

	"github.com/DosWorld/tmbasic/decimal"
)

// trig registers a one-argument transcendental intrinsic. These are
// evaluated in double precision and widened back to Decimal, per the
// transcendental contract in SPEC_FULL.md §4.5 (lossy double operations,
// not exact decimal ones) — the same trade-off the source makes by calling
// into libm rather than an arbitrary-precision transcendental routine.
func trig(which SystemCall, name string, f func(float64) float64) {
	register(which, name, func(in *Input, out *Result) {
		out.ReturnedValue = NewDecimalValue(decimal.Transcendental1(in.GetValue(-1).GetDecimal(), f))
	})
}

func registerTranscendental() {
	trig(Acos, "Acos", math.Acos)
	trig(Asin, "Asin", math.Asin)
	trig(Atan, "Atan", math.Atan)
	trig(Cos, "Cos", math.Cos)
	trig(Sin, "Sin", math.Sin)
	trig(Tan, "Tan", math.Tan)

	register(Atan2, "Atan2", func(in *Input, out *Result) {
		y := in.GetValue(-2).GetDecimal()
		x := in.GetValue(-1).GetDecimal()
		out.ReturnedValue = NewDecimalValue(decimal.Transcendental2(y, x, math.Atan2))
	})
}
