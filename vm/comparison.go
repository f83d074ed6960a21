package vm

import "github.com/DosWorld/tmbasic/decimal"

// cmp registers a numeric comparison. spec.md §4.5: comparisons return 1/0
// encoded as a numeric Value, not a boolean — booleans are reserved for
// Has…/counter predicates.
func cmp(which SystemCall, name string, ok func(int) bool) {
	register(which, name, func(in *Input, out *Result) {
		a := in.GetValue(-2).GetDecimal()
		b := in.GetValue(-1).GetDecimal()
		if ok(decimal.Cmp(a, b)) {
			out.ReturnedValue = NewIntValue(1)
		} else {
			out.ReturnedValue = NewIntValue(0)
		}
	})
}

func registerComparison() {
	cmp(NumberEquals, "NumberEquals", func(c int) bool { return c == 0 })
	cmp(NumberNotEquals, "NumberNotEquals", func(c int) bool { return c != 0 })
	cmp(NumberLessThan, "NumberLessThan", func(c int) bool { return c < 0 })
	cmp(NumberLessThanEquals, "NumberLessThanEquals", func(c int) bool { return c <= 0 })
	cmp(NumberGreaterThan, "NumberGreaterThan", func(c int) bool { return c > 0 })
	cmp(NumberGreaterThanEquals, "NumberGreaterThanEquals", func(c int) bool { return c >= 0 })

	// CounterIsPastLimit implements a FOR loop's termination test: with a
	// non-negative step the loop ends once counter exceeds limit, and with a
	// negative step it ends once counter falls below limit.
	register(CounterIsPastLimit, "CounterIsPastLimit", func(in *Input, out *Result) {
		counter := in.GetValue(-3).GetDecimal()
		limit := in.GetValue(-2).GetDecimal()
		step := in.GetValue(-1).GetDecimal()
		var past bool
		if decimal.Cmp(step, decimal.Zero) >= 0 {
			past = decimal.Cmp(counter, limit) > 0
		} else {
			past = decimal.Cmp(counter, limit) < 0
		}
		out.ReturnedValue = NewBoolValue(past)
	})
}
