package vm

import "github.com/DosWorld/tmbasic/decimal"

// unary registers a one-operand decimal->decimal intrinsic: pop nothing (the
// interpreter owns stack adjustment, see syscall.go), read the top value,
// write the transformed value back. A NaN result from a non-NaN operand (a
// domain error such as the square root of a negative number) is raised as a
// generic fault.
func unary(which SystemCall, name string, f func(decimal.Decimal) decimal.Decimal) {
	register(which, name, func(in *Input, out *Result) {
		x := in.GetValue(-1).GetDecimal()
		r := f(x)
		if r.IsNaN() && !x.IsNaN() {
			panic(name + ": the result is not a number.")
		}
		out.ReturnedValue = NewDecimalValue(r)
	})
}

func binary(which SystemCall, name string, f func(a, b decimal.Decimal) decimal.Decimal) {
	register(which, name, func(in *Input, out *Result) {
		a := in.GetValue(-2).GetDecimal()
		b := in.GetValue(-1).GetDecimal()
		out.ReturnedValue = NewDecimalValue(f(a, b))
	})
}

func registerArithmetic() {
	unary(Abs, "Abs", decimal.Decimal.Abs)
	unary(Ceil, "Ceil", decimal.Decimal.Ceil)
	unary(Floor, "Floor", decimal.Decimal.Floor)
	unary(Trunc, "Trunc", decimal.Decimal.Trunc)
	unary(Round, "Round", decimal.Decimal.Round)
	unary(Exp, "Exp", decimal.Decimal.Exp)
	unary(Log, "Log", decimal.Decimal.Ln)
	unary(Log10, "Log10", decimal.Decimal.Log10)
	unary(Sqr, "Sqr", decimal.Decimal.Sqrt)

	register(Pow, "Pow", func(in *Input, out *Result) {
		base := in.GetValue(-2).GetDecimal()
		exponent := in.GetValue(-1).GetDecimal()
		out.ReturnedValue = NewDecimalValue(base.Pow(exponent))
	})

	binary(NumberAdd, "NumberAdd", decimal.Add)
	binary(NumberSubtract, "NumberSubtract", decimal.Sub)
	binary(NumberMultiply, "NumberMultiply", decimal.Mul)

	register(NumberDivide, "NumberDivide", func(in *Input, out *Result) {
		a := in.GetValue(-2).GetDecimal()
		b := in.GetValue(-1).GetDecimal()
		if decimal.Equal(b, decimal.Zero) {
			panic("Division by zero.")
		}
		out.ReturnedValue = NewDecimalValue(decimal.Div(a, b))
	})

	register(NumberModulus, "NumberModulus", func(in *Input, out *Result) {
		a := in.GetValue(-2).GetDecimal()
		b := in.GetValue(-1).GetDecimal()
		if decimal.Equal(b, decimal.Zero) {
			panic("Division by zero.")
		}
		out.ReturnedValue = NewDecimalValue(decimal.Mod(a, b))
	})

	register(NumberToString, "NumberToString", func(in *Input, out *Result) {
		out.ReturnedObject = NewString(in.GetValue(-1).GetString())
	})
}
