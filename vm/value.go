package vm

import (
	"github.com/DosWorld/tmbasic/decimal"
)

// Value is the fixed-size tagged scalar carried on the operand value-stack.
// It holds exactly one of a decimal, a boolean, or a 64-bit integer; unlike
// the source's C++ union (which reinterprets one bit-pattern three ways),
// Go has no portable way to alias a struct's bits across types, so Value
// carries an explicit discriminator and a 64-bit payload it decodes
// on demand. Equality is still defined over that raw payload, matching
// spec.md's "equality by bit-pattern" rule.
type Value struct {
	kind valueKind
	bits uint64
	num  decimal.Decimal
}

type valueKind uint8

const (
	valueKindDecimal valueKind = iota
	valueKindBool
	valueKindInt
)

// NewDecimalValue constructs a Value carrying a decimal payload.
func NewDecimalValue(d decimal.Decimal) Value {
	return Value{kind: valueKindDecimal, num: d}
}

// NewBoolValue constructs a Value carrying a boolean payload.
func NewBoolValue(b bool) Value {
	v := Value{kind: valueKindBool}
	if b {
		v.bits = 1
	}
	return v
}

// NewIntValue constructs a Value carrying a signed 64-bit integer payload.
func NewIntValue(i int64) Value {
	return Value{kind: valueKindInt, bits: uint64(i)}
}

// Equal reports whether v and other carry the same bit-pattern: same kind
// and same underlying payload. Two decimal Values compare equal only if
// their textual representations match exactly (the nearest Go analogue of
// comparing the union's raw bits, since ericlagergren/decimal.Big is not a
// fixed-width type).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case valueKindDecimal:
		return v.num.String() == other.num.String()
	default:
		return v.bits == other.bits
	}
}

// GetInt64 coerces the payload to a signed 64-bit integer: a decimal is
// truncated toward zero, a bool yields 0 or 1, and an integer passes
// through unchanged.
func (v Value) GetInt64() int64 {
	switch v.kind {
	case valueKindDecimal:
		i, _ := v.num.Int64()
		return i
	case valueKindBool:
		return int64(v.bits)
	default:
		return int64(v.bits)
	}
}

// GetInt32 coerces the payload to a signed 32-bit integer the same way
// GetInt64 does, narrowing (and wrapping on overflow) afterward.
func (v Value) GetInt32() int32 {
	return int32(v.GetInt64())
}

// GetDouble performs a best-effort, potentially lossy conversion to an
// IEEE-754 double.
func (v Value) GetDouble() float64 {
	switch v.kind {
	case valueKindDecimal:
		return v.num.Float64()
	case valueKindBool:
		if v.bits != 0 {
			return 1
		}
		return 0
	default:
		return float64(int64(v.bits))
	}
}

// GetBoolean coerces the payload to a boolean: zero is false, anything else
// is true.
func (v Value) GetBoolean() bool {
	switch v.kind {
	case valueKindDecimal:
		return !decimal.Equal(v.num, decimal.Zero)
	default:
		return v.bits != 0
	}
}

// GetDecimal returns the decimal payload, converting from bool/int if the
// Value was not constructed as a decimal. Every arithmetic intrinsic reads
// its operands through this accessor, mirroring the source's `.num` field
// access.
func (v Value) GetDecimal() decimal.Decimal {
	switch v.kind {
	case valueKindDecimal:
		return v.num
	case valueKindBool:
		if v.bits != 0 {
			return decimal.FromInt64(1)
		}
		return decimal.FromInt64(0)
	default:
		return decimal.FromInt64(int64(v.bits))
	}
}

// GetString formats the payload using the canonical decimal string
// representation, matching the source's Value::getString.
func (v Value) GetString() string {
	switch v.kind {
	case valueKindBool:
		if v.bits != 0 {
			return "1"
		}
		return "0"
	case valueKindInt:
		return decimal.FromInt64(int64(v.bits)).String()
	default:
		return v.num.String()
	}
}

// SetBoolean returns a Value carrying b as a boolean payload, mirroring
// Value::setBoolean.
func SetBoolean(b bool) Value { return NewBoolValue(b) }

// SetDouble returns a Value carrying the given double as a decimal,
// mirroring Value::setDouble. NaN and infinities are representable and are
// not treated as errors, per spec.md's transcendental-intrinsic contract.
func SetDouble(f float64) Value {
	return NewDecimalValue(decimal.FromFloat64(f))
}
