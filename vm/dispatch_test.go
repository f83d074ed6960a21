package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DosWorld/tmbasic/decimal"
)

// withValues builds an Input whose value stack holds vals, top-of-stack
// last, and whose object stack holds objs the same way.
func withValues(vals []Value, objs []Object) *Input {
	in := &Input{}
	copy(in.ValueStack[:], vals)
	in.ValueStackIndex = len(vals)
	copy(in.ObjectStack[:], objs)
	in.ObjectStackIndex = len(objs)
	return in
}

func dv(i int64) Value { return NewDecimalValue(decimal.FromInt64(i)) }

func TestDispatchNumberModulus(t *testing.T) {
	in := withValues([]Value{dv(7), dv(3)}, nil)
	result := Dispatch(NumberModulus, in)
	require.False(t, result.HasError)
	assert.Equal(t, "1", result.ReturnedValue.GetDecimal().String())
}

func TestDispatchDivisionByZeroContained(t *testing.T) {
	in := withValues([]Value{dv(1), dv(0)}, nil)
	result := Dispatch(NumberDivide, in)
	require.True(t, result.HasError)
	assert.Equal(t, Generic, result.ErrorCode)
}

func TestDispatchUnknownSystemCallPanics(t *testing.T) {
	assert.Panics(t, func() {
		Dispatch(SystemCall(-1), withValues(nil, nil))
	})
}

func TestDispatchTypeConfusionIsContained(t *testing.T) {
	in := withValues(nil, []Object{NewString("not a list")})
	result := Dispatch(ListFirst, in)
	require.True(t, result.HasError)
	assert.Equal(t, InternalTypeConfusion, result.ErrorCode)
}
