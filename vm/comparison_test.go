package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberComparisonsReturnNumericNotBoolean(t *testing.T) {
	eq := Dispatch(NumberEquals, withValues([]Value{dv(5), dv(5)}, nil))
	require.False(t, eq.HasError)
	assert.Equal(t, int64(1), eq.ReturnedValue.GetInt64())

	lt := Dispatch(NumberLessThan, withValues([]Value{dv(5), dv(5)}, nil))
	require.False(t, lt.HasError)
	assert.Equal(t, int64(0), lt.ReturnedValue.GetInt64())
}

func TestMonotoneComparisonExactlyOneHolds(t *testing.T) {
	a, b := dv(3), dv(7)
	lt := Dispatch(NumberLessThan, withValues([]Value{a, b}, nil))
	eqr := Dispatch(NumberEquals, withValues([]Value{a, b}, nil))
	gt := Dispatch(NumberGreaterThan, withValues([]Value{a, b}, nil))

	count := lt.ReturnedValue.GetInt64() + eqr.ReturnedValue.GetInt64() + gt.ReturnedValue.GetInt64()
	assert.Equal(t, int64(1), count)
}

func TestCounterIsPastLimitHonorsStepDirection(t *testing.T) {
	forward := Dispatch(CounterIsPastLimit, withValues([]Value{dv(11), dv(10), dv(1)}, nil))
	require.False(t, forward.HasError)
	assert.True(t, forward.ReturnedValue.GetBoolean())

	backward := Dispatch(CounterIsPastLimit, withValues([]Value{dv(9), dv(10), dv(-1)}, nil))
	require.False(t, backward.HasError)
	assert.True(t, backward.ReturnedValue.GetBoolean())
}
