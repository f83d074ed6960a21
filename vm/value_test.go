package vm

import (
	"testing"

	"github.com/DosWorld/tmbasic/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValueEqualByBitPattern(t *testing.T) {
	a := NewIntValue(42)
	b := NewIntValue(42)
	c := NewIntValue(43)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	assert.False(t, NewBoolValue(true).Equal(NewIntValue(1)), "different kinds never compare equal")
}

func TestValueCoercions(t *testing.T) {
	v := NewDecimalValue(decimal.FromFloat64(3.9))
	assert.Equal(t, int64(3), v.GetInt64(), "GetInt32/64 truncate toward zero")
	assert.Equal(t, int32(3), v.GetInt32())

	assert.True(t, NewBoolValue(true).GetBoolean())
	assert.False(t, NewIntValue(0).GetBoolean())
	assert.True(t, NewIntValue(5).GetBoolean())
}

func TestValueGetString(t *testing.T) {
	v := NewDecimalValue(decimal.FromInt64(7))
	assert.Equal(t, "7", v.GetString())
}
