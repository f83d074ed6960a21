package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOptionalPresentRoundTrip(t *testing.T) {
	present := Dispatch(ValueOptionalNewPresent, withValues([]Value{dv(42)}, nil))
	require.False(t, present.HasError)

	has := Dispatch(HasValueV, withValues(nil, []Object{present.ReturnedObject}))
	require.False(t, has.HasError)
	assert.True(t, has.ReturnedValue.GetBoolean())

	val := Dispatch(ValueV, withValues(nil, []Object{present.ReturnedObject}))
	require.False(t, val.HasError)
	assert.Equal(t, "42", val.ReturnedValue.GetDecimal().String())
}

func TestValueVOnMissingOptionalFaults(t *testing.T) {
	missing := Dispatch(ValueOptionalNewMissing, withValues(nil, nil))
	require.False(t, missing.HasError)

	result := Dispatch(ValueV, withValues(nil, []Object{missing.ReturnedObject}))
	require.True(t, result.HasError)
	assert.Equal(t, ValueNotPresent, result.ErrorCode)
}
