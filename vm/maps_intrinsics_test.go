package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueToValueMapSetThenGet(t *testing.T) {
	m := NewValueToValueMap()

	setResult := Dispatch(ValueToValueMapSet, withValues([]Value{dv(1), dv(100)}, []Object{m}))
	require.False(t, setResult.HasError)

	grown := as[*ValueToValueMap](setResult.ReturnedObject)
	getResult := Dispatch(ValueToValueMapGet, withValues([]Value{dv(1)}, []Object{grown}))
	require.False(t, getResult.HasError)
	assert.Equal(t, "100", getResult.ReturnedValue.GetDecimal().String())
}

func TestValueToValueMapGetMissingKeyFaults(t *testing.T) {
	m := NewValueToValueMap()
	result := Dispatch(ValueToValueMapGet, withValues([]Value{dv(1)}, []Object{m}))
	require.True(t, result.HasError)
	assert.Equal(t, MapKeyNotFound, result.ErrorCode)
}

func TestObjectToObjectMapRoundTrip(t *testing.T) {
	m := NewObjectToObjectMap()
	key := NewString("k")
	val := NewString("v")
	setResult := Dispatch(ObjectToObjectMapSet, withValues(nil, []Object{m, key, val}))
	require.False(t, setResult.HasError)

	grown := as[*ObjectToObjectMap](setResult.ReturnedObject)
	getResult := Dispatch(ObjectToObjectMapGet, withValues(nil, []Object{grown, key}))
	require.False(t, getResult.HasError)
	assert.Equal(t, "v", as[*String](getResult.ReturnedObject).Utf8())
}
