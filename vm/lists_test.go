package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueListBuilderThenMid(t *testing.T) {
	b := NewValueListBuilder()
	b.Add(dv(10))
	b.Add(dv(20))
	b.Add(dv(30))
	list := b.End()
	require.Equal(t, 3, list.Len())

	in := withValues([]Value{dv(1), dv(10)}, []Object{list})
	result := Dispatch(ListMid, in)
	require.False(t, result.HasError)

	mid := as[*ValueList](result.ReturnedObject)
	require.Equal(t, 2, mid.Len())
	assert.Equal(t, "20", mid.Get(0).GetDecimal().String())
	assert.Equal(t, "30", mid.Get(1).GetDecimal().String())
}

func TestListFirstOnEmptyListFaults(t *testing.T) {
	in := withValues(nil, []Object{NewValueList()})
	result := Dispatch(ListFirst, in)
	require.True(t, result.HasError)
	assert.Equal(t, ListIsEmpty, result.ErrorCode)
}

func TestListAddLeavesSourceUnchanged(t *testing.T) {
	base := NewValueList(dv(1), dv(2))
	grown := base.Add(dv(3))
	assert.Equal(t, 2, base.Len())
	assert.Equal(t, 3, grown.Len())
}

func TestListMidNegativeStartFaults(t *testing.T) {
	list := NewValueList(dv(1), dv(2), dv(3))
	result := Dispatch(ListMid, withValues([]Value{dv(-1), dv(2)}, []Object{list}))
	require.True(t, result.HasError)
	assert.Equal(t, ListIndexOutOfRange, result.ErrorCode)
}

func TestListMidNegativeCountFaults(t *testing.T) {
	list := NewValueList(dv(1), dv(2), dv(3))
	result := Dispatch(ListMid, withValues([]Value{dv(0), dv(-1)}, []Object{list}))
	require.True(t, result.HasError)
	assert.Equal(t, InvalidArgument, result.ErrorCode)
}

func TestListMidStartAtOrPastSizeFaults(t *testing.T) {
	list := NewValueList(dv(1), dv(2), dv(3))
	result := Dispatch(ListMid, withValues([]Value{dv(3), dv(1)}, []Object{list}))
	require.True(t, result.HasError)
	assert.Equal(t, ListIndexOutOfRange, result.ErrorCode)
}

func TestListSkipNegativeCountFaults(t *testing.T) {
	list := NewValueList(dv(1), dv(2), dv(3))
	result := Dispatch(ListSkip, withValues([]Value{dv(-1)}, []Object{list}))
	require.True(t, result.HasError)
	assert.Equal(t, InvalidArgument, result.ErrorCode)
}

func TestListTakeCountPastSizeReturnsWholeList(t *testing.T) {
	list := NewValueList(dv(1), dv(2), dv(3))
	result := Dispatch(ListTake, withValues([]Value{dv(100)}, []Object{list}))
	require.False(t, result.HasError)
	assert.Equal(t, 3, as[*ValueList](result.ReturnedObject).Len())
}

func TestListFillVNegativeCountFaults(t *testing.T) {
	result := Dispatch(ListFillV, withValues([]Value{dv(9), dv(-1)}, nil))
	require.True(t, result.HasError)
	assert.Equal(t, InvalidArgument, result.ErrorCode)
}
