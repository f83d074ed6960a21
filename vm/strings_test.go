package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacters1SplitsCombiningMarks(t *testing.T) {
	// "e" + COMBINING ACUTE ACCENT + "a": a decomposed accented "e"
	// followed by a plain "a", which must split into exactly two
	// grapheme clusters rather than three code points.
	decomposed := string([]rune{'e', 0x0301, 'a'})
	s := NewString(decomposed)
	in := withValues(nil, []Object{s})
	result := Dispatch(Characters1, in)
	require.False(t, result.HasError)

	list := as[*ObjectList](result.ReturnedObject)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, string([]rune{'e', 0x0301}), as[*String](list.Get(0)).Utf8())
	assert.Equal(t, "a", as[*String](list.Get(1)).Utf8())
}

func TestStringConcat(t *testing.T) {
	in := withValues(nil, []Object{NewString("foo"), NewString("bar")})
	result := Dispatch(StringConcat, in)
	require.False(t, result.HasError)
	assert.Equal(t, "foobar", as[*String](result.ReturnedObject).Utf8())
}

func TestConcat2InsertsSeparatorBetweenButNotAround(t *testing.T) {
	list := NewObjectList(NewString("a"), NewString("b"), NewString("c"))
	result := Dispatch(Concat2, withValues(nil, []Object{list, NewString(", ")}))
	require.False(t, result.HasError)
	assert.Equal(t, "a, b, c", as[*String](result.ReturnedObject).Utf8())
}

func TestCodePointsRoundTripsThroughStringFromCodePoints(t *testing.T) {
	original := NewString("hello")
	cp := Dispatch(CodePoints, withValues(nil, []Object{original}))
	require.False(t, cp.HasError)

	back := Dispatch(StringFromCodePoints, withValues(nil, []Object{cp.ReturnedObject}))
	require.False(t, back.HasError)
	assert.Equal(t, original.Utf8(), as[*String](back.ReturnedObject).Utf8())
}
