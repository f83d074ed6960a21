package vm

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileTextOnMissingPathFaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	in := withValues(nil, []Object{NewString(path)})
	result := Dispatch(ReadFileText, in)
	require.True(t, result.HasError)
	assert.Equal(t, FileNotFound, result.ErrorCode)
}

func TestWriteFileTextThenReadFileTextRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	write := Dispatch(WriteFileText, withValues(nil, []Object{NewString(path), NewString("hello")}))
	require.False(t, write.HasError)

	read := Dispatch(ReadFileText, withValues(nil, []Object{NewString(path)}))
	require.False(t, read.HasError)
	assert.Equal(t, "hello", as[*String](read.ReturnedObject).Utf8())
}

func TestWriteFileLinesThenReadFileLinesRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	lines := NewObjectList(NewString("a"), NewString("b"), NewString("c"))

	write := Dispatch(WriteFileLines, withValues(nil, []Object{NewString(path), lines}))
	require.False(t, write.HasError)

	read := Dispatch(ReadFileLines, withValues(nil, []Object{NewString(path)}))
	require.False(t, read.HasError)
	got := as[*ObjectList](read.ReturnedObject)
	require.Equal(t, 3, got.Len())
	assert.Equal(t, "b", as[*String](got.Get(1)).Utf8())
}
