package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromPartsRoundTripsThroughDateToString(t *testing.T) {
	in := withValues([]Value{NewIntValue(2024), NewIntValue(2), NewIntValue(29)}, nil)
	made := Dispatch(DateFromParts, in)
	require.False(t, made.HasError)

	str := Dispatch(DateToString, withValues([]Value{made.ReturnedValue}, nil))
	require.False(t, str.HasError)
	assert.Equal(t, "2024-02-29", as[*String](str.ReturnedObject).Utf8())
}

func TestTimeZoneFromNameRejectsUnknownZone(t *testing.T) {
	in := withValues(nil, []Object{NewString("Not/AZone")})
	result := Dispatch(TimeZoneFromName, in)
	require.True(t, result.HasError)
	assert.Equal(t, InvalidTimeZone, result.ErrorCode)
}

func TestTotalHoursScalesTimeSpan(t *testing.T) {
	twoDaysInMs := int64(2 * 24 * 60 * 60 * 1000)
	in := withValues([]Value{NewIntValue(twoDaysInMs)}, nil)
	result := Dispatch(TotalHours, in)
	require.False(t, result.HasError)
	assert.Equal(t, int64(48), result.ReturnedValue.GetInt64())
}

func TestHoursAndMinutesAreScaleFactorsToMilliseconds(t *testing.T) {
	hours := Dispatch(Hours, withValues([]Value{NewIntValue(2)}, nil))
	require.False(t, hours.HasError)
	assert.Equal(t, int64(2*60*60*1000), hours.ReturnedValue.GetInt64())

	minutes := Dispatch(Minutes, withValues([]Value{NewIntValue(30)}, nil))
	require.False(t, minutes.HasError)
	assert.Equal(t, int64(30*60*1000), minutes.ReturnedValue.GetInt64())

	span := hours.ReturnedValue.GetInt64() + minutes.ReturnedValue.GetInt64()

	totalHours := Dispatch(TotalHours, withValues([]Value{NewIntValue(span)}, nil))
	require.False(t, totalHours.HasError)
	assert.Equal(t, int64(2), totalHours.ReturnedValue.GetInt64())
}

func TestMillisecondsIsIdentity(t *testing.T) {
	result := Dispatch(Milliseconds, withValues([]Value{NewIntValue(1234)}, nil))
	require.False(t, result.HasError)
	assert.Equal(t, int64(1234), result.ReturnedValue.GetInt64())
}
