package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	for _, bad := range []string{"9:30", "24:00", "12:60", "ab:cd", ""} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, bad)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), ts)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("12:00").IsAfter("11:59"))
	assert.True(t, TimeString("").IsZero())
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2026, 1, 8, 7, 5, 0, 0, time.Local)
	assert.Equal(t, TimeString("07:05"), NewTimeString(now))
}

func TestFromMinutes(t *testing.T) {
	ts, err := FromMinutes(MinutesPerDay)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	_, err = FromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}
