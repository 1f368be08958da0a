package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDate(t *testing.T) {
	require.NoError(t, ValidateDate("2025-02-15"))

	for _, raw := range []string{"20250215", "02-15-2025", "15-02-2025", "2025/02/15", "2025-2-15", "2025-02-15 ", "2025-02-30", ""} {
		err := ValidateDate(raw)
		var target *InvalidDateFormatError
		require.ErrorAs(t, err, &target, raw)
		assert.Equal(t, raw, target.Date)
		assert.True(t, errors.Is(err, ErrInvalidDateFormat))
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, Clock(9*60+5), c)
	assert.Equal(t, "09:05", c.String())

	for _, raw := range []string{"9:05", "24:00", "23:60", "10:000", "10-00", "10:00:00", ""} {
		_, err := ParseClock(raw)
		assert.Error(t, err, raw)
	}
}

func TestClockAddWrapsAtMidnight(t *testing.T) {
	c, err := ParseClock("23:00")
	require.NoError(t, err)
	assert.Equal(t, "01:30", c.Add(2*time.Hour+30*time.Minute).String())
	assert.Equal(t, "23:00", c.Add(0).String())
}

func TestIsValidTimeslotStrict(t *testing.T) {
	ok, err := IsValidTimeslot(iv("10:00", "15:35"), false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsValidTimeslot(iv("10:00", "10:00"), false)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsValidTimeslot(iv("22:00", "08:00"), false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsValidTimeslotAllowZero(t *testing.T) {
	ok, err := IsValidTimeslot(iv("10:00", "10:00"), true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsValidTimeslot(iv("10:01", "10:00"), true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsValidTimeslotInvalidFormat(t *testing.T) {
	cases := []struct {
		start, end string
	}{
		{"25:00", "10:00"},
		{"15:00", "10:000"},
		{"5:00", "10:60"},
		{"10:00", "10:60"},
	}
	for _, c := range cases {
		_, err := IsValidTimeslot(iv(c.start, c.end), false)
		var target *InvalidTimeFormatError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, iv(c.start, c.end), target.Interval)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	}
}

func TestParseTimeslotDuration(t *testing.T) {
	span, err := ParseTimeslot(iv("22:00", "08:00"))
	require.NoError(t, err)
	assert.Equal(t, -14*time.Hour, span.Duration)
	assert.False(t, span.Valid(true))

	span, err = ParseTimeslot(iv("08:15", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, time.Hour+45*time.Minute, span.Duration)
}
