package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAvailable(t *testing.T) {
	s := newFixtureScheduler()
	cases := []struct {
		date, start, end string
		want             bool
	}{
		{"2025-02-15", "15:00", "17:30", true},
		{"2025-02-16", "20:00", "21:11", true},
		{"2025-02-17", "12:00", "12:30", true},
		{"2025-02-15", "17:30", "20:02", false},
		{"2025-02-16", "22:00", "08:00", false},
		{"2025-02-17", "12:30", "09:00", false},
		{"2025-02-17", "10:00", "10:00", false},
	}
	for _, c := range cases {
		got, err := s.IsAvailable(c.date, c.start, c.end)
		require.NoError(t, err, c)
		assert.Equal(t, c.want, got, c)
	}
}

func TestIsAvailableMalformedTime(t *testing.T) {
	s := newFixtureScheduler()

	_, err := s.IsAvailable("2025-02-16", "25:00", "08:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestIsAvailableUnknownDate(t *testing.T) {
	s := newFixtureScheduler()

	_, err := s.IsAvailable("2030-01-01", "10:00", "11:00")
	assert.ErrorIs(t, err, ErrKeyDoesNotExist)

	_, err = s.IsAvailable("2030/01/01", "10:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestIsAvailableInvertedSkipsDateLookup(t *testing.T) {
	s := newFixtureScheduler()

	ok, err := s.IsAvailable("2030-01-01", "12:00", "11:00")
	require.NoError(t, err)
	assert.False(t, ok)
}
