package scheduler

import (
	"fmt"
	"time"

	"github.com/noah-isme/employee-availability-api/internal/models"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
	minutesADay = 24 * 60
)

// Clock is a time of day expressed in minutes since midnight.
type Clock int

// ParseClock parses a strict, zero-padded HH:MM value.
func ParseClock(value string) (Clock, error) {
	// time.Parse accepts a single-digit hour for "15", so the width is checked first.
	if len(value) != len(clockLayout) || value[2] != ':' {
		return 0, fmt.Errorf("clock %q: want HH:MM", value)
	}
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, err
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

// Add returns the time of day d after c, wrapping at midnight.
func (c Clock) Add(d time.Duration) Clock {
	m := (int(c) + int(d/time.Minute)) % minutesADay
	if m < 0 {
		m += minutesADay
	}
	return Clock(m)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Span is a parsed interval. Duration is End minus Start on the same date and may be negative.
type Span struct {
	Start    Clock
	End      Clock
	Duration time.Duration
}

// Valid reports whether the span has a positive duration, or a non-negative one when allowZero is set.
func (s Span) Valid(allowZero bool) bool {
	if allowZero {
		return s.Duration >= 0
	}
	return s.Duration > 0
}

// ValidateDate checks that date is a calendar date in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return &InvalidDateFormatError{Date: date}
	}
	return nil
}

// ParseTimeslot validates both endpoints of an interval and measures it.
func ParseTimeslot(interval models.Interval) (Span, error) {
	start, err := ParseClock(interval.Start)
	if err != nil {
		return Span{}, &InvalidTimeFormatError{Interval: interval}
	}
	end, err := ParseClock(interval.End)
	if err != nil {
		return Span{}, &InvalidTimeFormatError{Interval: interval}
	}
	return Span{Start: start, End: end, Duration: time.Duration(end-start) * time.Minute}, nil
}

// IsValidTimeslot reports whether the interval has a positive duration,
// or a non-negative one when allowZero is set. Format errors take priority.
func IsValidTimeslot(interval models.Interval, allowZero bool) (bool, error) {
	span, err := ParseTimeslot(interval)
	if err != nil {
		return false, err
	}
	return span.Valid(allowZero), nil
}
