package scheduler

import (
	"github.com/noah-isme/employee-availability-api/internal/models"
)

// IsAvailable reports whether [start, end) on date falls inside a single free interval.
// An empty or inverted request is simply unavailable; malformed times are an error.
func (s *Scheduler) IsAvailable(date, start, end string) (bool, error) {
	request := models.Interval{Start: start, End: end}
	ok, err := IsValidTimeslot(request, false)
	if err != nil || !ok {
		return false, err
	}

	free, err := s.FreeSlots(date)
	if err != nil {
		return false, err
	}
	for _, slot := range free {
		contained, err := IsSubset(slot, request)
		if err != nil {
			return false, err
		}
		if contained {
			return true, nil
		}
	}
	return false, nil
}
