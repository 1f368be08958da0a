package scheduler

import (
	"time"

	"github.com/noah-isme/employee-availability-api/internal/models"
)

// NoSlotMessage describes the empty result of FindSlotForDuration.
const NoSlotMessage = "there is no free time in the schedule for the requested duration"

// FindSlotForDuration returns the earliest free slot, in day order, that can hold
// the requested duration starting at the slot's own start. found is false when no
// slot fits; that is a normal outcome rather than an error.
func (s *Scheduler) FindSlotForDuration(hours, minutes int) (match models.SlotMatch, found bool, err error) {
	// Inputs are bounded before any multiplication.
	if hours < 0 || minutes < 0 || hours >= 24 || minutes >= minutesADay {
		return models.SlotMatch{}, false, &InvalidDurationError{Hours: hours, Minutes: minutes}
	}
	total := hours*60 + minutes
	if total >= minutesADay {
		return models.SlotMatch{}, false, &InvalidDurationError{Hours: hours, Minutes: minutes}
	}
	duration := time.Duration(total) * time.Minute

	for _, day := range s.data.Days {
		free, err := s.FreeSlots(day.Date)
		if err != nil {
			return models.SlotMatch{}, false, err
		}
		for _, slot := range free {
			start, err := ParseClock(slot.Start)
			if err != nil {
				return models.SlotMatch{}, false, &InvalidTimeFormatError{Interval: slot}
			}
			candidate := models.Interval{Start: slot.Start, End: start.Add(duration).String()}
			ok, err := IsSubset(slot, candidate)
			if err != nil {
				return models.SlotMatch{}, false, err
			}
			if ok {
				return models.SlotMatch{Date: day.Date, Start: candidate.Start, End: candidate.End}, true, nil
			}
		}
	}
	return models.SlotMatch{}, false, nil
}
