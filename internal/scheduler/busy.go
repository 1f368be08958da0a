package scheduler

import (
	"sort"

	"github.com/noah-isme/employee-availability-api/internal/models"
)

// DayFromDate returns the day scheduled on date.
func (s *Scheduler) DayFromDate(date string) (models.Day, error) {
	if err := ValidateDate(date); err != nil {
		return models.Day{}, err
	}
	for _, day := range s.data.Days {
		if day.Date == date {
			return day, nil
		}
	}
	return models.Day{}, &KeyDoesNotExistError{Key: date, ExistingKeys: s.data.Dates()}
}

// BusySlots returns the distinct busy intervals of date ordered by start, then end.
func (s *Scheduler) BusySlots(date string) ([]models.Interval, error) {
	day, err := s.DayFromDate(date)
	if err != nil {
		return nil, err
	}
	if slots, ok := cached(&s.busy, date); ok {
		return slots, nil
	}

	seen := make(map[models.Interval]struct{})
	slots := make([]models.Interval, 0)
	for _, ts := range s.data.Timeslots {
		if ts.DayID != day.ID {
			continue
		}
		interval := models.Interval{Start: ts.Start, End: ts.End}
		if _, dup := seen[interval]; dup {
			continue
		}
		seen[interval] = struct{}{}
		slots = append(slots, interval)
	}
	sortIntervals(slots)

	return store(&s.busy, date, slots), nil
}

// sortIntervals orders HH:MM intervals lexicographically, which is chronological for the fixed-width format.
func sortIntervals(slots []models.Interval) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Start != slots[j].Start {
			return slots[i].Start < slots[j].Start
		}
		return slots[i].End < slots[j].End
	})
}
