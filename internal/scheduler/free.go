package scheduler

import (
	"github.com/noah-isme/employee-availability-api/internal/models"
)

// FreeSlots returns the gaps between busy intervals inside the day's window.
//
// Busy intervals are deduplicated but never merged, so overlapping (not identical)
// busy intervals may yield a gap that is not entirely free.
func (s *Scheduler) FreeSlots(date string) ([]models.Interval, error) {
	day, err := s.DayFromDate(date)
	if err != nil {
		return nil, err
	}
	if slots, ok := cached(&s.free, date); ok {
		return slots, nil
	}
	if _, err := ParseTimeslot(day.Window()); err != nil {
		return nil, err
	}

	busy, err := s.BusySlots(date)
	if err != nil {
		return nil, err
	}
	if len(busy) == 0 {
		return store(&s.free, date, []models.Interval{day.Window()}), nil
	}

	candidates := make([]models.Interval, 0, len(busy)+1)
	candidates = append(candidates,
		models.Interval{Start: day.Start, End: busy[0].Start},
		models.Interval{Start: busy[len(busy)-1].End, End: day.End},
	)
	for i := 0; i < len(busy)-1; i++ {
		candidates = append(candidates, models.Interval{Start: busy[i].End, End: busy[i+1].Start})
	}

	free := make([]models.Interval, 0, len(candidates))
	for _, c := range candidates {
		ok, err := IsValidTimeslot(c, false)
		if err != nil {
			return nil, err
		}
		if ok {
			free = append(free, c)
		}
	}
	sortIntervals(free)

	return store(&s.free, date, free), nil
}
