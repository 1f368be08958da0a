// Package scheduler derives busy and free intervals for an employee's working days
// and answers availability and earliest-fit queries against them.
package scheduler

import (
	"context"
	"errors"
	"sync"

	"github.com/noah-isme/employee-availability-api/internal/models"
)

// DatasetSource fetches the dataset a Scheduler is built from.
type DatasetSource interface {
	Fetch(ctx context.Context) (models.Dataset, error)
	Locator() string
}

// Scheduler answers queries over one immutable dataset snapshot.
// Derived busy and free slots are memoized per date for the lifetime of the instance.
type Scheduler struct {
	data models.Dataset

	busy sync.Map // date -> []models.Interval
	free sync.Map // date -> []models.Interval
}

// New builds a Scheduler over an already fetched dataset.
func New(data models.Dataset) *Scheduler {
	return &Scheduler{data: data}
}

// Open fetches the dataset once and builds a Scheduler over it.
// Any fetch failure is reported as a DataNotFoundError for the source.
func Open(ctx context.Context, src DatasetSource) (*Scheduler, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		var notFound *DataNotFoundError
		if errors.As(err, &notFound) {
			return nil, err
		}
		return nil, &DataNotFoundError{Source: src.Locator(), Err: err}
	}
	return New(data), nil
}

// Days returns the days in dataset order.
func (s *Scheduler) Days() []models.Day {
	days := make([]models.Day, len(s.data.Days))
	copy(days, s.data.Days)
	return days
}

// IsSubset reports whether sub lies within free, boundaries included.
func (s *Scheduler) IsSubset(free, sub models.Interval) (bool, error) {
	return IsSubset(free, sub)
}

// ValidateDate checks that date is in YYYY-MM-DD form.
func (s *Scheduler) ValidateDate(date string) error {
	return ValidateDate(date)
}

// IsValidTimeslot reports whether the interval is non-empty, or non-negative when allowZero is set.
func (s *Scheduler) IsValidTimeslot(interval models.Interval, allowZero bool) (bool, error) {
	return IsValidTimeslot(interval, allowZero)
}

func cached(m *sync.Map, date string) ([]models.Interval, bool) {
	v, ok := m.Load(date)
	if !ok {
		return nil, false
	}
	return v.([]models.Interval), true
}

// store keeps the first value written for a date; racing writers adopt it.
func store(m *sync.Map, date string, slots []models.Interval) []models.Interval {
	v, _ := m.LoadOrStore(date, slots)
	return v.([]models.Interval)
}
