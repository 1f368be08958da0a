package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/noah-isme/employee-availability-api/internal/models"
	"github.com/noah-isme/employee-availability-api/internal/scheduler"
)

type scheduleReader interface {
	ListDays(ctx context.Context) ([]models.Day, error)
	ListTimeslots(ctx context.Context) ([]models.Timeslot, error)
}

// Postgres loads the dataset from the work_days and busy_timeslots tables.
type Postgres struct {
	repo    scheduleReader
	locator string
}

// NewPostgres constructs a postgres source; locator identifies the database in errors and cache keys.
func NewPostgres(repo scheduleReader, locator string) *Postgres {
	return &Postgres{repo: repo, locator: locator}
}

// Locator identifies the database.
func (s *Postgres) Locator() string { return s.locator }

// Fetch reads all days and timeslots. An empty days table is DataNotFound.
func (s *Postgres) Fetch(ctx context.Context) (models.Dataset, error) {
	days, err := s.repo.ListDays(ctx)
	if err != nil {
		return models.Dataset{}, &scheduler.DataNotFoundError{Source: s.locator, Err: err}
	}
	if len(days) == 0 {
		return models.Dataset{}, &scheduler.DataNotFoundError{Source: s.locator, Err: errors.New("no work days")}
	}
	slots, err := s.repo.ListTimeslots(ctx)
	if err != nil {
		return models.Dataset{}, &scheduler.DataNotFoundError{Source: s.locator, Err: fmt.Errorf("timeslots: %w", err)}
	}
	return models.Dataset{Days: days, Timeslots: slots}, nil
}
