package scheduler

import (
	"context"

	"github.com/noah-isme/employee-availability-api/internal/models"
)

func fixtureDataset() models.Dataset {
	return models.Dataset{
		Days: []models.Day{
			{ID: "1", Date: "2025-02-15", Start: "09:00", End: "21:00"},
			{ID: "2", Date: "2025-02-16", Start: "08:00", End: "22:00"},
			{ID: "3", Date: "2025-02-17", Start: "09:00", End: "18:00"},
			{ID: "4", Date: "2025-02-18", Start: "10:00", End: "18:00"},
			{ID: "5", Date: "2025-02-19", Start: "09:00", End: "18:00"},
		},
		Timeslots: []models.Timeslot{
			{DayID: "1", Start: "17:30", End: "20:00"},
			{DayID: "1", Start: "09:00", End: "12:00"},
			{DayID: "2", Start: "09:30", End: "11:00"},
			{DayID: "2", Start: "14:30", End: "18:00"},
			{DayID: "3", Start: "12:30", End: "18:00"},
			{DayID: "4", Start: "10:00", End: "11:00"},
			{DayID: "4", Start: "11:30", End: "14:00"},
			{DayID: "4", Start: "11:30", End: "14:00"},
			{DayID: "4", Start: "14:00", End: "16:00"},
			{DayID: "4", Start: "17:00", End: "18:00"},
			{DayID: "99", Start: "10:00", End: "11:00"},
		},
	}
}

func newFixtureScheduler() *Scheduler {
	return New(fixtureDataset())
}

type staticSource struct {
	data models.Dataset
	err  error
}

func (s staticSource) Fetch(ctx context.Context) (models.Dataset, error) {
	return s.data, s.err
}

func (s staticSource) Locator() string { return "memory://fixture" }

func iv(start, end string) models.Interval {
	return models.Interval{Start: start, End: end}
}
