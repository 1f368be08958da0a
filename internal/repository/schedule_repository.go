package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/employee-availability-api/internal/models"
)

// ScheduleRepository reads an employee's working days and busy timeslots.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs the repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListDays returns working days ordered by date.
func (r *ScheduleRepository) ListDays(ctx context.Context) ([]models.Day, error) {
	const query = `SELECT id, to_char(work_date, 'YYYY-MM-DD') AS date, to_char(start_time, 'HH24:MI') AS start, to_char(end_time, 'HH24:MI') AS "end" FROM work_days ORDER BY work_date, id`
	var days []models.Day
	if err := r.db.SelectContext(ctx, &days, query); err != nil {
		return nil, fmt.Errorf("list work days: %w", err)
	}
	return days, nil
}

// ListTimeslots returns every busy timeslot.
func (r *ScheduleRepository) ListTimeslots(ctx context.Context) ([]models.Timeslot, error) {
	const query = `SELECT day_id, to_char(start_time, 'HH24:MI') AS start, to_char(end_time, 'HH24:MI') AS "end" FROM busy_timeslots ORDER BY day_id, start_time`
	var slots []models.Timeslot
	if err := r.db.SelectContext(ctx, &slots, query); err != nil {
		return nil, fmt.Errorf("list busy timeslots: %w", err)
	}
	return slots, nil
}
