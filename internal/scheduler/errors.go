package scheduler

import (
	"fmt"
	"strings"

	"github.com/noah-isme/employee-availability-api/internal/models"
	appErrors "github.com/noah-isme/employee-availability-api/pkg/errors"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrInvalidDateFormat = appErrors.ErrInvalidDate
	ErrInvalidTimeFormat = appErrors.ErrInvalidTime
	ErrKeyDoesNotExist   = appErrors.ErrKeyNotExist
	ErrDataNotFound      = appErrors.ErrDataNotFound
	ErrInvalidDuration   = appErrors.ErrInvalidPeriod
)

// InvalidDateFormatError reports a date that is not YYYY-MM-DD.
type InvalidDateFormatError struct {
	Date string
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("invalid date format: %q, expected YYYY-MM-DD", e.Date)
}

func (e *InvalidDateFormatError) Unwrap() error { return ErrInvalidDateFormat }

// AppError converts the error into its API representation.
func (e *InvalidDateFormatError) AppError() *appErrors.Error {
	return appErrors.WithDetails(ErrInvalidDateFormat, e.Error(), map[string]string{"date": e.Date})
}

// InvalidTimeFormatError reports an interval with an endpoint that is not HH:MM.
type InvalidTimeFormatError struct {
	Interval models.Interval
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format in (%q, %q), expected HH:MM with HH in 00-23 and MM in 00-59",
		e.Interval.Start, e.Interval.End)
}

func (e *InvalidTimeFormatError) Unwrap() error { return ErrInvalidTimeFormat }

// AppError converts the error into its API representation.
func (e *InvalidTimeFormatError) AppError() *appErrors.Error {
	return appErrors.WithDetails(ErrInvalidTimeFormat, e.Error(), e.Interval)
}

// KeyDoesNotExistError reports a date absent from the dataset.
type KeyDoesNotExistError struct {
	Key          string
	ExistingKeys []string
}

func (e *KeyDoesNotExistError) Error() string {
	return fmt.Sprintf("key %s does not exist, available keys: [%s]", e.Key, strings.Join(e.ExistingKeys, ", "))
}

func (e *KeyDoesNotExistError) Unwrap() error { return ErrKeyDoesNotExist }

// AppError converts the error into its API representation.
func (e *KeyDoesNotExistError) AppError() *appErrors.Error {
	return appErrors.WithDetails(ErrKeyDoesNotExist, fmt.Sprintf("key %s does not exist", e.Key), map[string]interface{}{
		"key":            e.Key,
		"available_keys": e.ExistingKeys,
	})
}

// DataNotFoundError reports that the dataset could not be fetched from its source.
type DataNotFoundError struct {
	Source string
	Err    error
}

func (e *DataNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data not found at %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("data not found at %s", e.Source)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *DataNotFoundError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDataNotFound, e.Err}
	}
	return []error{ErrDataNotFound}
}

// AppError converts the error into its API representation.
func (e *DataNotFoundError) AppError() *appErrors.Error {
	return appErrors.WithDetails(ErrDataNotFound, fmt.Sprintf("data not found at %s", e.Source), map[string]string{"source": e.Source})
}

// InvalidDurationError reports a requested duration outside [0, 24h).
type InvalidDurationError struct {
	Hours   int
	Minutes int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration %d:%d, the combined duration must be between 0 and 23:59", e.Hours, e.Minutes)
}

func (e *InvalidDurationError) Unwrap() error { return ErrInvalidDuration }

// AppError converts the error into its API representation.
func (e *InvalidDurationError) AppError() *appErrors.Error {
	return appErrors.WithDetails(ErrInvalidDuration, e.Error(), map[string]int{"hours": e.Hours, "minutes": e.Minutes})
}
