package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/employee-availability-api/internal/dto"
	"github.com/noah-isme/employee-availability-api/internal/models"
	"github.com/noah-isme/employee-availability-api/internal/scheduler"
	appErrors "github.com/noah-isme/employee-availability-api/pkg/errors"
	"github.com/noah-isme/employee-availability-api/pkg/export"
)

// Operation labels used for query metrics.
const (
	OpDays         = "days"
	OpDay          = "day"
	OpBusySlots    = "busy_slots"
	OpFreeSlots    = "free_slots"
	OpIsAvailable  = "is_available"
	OpFindSlot     = "find_slot"
	OpValidateSlot = "validate_timeslot"
	OpIsSubset     = "is_subset"
	OpValidateDate = "validate_date"
	OpExportFree   = "export_free_slots"
)

type availabilityEngine interface {
	Days() []models.Day
	DayFromDate(date string) (models.Day, error)
	BusySlots(date string) ([]models.Interval, error)
	FreeSlots(date string) ([]models.Interval, error)
	IsAvailable(date, start, end string) (bool, error)
	FindSlotForDuration(hours, minutes int) (models.SlotMatch, bool, error)
	IsValidTimeslot(interval models.Interval, allowZero bool) (bool, error)
	IsSubset(free, sub models.Interval) (bool, error)
	ValidateDate(date string) error
}

// AvailabilityService exposes the scheduling engine to the API layer.
type AvailabilityService struct {
	engine    availabilityEngine
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	exporters map[string]export.Exporter
}

// NewAvailabilityService constructs the service around a loaded engine.
func NewAvailabilityService(engine availabilityEngine, metrics *MetricsService, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	csv := export.NewCSVExporter()
	pdf := export.NewPDFExporter()
	return &AvailabilityService{
		engine:    engine,
		metrics:   metrics,
		validator: validator.New(),
		logger:    logger,
		exporters: map[string]export.Exporter{
			csv.Extension(): csv,
			pdf.Extension(): pdf,
		},
	}
}

// ListDays returns every working day in dataset order.
func (s *AvailabilityService) ListDays(ctx context.Context) []models.Day {
	days := s.engine.Days()
	s.record(OpDays, nil)
	return days
}

// Day resolves a single working day by date.
func (s *AvailabilityService) Day(ctx context.Context, date string) (*models.Day, error) {
	day, err := s.engine.DayFromDate(date)
	if s.record(OpDay, err) != nil {
		return nil, err
	}
	return &day, nil
}

// BusySlots lists the busy intervals of a date.
func (s *AvailabilityService) BusySlots(ctx context.Context, date string) (*dto.SlotsResponse, error) {
	slots, err := s.engine.BusySlots(date)
	if s.record(OpBusySlots, err) != nil {
		return nil, err
	}
	return &dto.SlotsResponse{Date: date, Slots: slots}, nil
}

// FreeSlots lists the free intervals of a date.
func (s *AvailabilityService) FreeSlots(ctx context.Context, date string) (*dto.SlotsResponse, error) {
	slots, err := s.engine.FreeSlots(date)
	if s.record(OpFreeSlots, err) != nil {
		return nil, err
	}
	return &dto.SlotsResponse{Date: date, Slots: slots}, nil
}

// IsAvailable checks whether the requested interval fits inside a free slot.
func (s *AvailabilityService) IsAvailable(ctx context.Context, req dto.AvailabilityQuery) (*dto.AvailabilityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.record(OpIsAvailable, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date, start and end are required"))
	}
	ok, err := s.engine.IsAvailable(req.Date, req.Start, req.End)
	if s.record(OpIsAvailable, err) != nil {
		return nil, err
	}
	return &dto.AvailabilityResponse{Date: req.Date, Start: req.Start, End: req.End, Available: ok}, nil
}

// FindSlot finds the earliest free slot that fits the requested duration.
func (s *AvailabilityService) FindSlot(ctx context.Context, req dto.SlotSearchQuery) (*dto.SlotSearchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.record(OpFindSlot, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "hours and minutes must not be negative"))
	}
	match, found, err := s.engine.FindSlotForDuration(req.Hours, req.Minutes)
	if s.record(OpFindSlot, err) != nil {
		return nil, err
	}
	if !found {
		return &dto.SlotSearchResponse{Found: false, Message: scheduler.NoSlotMessage}, nil
	}
	return &dto.SlotSearchResponse{Found: true, Slot: &match}, nil
}

// ValidateTimeslot runs the ordering check on a single interval.
func (s *AvailabilityService) ValidateTimeslot(ctx context.Context, req dto.ValidateTimeslotRequest) (*dto.ValidateTimeslotResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.record(OpValidateSlot, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "start and end are required"))
	}
	ok, err := s.engine.IsValidTimeslot(models.Interval{Start: req.Start, End: req.End}, req.AllowZero)
	if s.record(OpValidateSlot, err) != nil {
		return nil, err
	}
	return &dto.ValidateTimeslotResponse{Valid: ok}, nil
}

// IsSubset reports whether sub lies within free.
func (s *AvailabilityService) IsSubset(ctx context.Context, req dto.SubsetRequest) (*dto.SubsetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.record(OpIsSubset, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "free and sub intervals are required"))
	}
	ok, err := s.engine.IsSubset(req.Free, req.Sub)
	if s.record(OpIsSubset, err) != nil {
		return nil, err
	}
	return &dto.SubsetResponse{Subset: ok}, nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func (s *AvailabilityService) ValidateDate(ctx context.Context, req dto.ValidateDateRequest) (*dto.ValidateDateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.record(OpValidateDate, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date is required"))
	}
	if err := s.record(OpValidateDate, s.engine.ValidateDate(req.Date)); err != nil {
		return nil, err
	}
	return &dto.ValidateDateResponse{Date: req.Date, Valid: true}, nil
}

// ExportFreeSlots renders the free slots of a date as csv or pdf. An empty format means csv.
func (s *AvailabilityService) ExportFreeSlots(ctx context.Context, date, format string) (*dto.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, s.record(OpExportFree, appErrors.Clone(appErrors.ErrUnsupportedFmt, fmt.Sprintf("unsupported export format %q", format)))
	}

	slots, err := s.engine.FreeSlots(date)
	if err != nil {
		return nil, s.record(OpExportFree, err)
	}

	table := export.Table{
		Title:   "Free slots " + date,
		Headers: []string{"date", "start", "end", "minutes"},
		Rows:    make([][]string, 0, len(slots)),
	}
	for _, slot := range slots {
		span, err := scheduler.ParseTimeslot(slot)
		if err != nil {
			return nil, s.record(OpExportFree, err)
		}
		table.Rows = append(table.Rows, []string{date, slot.Start, slot.End, strconv.Itoa(int(span.Duration.Minutes()))})
	}

	body, err := exporter.Render(table)
	if err != nil {
		return nil, s.record(OpExportFree, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export"))
	}
	s.record(OpExportFree, nil)
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("free-slots-%s.%s", date, exporter.Extension()),
		ContentType: exporter.ContentType(),
		Body:        body,
	}, nil
}

// record counts the operation under its outcome and returns err unchanged.
func (s *AvailabilityService) record(operation string, err error) error {
	outcome := outcomeOf(err)
	s.metrics.RecordQuery(operation, outcome)
	if outcome == OutcomeError {
		s.logger.Error("availability query failed", zap.String("operation", operation), zap.Error(err))
	} else if err != nil {
		s.logger.Debug("availability query rejected", zap.String("operation", operation), zap.Error(err))
	}
	return err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, scheduler.ErrKeyDoesNotExist):
		return OutcomeNotFound
	case errors.Is(err, scheduler.ErrInvalidDateFormat),
		errors.Is(err, scheduler.ErrInvalidTimeFormat),
		errors.Is(err, scheduler.ErrInvalidDuration),
		errors.Is(err, appErrors.ErrValidation),
		errors.Is(err, appErrors.ErrUnsupportedFmt):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
