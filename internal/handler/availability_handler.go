package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/employee-availability-api/internal/dto"
	"github.com/noah-isme/employee-availability-api/internal/models"
	appErrors "github.com/noah-isme/employee-availability-api/pkg/errors"
	"github.com/noah-isme/employee-availability-api/pkg/response"
)

type availabilityService interface {
	ListDays(ctx context.Context) []models.Day
	Day(ctx context.Context, date string) (*models.Day, error)
	BusySlots(ctx context.Context, date string) (*dto.SlotsResponse, error)
	FreeSlots(ctx context.Context, date string) (*dto.SlotsResponse, error)
	IsAvailable(ctx context.Context, req dto.AvailabilityQuery) (*dto.AvailabilityResponse, error)
	FindSlot(ctx context.Context, req dto.SlotSearchQuery) (*dto.SlotSearchResponse, error)
	ValidateTimeslot(ctx context.Context, req dto.ValidateTimeslotRequest) (*dto.ValidateTimeslotResponse, error)
	IsSubset(ctx context.Context, req dto.SubsetRequest) (*dto.SubsetResponse, error)
	ValidateDate(ctx context.Context, req dto.ValidateDateRequest) (*dto.ValidateDateResponse, error)
	ExportFreeSlots(ctx context.Context, date, format string) (*dto.ExportFile, error)
}

// AvailabilityHandler exposes the schedule and availability endpoints.
type AvailabilityHandler struct {
	service availabilityService
}

// NewAvailabilityHandler builds a new handler.
func NewAvailabilityHandler(service availabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// Register mounts the handler routes on rg.
func (h *AvailabilityHandler) Register(rg gin.IRoutes) {
	rg.GET("/days", h.ListDays)
	rg.GET("/days/:date", h.GetDay)
	rg.GET("/days/:date/busy-slots", h.BusySlots)
	rg.GET("/days/:date/free-slots", h.FreeSlots)
	rg.GET("/days/:date/free-slots/export", h.ExportFreeSlots)
	rg.GET("/availability", h.IsAvailable)
	rg.GET("/slots/search", h.FindSlot)
	rg.POST("/timeslots/validate", h.ValidateTimeslot)
	rg.POST("/intervals/subset", h.IsSubset)
	rg.POST("/dates/validate", h.ValidateDate)
}

// ListDays godoc
// @Summary List working days
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /days [get]
func (h *AvailabilityHandler) ListDays(c *gin.Context) {
	days := h.service.ListDays(c.Request.Context())
	response.JSON(c, http.StatusOK, days, map[string]interface{}{"total": len(days)})
}

// GetDay godoc
// @Summary Get working day by date
// @Tags Schedule
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /days/{date} [get]
func (h *AvailabilityHandler) GetDay(c *gin.Context) {
	day, err := h.service.Day(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, day)
}

// BusySlots godoc
// @Summary Busy slots of a day
// @Tags Schedule
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /days/{date}/busy-slots [get]
func (h *AvailabilityHandler) BusySlots(c *gin.Context) {
	slots, err := h.service.BusySlots(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots)
}

// FreeSlots godoc
// @Summary Free slots of a day
// @Tags Schedule
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /days/{date}/free-slots [get]
func (h *AvailabilityHandler) FreeSlots(c *gin.Context) {
	slots, err := h.service.FreeSlots(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots)
}

// ExportFreeSlots godoc
// @Summary Download free slots of a day
// @Tags Schedule
// @Produce text/csv
// @Produce application/pdf
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /days/{date}/free-slots/export [get]
func (h *AvailabilityHandler) ExportFreeSlots(c *gin.Context) {
	file, err := h.service.ExportFreeSlots(c.Request.Context(), c.Param("date"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Body)
}

// IsAvailable godoc
// @Summary Check an interval against free slots
// @Tags Availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start (HH:MM)"
// @Param end query string true "End (HH:MM)"
// @Success 200 {object} response.Envelope
// @Router /availability [get]
func (h *AvailabilityHandler) IsAvailable(c *gin.Context) {
	var query dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid availability query"))
		return
	}
	result, err := h.service.IsAvailable(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// FindSlot godoc
// @Summary Earliest free slot for a duration
// @Tags Availability
// @Produce json
// @Param hours query int false "Hours"
// @Param minutes query int false "Minutes"
// @Success 200 {object} response.Envelope
// @Router /slots/search [get]
func (h *AvailabilityHandler) FindSlot(c *gin.Context) {
	var query dto.SlotSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "hours and minutes must be integers"))
		return
	}
	result, err := h.service.FindSlot(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// ValidateTimeslot godoc
// @Summary Validate a timeslot
// @Tags Validation
// @Accept json
// @Produce json
// @Param payload body dto.ValidateTimeslotRequest true "Timeslot"
// @Success 200 {object} response.Envelope
// @Router /timeslots/validate [post]
func (h *AvailabilityHandler) ValidateTimeslot(c *gin.Context) {
	var req dto.ValidateTimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid timeslot payload"))
		return
	}
	result, err := h.service.ValidateTimeslot(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// IsSubset godoc
// @Summary Check interval containment
// @Tags Validation
// @Accept json
// @Produce json
// @Param payload body dto.SubsetRequest true "Intervals"
// @Success 200 {object} response.Envelope
// @Router /intervals/subset [post]
func (h *AvailabilityHandler) IsSubset(c *gin.Context) {
	var req dto.SubsetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subset payload"))
		return
	}
	result, err := h.service.IsSubset(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// ValidateDate godoc
// @Summary Validate a date
// @Tags Validation
// @Accept json
// @Produce json
// @Param payload body dto.ValidateDateRequest true "Date"
// @Success 200 {object} response.Envelope
// @Router /dates/validate [post]
func (h *AvailabilityHandler) ValidateDate(c *gin.Context) {
	var req dto.ValidateDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid date payload"))
		return
	}
	result, err := h.service.ValidateDate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
