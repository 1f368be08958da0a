package dto

import "github.com/noah-isme/employee-availability-api/internal/models"

// SlotsResponse lists the busy or free intervals of one day.
type SlotsResponse struct {
	Date  string            `json:"date"`
	Slots []models.Interval `json:"slots"`
}

// AvailabilityQuery captures GET /availability parameters.
type AvailabilityQuery struct {
	Date  string `form:"date" json:"date" validate:"required"`
	Start string `form:"start" json:"start" validate:"required"`
	End   string `form:"end" json:"end" validate:"required"`
}

// AvailabilityResponse reports whether the interval fits a free slot.
type AvailabilityResponse struct {
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// SlotSearchQuery captures GET /slots/search parameters.
type SlotSearchQuery struct {
	Hours   int `form:"hours" json:"hours" validate:"gte=0"`
	Minutes int `form:"minutes" json:"minutes" validate:"gte=0"`
}

// SlotSearchResponse carries the earliest matching slot, or a message when none fits.
type SlotSearchResponse struct {
	Found   bool              `json:"found"`
	Slot    *models.SlotMatch `json:"slot,omitempty"`
	Message string            `json:"message,omitempty"`
}

// ValidateTimeslotRequest is the POST /timeslots/validate payload.
type ValidateTimeslotRequest struct {
	Start     string `json:"start" validate:"required"`
	End       string `json:"end" validate:"required"`
	AllowZero bool   `json:"allow_zero"`
}

// ValidateTimeslotResponse reports the ordering check result.
type ValidateTimeslotResponse struct {
	Valid bool `json:"valid"`
}

// SubsetRequest is the POST /intervals/subset payload.
type SubsetRequest struct {
	Free models.Interval `json:"free"`
	Sub  models.Interval `json:"sub"`
}

// SubsetResponse reports whether sub lies within free.
type SubsetResponse struct {
	Subset bool `json:"subset"`
}

// ValidateDateRequest is the POST /dates/validate payload.
type ValidateDateRequest struct {
	Date string `json:"date" validate:"required"`
}

// ValidateDateResponse echoes an accepted date.
type ValidateDateResponse struct {
	Date  string `json:"date"`
	Valid bool   `json:"valid"`
}

// ExportFile is a rendered export ready to stream.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}
