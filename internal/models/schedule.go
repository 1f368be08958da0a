package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque day identifier. Only equality is meaningful. JSON accepts
// either a string or a number and always writes a string.
type ID string

// UnmarshalJSON decodes a JSON string or number into the identifier.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var n interface{}
	if err := dec.Decode(&n); err != nil {
		return err
	}
	num, ok := n.(json.Number)
	if !ok {
		return fmt.Errorf("id must be a string or a number, got %s", b)
	}
	*id = ID(num.String())
	return nil
}

// Scan reads an identifier column of any integer or text type.
func (id *ID) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*id = ID(strconv.FormatInt(v, 10))
	case int:
		*id = ID(strconv.Itoa(v))
	case string:
		*id = ID(v)
	case []byte:
		*id = ID(v)
	case nil:
		*id = ""
	default:
		return fmt.Errorf("cannot scan %T into id", src)
	}
	return nil
}

// Day is an employee's working window for a single calendar date.
type Day struct {
	ID    ID     `db:"id" json:"id"`
	Date  string `db:"date" json:"date"`
	Start string `db:"start" json:"start"`
	End   string `db:"end" json:"end"`
}

// Window returns the working window of the day as an interval.
func (d Day) Window() Interval {
	return Interval{Start: d.Start, End: d.End}
}

// Timeslot is a busy interval attached to a day by id.
type Timeslot struct {
	DayID ID     `db:"day_id" json:"day_id"`
	Start string `db:"start" json:"start"`
	End   string `db:"end" json:"end"`
}

// Dataset is an immutable snapshot of days and their busy timeslots.
type Dataset struct {
	Days      []Day      `json:"days"`
	Timeslots []Timeslot `json:"timeslots"`
}

// Dates lists the dates of all days in dataset order.
func (d Dataset) Dates() []string {
	dates := make([]string, 0, len(d.Days))
	for _, day := range d.Days {
		dates = append(dates, day.Date)
	}
	return dates
}

// Interval is a pair of HH:MM time-of-day values on the same implicit date.
type Interval struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// SlotMatch is the earliest free slot found for a requested duration.
type SlotMatch struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}
