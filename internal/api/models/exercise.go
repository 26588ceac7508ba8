package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Exercise represents a logged exercise. Username is a snapshot of the owning
// user's name at creation time and Date is always stored as YYYY-MM-DD.
type Exercise struct {
	ID          string `db:"id"`
	UserID      string `db:"user_id"`
	Username    string `db:"username"`
	Description string `db:"description"`
	Duration    int    `db:"duration"`
	Date        string `db:"date"`
}

// LogFilter selects the exercises of one user whose date lies in [From, To],
// returning at most Limit records.
type LogFilter struct {
	UserID string
	From   string
	To     string
	Limit  int
}

// ExerciseRequest is the input schema of POST /api/users/:id/exercises.
// Duration stays textual until the service coerces it, so that a
// non-numeric value can be reported instead of silently dropped.
type ExerciseRequest struct {
	Description string     `form:"description" json:"description" validate:"required"`
	Duration    FlexString `form:"duration" json:"duration" validate:"required"`
	Date        string     `form:"date" json:"date" validate:"omitempty,isodate"`
}

// LogQuery is the query schema of GET /api/users/:id/logs.
type LogQuery struct {
	From  string `form:"from" validate:"omitempty,isodate"`
	To    string `form:"to" validate:"omitempty,isodate"`
	Limit string `form:"limit"`
}

// FlexString accepts either a JSON string or a JSON number and keeps its
// textual form.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected a string or number, got %s", data)
		}
		*f = FlexString(n.String())
		return nil
	}
}

// UnmarshalParam lets gin bind form and query values into a FlexString.
func (f *FlexString) UnmarshalParam(param string) error {
	*f = FlexString(param)
	return nil
}

func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}
