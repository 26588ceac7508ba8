package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrUserNotFound is returned when a user id does not resolve to a user.
var ErrUserNotFound = errors.New("User not found")

// ValidationError reports a request field that is missing or cannot be coerced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// fromValidator converts the first go-playground validation failure into a
// ValidationError. Other errors are returned unchanged.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return invalid(field, "is required")
	case "isodate":
		return invalid(field, "must be a date in YYYY-MM-DD form")
	default:
		return invalid(field, fmt.Sprintf("failed %q validation", fe.Tag()))
	}
}
