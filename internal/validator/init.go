package validator

import (
	"ctchen222/exercise-tracker/internal/calendar"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	// isodate accepts any date layout calendar.Normalize understands.
	if err := validate.RegisterValidation("isodate", isoDate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := calendar.Normalize(fl.Field().String())
	return err == nil
}
