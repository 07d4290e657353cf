package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("date", Date)
}

// Date validates a YYYY-MM-DD calendar date. Empty values pass; combine with
// required where the field is mandatory.
func Date(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	if !dateRegex.MatchString(val) {
		return false
	}
	_, err := time.Parse("2006-01-02", val)
	return err == nil
}
