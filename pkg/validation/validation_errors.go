package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Account fields
	"Name":     "name",
	"Email":    "email",
	"Password": "password",

	// Profile fields
	"Status":         "status",
	"Skills":         "skills",
	"Company":        "company",
	"Website":        "website",
	"Location":       "location",
	"Bio":            "bio",
	"GithubUsername": "github username",
	"YouTube":        "youtube link",
	"Twitter":        "twitter link",
	"Facebook":       "facebook link",
	"Instagram":      "instagram link",
	"LinkedIn":       "linkedin link",

	// Experience fields
	"Title": "title",
	"From":  "from date",
	"To":    "to date",

	// Education fields
	"School":       "school",
	"Degree":       "degree",
	"FieldOfStudy": "field of study",

	// Post fields
	"Text": "text",
}

// FormatValidationErrors converts validator.ValidationErrors into
// per-field user-facing messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("please enter a valid %s", label)
	case "min":
		return fmt.Sprintf("please enter a %s with %s or more characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "date":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
