package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"FirstName":   "First name",
	"LastName":    "Last name",
	"Phone":       "Phone number",
	"Email":       "Email",
	"Zip":         "Zip code",
	"State":       "State",
	"TrustedForm": "TrustedForm certificate",
	"JornayaID":   "Jornaya lead id",
	"IPAddress":   "IP address",
}

// PingFieldHints names the ping request key a field feeds, appended to messages
var PingFieldHints = map[string]string{
	"Phone": "caller_id",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// Message joins all validation messages into one line
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	fieldName := e.StructField()
	label := getFieldLabel(fieldName)

	var msg string
	switch e.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", label)
	default:
		msg = fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}

	if hint, ok := PingFieldHints[fieldName]; ok {
		msg = fmt.Sprintf("%s (%s)", msg, hint)
	}
	return msg
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
