package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegex accepts international numbers with an optional leading +,
	// 7 to 15 digits, with spaces or dashes as separators.
	// Formats: +233 24 123 4567, 0241234567, 024-123-4567
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 -]{5,18}[0-9]$`)
)

// ValidatePhone validates a phone number.
// This is a common validator used across multiple domains.
func ValidatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return phoneRegex.MatchString(phone)
}
