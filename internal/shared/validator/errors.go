package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// Return only the first validation error (friendlier for clients)
	fieldErr := validationErrors[0]
	message := getErrorMessage(fieldErr)

	resp := sharedError.ValidationFailed
	resp.Message = message
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Please fill in all required fields."
	case "email":
		return "Email address is not valid."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "phone":
		return "Phone number is not valid."
	case "oneof":
		return fmt.Sprintf("'%s' must be one of: %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Field '%s' is not valid.", fe.Field())
	}
}
