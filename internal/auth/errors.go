package auth

import (
	"net/http"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
)

const (
	incorrectEmailPassword = "INCORRECT_EMAIL_PASSWORD" // errInfo
	adminAlreadyExists     = "ADMIN_ALREADY_EXISTS"     // errInfo
)

var (
	ErrIncorrectEmailPassword = sharedError.NewDomainError(incorrectEmailPassword)
	ErrAdminAlreadyExists     = sharedError.NewDomainError(adminAlreadyExists)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectEmailPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "Email or password does not match.",
	})

	sharedError.RegisterDomainErrorResponse(adminAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "AUTH-004",
		Message: "An admin account with this email already exists.",
	})
}
