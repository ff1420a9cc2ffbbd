package card

import (
	"net/http"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
)

const (
	cardNotFound          = "CARD_NOT_FOUND"           // errInfo
	generationFailed      = "CARD_GENERATION_FAILED"   // errInfo
	cardAlreadyActive     = "CARD_ALREADY_ACTIVE"      // errInfo
	cardInactive          = "CARD_INACTIVE"            // errInfo
	invalidReason         = "CARD_INVALID_REASON"      // errInfo
	reasonDetailsRequired = "CARD_REASON_DETAILS"      // errInfo
)

var (
	ErrCardNotFound          = sharedError.NewDomainError(cardNotFound)
	ErrGenerationFailed      = sharedError.NewDomainError(generationFailed)
	ErrCardAlreadyActive     = sharedError.NewDomainError(cardAlreadyActive)
	ErrCardInactive          = sharedError.NewDomainError(cardInactive)
	ErrInvalidReason         = sharedError.NewDomainError(invalidReason)
	ErrReasonDetailsRequired = sharedError.NewDomainError(reasonDetailsRequired)
)

func init() {
	sharedError.RegisterDomainErrorResponse(cardNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CARD-001",
		Message: "Card not found.",
	})

	sharedError.RegisterDomainErrorResponse(generationFailed, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "CARD-002",
		Message: "Card could not be generated. The member may already hold a card.",
	})

	sharedError.RegisterDomainErrorResponse(cardAlreadyActive, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "CARD-003",
		Message: "Card is already active.",
	})

	sharedError.RegisterDomainErrorResponse(cardInactive, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "CARD-004",
		Message: "Card is inactive.",
	})

	sharedError.RegisterDomainErrorResponse(invalidReason, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001",
		Message: "A reason from the accepted list is required.",
	})

	sharedError.RegisterDomainErrorResponse(reasonDetailsRequired, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001",
		Message: "Please describe the reason when selecting Other.",
	})
}
