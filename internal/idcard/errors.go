package idcard

import (
	"net/http"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
)

const (
	renderFailed   = "IDCARD_RENDER_FAILED"   // errInfo
	dispatchFailed = "IDCARD_DISPATCH_FAILED" // errInfo
)

var (
	ErrRenderFailed   = sharedError.NewDomainError(renderFailed)
	ErrDispatchFailed = sharedError.NewDomainError(dispatchFailed)
)

func init() {
	sharedError.RegisterDomainErrorResponse(renderFailed, sharedError.ErrorResponse{
		Status:  http.StatusBadGateway,
		Code:    "CARD-005",
		Message: "The ID card could not be rendered.",
	})

	sharedError.RegisterDomainErrorResponse(dispatchFailed, sharedError.ErrorResponse{
		Status:  http.StatusBadGateway,
		Code:    "CARD-006",
		Message: "The ID card could not be delivered.",
	})
}
