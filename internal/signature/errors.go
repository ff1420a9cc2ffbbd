package signature

import (
	"net/http"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
)

const (
	signatureNotFound = "SIGNATURE_NOT_FOUND" // errInfo
	signatureTooLarge = "SIGNATURE_TOO_LARGE" // errInfo
	signatureBadType  = "SIGNATURE_BAD_TYPE"  // errInfo
	assetNotFound     = "ASSET_NOT_FOUND"     // errInfo
)

var (
	ErrSignatureNotFound = sharedError.NewDomainError(signatureNotFound)
	ErrSignatureTooLarge = sharedError.NewDomainError(signatureTooLarge)
	ErrSignatureBadType  = sharedError.NewDomainError(signatureBadType)
	ErrAssetNotFound     = sharedError.NewDomainError(assetNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(signatureNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "SIGN-001",
		Message: "No signature has been uploaded.",
	})

	sharedError.RegisterDomainErrorResponse(signatureTooLarge, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "SIGN-002",
		Message: "Image exceeds the maximum upload size.",
	})

	sharedError.RegisterDomainErrorResponse(signatureBadType, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "SIGN-003",
		Message: "Only image files are accepted.",
	})

	sharedError.RegisterDomainErrorResponse(assetNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "SIGN-004",
		Message: "Asset not found.",
	})
}
