package transaction

import (
	"net/http"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
)

const transactionNotFound = "TRANSACTION_NOT_FOUND" // errInfo

var ErrTransactionNotFound = sharedError.NewDomainError(transactionNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(transactionNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "TXN-001",
		Message: "Transaction not found.",
	})
}
