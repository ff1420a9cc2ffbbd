package transaction

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/onemapafrica/member-hub-api/internal/shared/handler"
)

type TransactionHandler struct {
	transactionService *TransactionService
}

func NewTransactionHandler(transactionService *TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	var request ListTransactionsRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		c.Error(err)
		c.JSON(sharedError.ValidationFailed.Status, sharedError.ValidationFailed)
		return
	}

	response, err := h.transactionService.List(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/transactions/:ref
func (h *TransactionHandler) Get(c *gin.Context) {
	response, err := h.transactionService.GetByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TransactionHandler) respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}

	handler.RespondError(c, err, sharedError.InternalServerError)
}
