package verify

import (
	"net/http"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/onemapafrica/member-hub-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	verificationService *VerificationService
}

func NewVerificationHandler(verificationService *VerificationService) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
	}
}

// Verify handles GET /api/verify-card/:identifier (public, unauthenticated).
func (h *VerificationHandler) Verify(c *gin.Context) {
	response, err := h.verificationService.Verify(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}
