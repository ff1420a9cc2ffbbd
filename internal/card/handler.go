package card

import (
	"net/http"
	"strconv"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/onemapafrica/member-hub-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardService *CardService
}

func NewCardHandler(cardService *CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// Generate handles POST /api/members/:id/generate-card
func (h *CardHandler) Generate(c *gin.Context) {
	memberID, ok := parseMemberID(c)
	if !ok {
		return
	}

	response, err := h.cardService.Generate(c.Request.Context(), memberID)
	if err != nil {
		if resp, ok := sharedError.ResolveDomainError(err); ok {
			handler.RespondError(c, err, resp)
			return
		}

		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Revoke handles PATCH /api/members/:id/revoke-card
func (h *CardHandler) Revoke(c *gin.Context) {
	var request RevokeCardRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	// The :id segment carries the card serial on lifecycle routes.
	response, err := h.cardService.Revoke(c.Request.Context(), c.Param("id"), request.Reason, request.Details)
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

// Reactivate handles PATCH /api/members/:id/reactivate-card
func (h *CardHandler) Reactivate(c *gin.Context) {
	var request ReactivateCardRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.cardService.Reactivate(c.Request.Context(), c.Param("id"), request.Reason, request.Details)
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

func parseMemberID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return uint32(id), true
}
