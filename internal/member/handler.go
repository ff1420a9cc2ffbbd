package member

import (
	"net/http"
	"strconv"

	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/onemapafrica/member-hub-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Create handles POST /api/members
func (h *MemberHandler) Create(c *gin.Context) {
	var request CreateMemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.Create(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Get handles GET /api/members/:id - returns the member plus current card.
func (h *MemberHandler) Get(c *gin.Context) {
	memberID, ok := h.parseID(c)
	if !ok {
		return
	}

	response, err := h.memberService.Get(c.Request.Context(), memberID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/members
func (h *MemberHandler) List(c *gin.Context) {
	var request ListMembersRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		c.Error(err)
		c.JSON(sharedError.ValidationFailed.Status, sharedError.ValidationFailed)
		return
	}

	response, err := h.memberService.List(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	memberID, ok := h.parseID(c)
	if !ok {
		return
	}

	var request UpdateMemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.Update(c.Request.Context(), memberID, &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	memberID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), memberID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *MemberHandler) parseID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return uint32(id), true
}

func (h *MemberHandler) respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}
	handler.RespondError(c, err, sharedError.InternalServerError)
}
