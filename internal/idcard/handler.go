package idcard

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/onemapafrica/member-hub-api/internal/shared/handler"
)

type IDCardHandler struct {
	idCardService *IDCardService
}

func NewIDCardHandler(idCardService *IDCardService) *IDCardHandler {
	return &IDCardHandler{
		idCardService: idCardService,
	}
}

// Export handles GET /api/members/:id/card.pdf
func (h *IDCardHandler) Export(c *gin.Context) {
	memberID, ok := parseMemberID(c)
	if !ok {
		return
	}

	doc, err := h.idCardService.Export(c.Request.Context(), memberID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

// Dispatch handles POST /api/members/:id/dispatch-card
func (h *IDCardHandler) Dispatch(c *gin.Context) {
	memberID, ok := parseMemberID(c)
	if !ok {
		return
	}

	var request DispatchCardRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.idCardService.Dispatch(c.Request.Context(), memberID, request.Email); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "ID card dispatched."})
}

// Upload handles POST /upload-id. The client posts an already rendered
// document (multipart fields email, name, file) and the server mails it on.
func (h *IDCardHandler) Upload(c *gin.Context) {
	email := c.PostForm("email")
	name := c.PostForm("name")

	file, err := c.FormFile("file")
	if err != nil || email == "" {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return
	}

	src, err := file.Open()
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	doc := &Document{Filename: file.Filename, Data: data}
	if err := h.idCardService.DispatchDocument(c.Request.Context(), email, name, doc); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "ID card dispatched."})
}

func (h *IDCardHandler) respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}

	handler.RespondError(c, err, sharedError.InternalServerError)
}

func parseMemberID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return 0, false
	}
	return uint32(id), true
}
