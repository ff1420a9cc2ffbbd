package signature

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/onemapafrica/member-hub-api/internal/shared/handler"
)

type SignatureHandler struct {
	signatureService *SignatureService
}

func NewSignatureHandler(signatureService *SignatureService) *SignatureHandler {
	return &SignatureHandler{
		signatureService: signatureService,
	}
}

// Upload handles POST /upload-image. The file arrives as multipart field
// "image".
func (h *SignatureHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		return
	}

	src, err := file.Open()
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}
	defer src.Close()

	response, err := h.signatureService.UploadImage(
		c.Request.Context(),
		file.Header.Get("Content-Type"),
		file.Size,
		src,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ServeAsset handles GET /assets/:id, returning the stored bytes verbatim.
func (h *SignatureHandler) ServeAsset(c *gin.Context) {
	asset, err := h.signatureService.GetAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, asset.ContentType, asset.Data)
}

// Get handles GET /signature
func (h *SignatureHandler) Get(c *gin.Context) {
	response, err := h.signatureService.Get(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Set handles POST /signature
func (h *SignatureHandler) Set(c *gin.Context) {
	var request SetSignatureRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.signatureService.Set(c.Request.Context(), request.AssetID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /signature
func (h *SignatureHandler) Delete(c *gin.Context) {
	if err := h.signatureService.Delete(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SignatureHandler) respondError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		handler.RespondError(c, err, resp)
		return
	}

	handler.RespondError(c, err, sharedError.InternalServerError)
}
