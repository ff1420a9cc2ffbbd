package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/onemapafrica/member-hub-api/internal/shared/handler"
)

type DashboardHandler struct {
	dashboardService *DashboardService
}

func NewDashboardHandler(dashboardService *DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary handles GET /api/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	response, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}
