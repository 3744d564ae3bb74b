package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/services"
	"github.com/ines300405/luxury-wheels/internal/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSummary returns the headline figures of the overview screen
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary := h.dashboardService.Summary(c.Request.Context())
	utils.SuccessResponse(c, "Dashboard summary retrieved successfully", summary)
}

// GetReservationsByMonth returns reservation counts grouped by start month
func (h *DashboardHandler) GetReservationsByMonth(c *gin.Context) {
	counts := h.dashboardService.ReservationsByMonth(c.Request.Context())
	utils.SuccessResponseWithMeta(c, "Monthly reservation counts retrieved successfully", counts, &utils.Meta{Count: len(counts)})
}
