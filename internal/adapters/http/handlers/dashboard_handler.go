package handlers

import (
	"community-watch/internal/core/services"
	"community-watch/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns report, officer and assignment totals
// @Summary Dashboard overview
// @Description Report counts by status, officer and assignment totals, and the latest reports
// @Tags Dashboard
// @Produce json
// @Security SessionCookie
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetDashboard(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Dashboard retrieved successfully", data)
}
