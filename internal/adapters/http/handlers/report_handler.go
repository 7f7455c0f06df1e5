package handlers

import (
	"community-watch/internal/adapters/http/middleware"
	"community-watch/internal/core/services"
	"community-watch/internal/pkg/pagination"
	"community-watch/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles crime report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// List lists reports
// @Summary List crime reports
// @Description Newest first, optionally filtered by status and category
// @Tags Reports
// @Produce json
// @Param status query string false "open, closed or pending"
// @Param category_id query int false "Crime category ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	categoryID := c.QueryInt("category_id", 0)
	if categoryID < 0 {
		categoryID = 0
	}
	input := services.ListReportsInput{
		Status:     c.Query("status"),
		CategoryID: uint(categoryID),
	}

	reports, total, err := h.reportService.List(c.UserContext(), input, params)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Reports retrieved successfully", pagination.NewResponse(reports, params, total))
}

// Get gets a report
// @Summary Get crime report
// @Description Get a report with its category and assigned officers
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	report, err := h.reportService.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Report retrieved successfully", report)
}

// Create files a report
// @Summary File crime report
// @Description Status defaults to open when omitted
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param body body services.CreateReportInput true "Report data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var input services.CreateReportInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	report, err := h.reportService.Create(c.UserContext(), middleware.PrincipalFrom(c), &input)
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, "Report created successfully", report)
}

// Update partially updates a report
// @Summary Update crime report
// @Tags Reports
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Report ID"
// @Param body body services.UpdateReportInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id} [patch]
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input services.UpdateReportInput
	cleared, err := decodePatch(c, services.ReportUpdatableFields, []string{"priority"}, &input)
	if err != nil {
		return handleError(c, err)
	}
	input.ClearPriority = cleared["priority"]

	report, err := h.reportService.Update(c.UserContext(), middleware.PrincipalFrom(c), id, &input)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Report updated successfully", report)
}

// Delete deletes a report
// @Summary Delete crime report
// @Tags Reports
// @Produce json
// @Security SessionCookie
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.reportService.Delete(c.UserContext(), middleware.PrincipalFrom(c), id); err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Report deleted successfully", nil)
}
