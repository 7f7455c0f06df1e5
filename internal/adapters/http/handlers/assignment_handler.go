package handlers

import (
	"community-watch/internal/adapters/http/middleware"
	"community-watch/internal/core/services"
	"community-watch/internal/pkg/pagination"
	"community-watch/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AssignmentHandler handles officer assignment endpoints
type AssignmentHandler struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// List lists assignments
// @Summary List assignments
// @Tags Assignments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	assignments, total, err := h.assignmentService.List(c.UserContext(), params)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Assignments retrieved successfully", pagination.NewResponse(assignments, params, total))
}

// Get gets an assignment
// @Summary Get assignment
// @Tags Assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	assignment, err := h.assignmentService.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Assignment retrieved successfully", assignment)
}

// Create assigns an officer to a report
// @Summary Create assignment
// @Description Admin only
// @Tags Assignments
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param body body services.CreateAssignmentInput true "Assignment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var input services.CreateAssignmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	assignment, err := h.assignmentService.Create(c.UserContext(), middleware.PrincipalFrom(c), &input)
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, "Assignment created successfully", assignment)
}

// Update partially updates an assignment
// @Summary Update assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Assignment ID"
// @Param body body services.UpdateAssignmentInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /assignments/{id} [patch]
func (h *AssignmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input services.UpdateAssignmentInput
	if _, err := decodePatch(c, services.AssignmentUpdatableFields, nil, &input); err != nil {
		return handleError(c, err)
	}

	assignment, err := h.assignmentService.Update(c.UserContext(), middleware.PrincipalFrom(c), id, &input)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Assignment updated successfully", assignment)
}

// Delete deletes an assignment
// @Summary Delete assignment
// @Tags Assignments
// @Produce json
// @Security SessionCookie
// @Param id path int true "Assignment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.assignmentService.Delete(c.UserContext(), middleware.PrincipalFrom(c), id); err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Assignment deleted successfully", nil)
}
