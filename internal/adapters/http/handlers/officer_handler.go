package handlers

import (
	"community-watch/internal/adapters/http/middleware"
	"community-watch/internal/core/services"
	"community-watch/internal/pkg/pagination"
	"community-watch/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OfficerHandler handles police officer endpoints
type OfficerHandler struct {
	officerService *services.OfficerService
}

// NewOfficerHandler creates a new officer handler
func NewOfficerHandler(officerService *services.OfficerService) *OfficerHandler {
	return &OfficerHandler{officerService: officerService}
}

// List lists officers
// @Summary List officers
// @Tags Officers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /officers [get]
func (h *OfficerHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	officers, total, err := h.officerService.List(c.UserContext(), params)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Officers retrieved successfully", pagination.NewResponse(officers, params, total))
}

// Get gets an officer
// @Summary Get officer
// @Description Get an officer with their assignments
// @Tags Officers
// @Produce json
// @Param id path int true "Officer ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /officers/{id} [get]
func (h *OfficerHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	officer, err := h.officerService.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Officer retrieved successfully", officer)
}

// Create registers an officer
// @Summary Register officer
// @Description Public registration. Only an admin session may register an admin.
// @Tags Officers
// @Accept json
// @Produce json
// @Param body body services.CreateOfficerInput true "Officer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /officers [post]
func (h *OfficerHandler) Create(c *fiber.Ctx) error {
	var input services.CreateOfficerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	officer, err := h.officerService.Create(c.UserContext(), middleware.PrincipalFrom(c), &input)
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, "Officer registered successfully", officer)
}

// Update partially updates an officer
// @Summary Update officer
// @Description Officers may update themselves; admins may update anyone and change roles
// @Tags Officers
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Officer ID"
// @Param body body services.UpdateOfficerInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /officers/{id} [patch]
func (h *OfficerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input services.UpdateOfficerInput
	if _, err := decodePatch(c, services.OfficerUpdatableFields, nil, &input); err != nil {
		return handleError(c, err)
	}

	officer, err := h.officerService.Update(c.UserContext(), middleware.PrincipalFrom(c), id, &input)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Officer updated successfully", officer)
}

// Delete deletes an officer
// @Summary Delete officer
// @Description Admin only. Removes the officer's assignments and sessions as well.
// @Tags Officers
// @Produce json
// @Security SessionCookie
// @Param id path int true "Officer ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /officers/{id} [delete]
func (h *OfficerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.officerService.Delete(c.UserContext(), middleware.PrincipalFrom(c), id); err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Officer deleted successfully", nil)
}
