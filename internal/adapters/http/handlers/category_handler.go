package handlers

import (
	"community-watch/internal/adapters/http/middleware"
	"community-watch/internal/core/services"
	"community-watch/internal/pkg/pagination"
	"community-watch/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles crime category endpoints
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List lists categories
// @Summary List crime categories
// @Tags Categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	categories, total, err := h.categoryService.List(c.UserContext(), params)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Categories retrieved successfully", pagination.NewResponse(categories, params, total))
}

// Get gets a category with its reports
// @Summary Get crime category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	category, err := h.categoryService.Get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Category retrieved successfully", category)
}

// Create creates a category
// @Summary Create crime category
// @Tags Categories
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param body body services.CreateCategoryInput true "Category data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var input services.CreateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	category, err := h.categoryService.Create(c.UserContext(), middleware.PrincipalFrom(c), &input)
	if err != nil {
		return handleError(c, err)
	}

	return response.Created(c, "Category created successfully", category)
}

// Update partially updates a category
// @Summary Update crime category
// @Tags Categories
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Category ID"
// @Param body body services.UpdateCategoryInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /categories/{id} [patch]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var input services.UpdateCategoryInput
	cleared, err := decodePatch(c, services.CategoryUpdatableFields, []string{"description", "severity_level"}, &input)
	if err != nil {
		return handleError(c, err)
	}
	input.ClearDescription = cleared["description"]
	input.ClearSeverityLevel = cleared["severity_level"]

	category, err := h.categoryService.Update(c.UserContext(), middleware.PrincipalFrom(c), id, &input)
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Category updated successfully", category)
}

// Delete deletes a category with its reports
// @Summary Delete crime category
// @Description Admin only. Deletes every report in the category and their assignments.
// @Tags Categories
// @Produce json
// @Security SessionCookie
// @Param id path int true "Category ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.categoryService.Delete(c.UserContext(), middleware.PrincipalFrom(c), id); err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Category deleted successfully", nil)
}
