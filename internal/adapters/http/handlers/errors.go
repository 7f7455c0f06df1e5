package handlers

import (
	"errors"
	"log"

	"community-watch/internal/core/domain"
	"community-watch/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// errInvalidBody marks a request body that could not be decoded
var errInvalidBody = errors.New("invalid request body")

// handleError maps service errors onto HTTP responses. Unknown errors are
// logged and surface as a generic 500.
func handleError(c *fiber.Ctx, err error) error {
	var (
		validationErr *domain.ValidationError
		uniqueErr     *domain.UniquenessError
	)

	switch {
	case errors.Is(err, errInvalidBody):
		return response.BadRequest(c, "Invalid request body")
	case errors.As(err, &validationErr):
		return response.FieldError(c, response.CodeValidation, validationErr.Field, validationErr.Message)
	case errors.As(err, &uniqueErr):
		return response.FieldError(c, response.CodeDuplicate, uniqueErr.Field, uniqueErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, response.CodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c, response.CodeUnauthenticated, "Login required")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "Admin access required")
	case errors.Is(err, domain.ErrCannotDeleteSelf):
		return response.BadRequest(c, "Cannot delete your own account")
	default:
		log.Printf("❌ %s %s failed: %v", c.Method(), c.Path(), err)
		return response.InternalServerError(c, "Internal server error")
	}
}

// parseID reads the :id path parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}
