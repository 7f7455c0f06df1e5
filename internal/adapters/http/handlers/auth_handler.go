package handlers

import (
	"strings"
	"time"

	"community-watch/internal/adapters/http/middleware"
	"community-watch/internal/config"
	"community-watch/internal/core/services"
	"community-watch/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles officer login
// @Summary Login officer
// @Description Verify email and password and open a session (HTTP-only cookie)
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Validate required fields
	if strings.TrimSpace(req.Email) == "" {
		return response.FieldError(c, response.CodeValidation, "email", "Email is required")
	}
	if req.Password == "" {
		return response.FieldError(c, response.CodeValidation, "password", "Password is required")
	}

	result, err := h.authService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	h.setSessionCookie(c, result.Token, result.ExpiresAt)

	return response.Success(c, "Login successful", fiber.Map{
		"officer":    result.Officer,
		"expires_at": result.ExpiresAt,
	})
}

// Logout handles officer logout
// @Summary Logout officer
// @Description Revoke the current session and clear the cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(c.UserContext(), middleware.SessionToken(c)); err != nil {
		return handleError(c, err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, "Logout successful", nil)
}

// Me returns the officer bound to the current session
// @Summary Get current officer
// @Description Get the officer of the current session with their assignments
// @Tags Auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	officer, err := h.authService.Me(c.UserContext(), middleware.PrincipalFrom(c))
	if err != nil {
		return handleError(c, err)
	}

	return response.Success(c, "Officer retrieved successfully", fiber.Map{
		"officer": officer,
	})
}

// setSessionCookie sets the session cookie
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     config.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   h.cfg.Session.Hours * 60 * 60, // Convert hours to seconds
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

// clearSessionCookie expires the session cookie
func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     config.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
