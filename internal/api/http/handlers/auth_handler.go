package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-profile-service/internal/api/dto"
	"github.com/spec-kit/shift-profile-service/internal/auth"
	"github.com/spec-kit/shift-profile-service/internal/service"
	apperrors "github.com/spec-kit/shift-profile-service/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Token handles POST /token. Credentials arrive form-encoded; the response
// carries a bearer token. Rejections never say whether the username exists.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	token, _, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return apperrors.NewUnauthorized("Incorrect username or password")
		}
		return apperrors.MapError(err)
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
