package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-profile-service/internal/api/dto"
	"github.com/spec-kit/shift-profile-service/internal/auth"
	"github.com/spec-kit/shift-profile-service/internal/domain"
	"github.com/spec-kit/shift-profile-service/internal/repository"
	"github.com/spec-kit/shift-profile-service/internal/service"
	apperrors "github.com/spec-kit/shift-profile-service/pkg/util"
)

// ProfileHandler exposes profile reads and user provisioning.
type ProfileHandler struct {
	auth  *service.AuthService
	users repository.UserRepository
}

// NewProfileHandler constructs handler.
func NewProfileHandler(authService *service.AuthService, users repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{auth: authService, users: users}
}

// Me handles GET /user/me.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Salary handles GET /salary/me.
func (h *ProfileHandler) Salary(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}
	return c.JSON(dto.NewUserSalaryResponse(user.SalaryView()))
}

// NextPromotion handles GET /promotion/me.
func (h *ProfileHandler) NextPromotion(c *fiber.Ctx) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}
	return c.JSON(dto.NewUserPromotionResponse(user.NextPromotionView()))
}

// ByID handles GET /user/:id, the unauthenticated legacy lookup.
func (h *ProfileHandler) ByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("id must be an integer", nil)
	}

	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("user", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Create handles POST /user/create.
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username, email, password required")
	}
	if req.Salary < 0 {
		return apperrors.NewValidationError("salary must be non-negative", nil)
	}
	if req.NextPromotionDate.IsZero() {
		return apperrors.NewValidationError("next_promotion_date required", nil)
	}

	user := &domain.User{
		Username:          req.Username,
		Email:             req.Email,
		Salary:            req.Salary,
		NextPromotionDate: req.NextPromotionDate.Time,
		Disabled:          req.Disabled,
	}

	if err := h.auth.RegisterUser(c.UserContext(), user, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.NewConflict("username or email already exists", nil)
		}
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(dto.NewUserResponse(user))
}
