package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-profile-service/internal/repository"
	"github.com/spec-kit/shift-profile-service/internal/service"
	apperrors "github.com/spec-kit/shift-profile-service/pkg/util"
)

// ProvisionHandler exposes schema and fixture provisioning utilities.
type ProvisionHandler struct {
	provision *service.ProvisionService
}

// NewProvisionHandler constructs handler.
func NewProvisionHandler(provision *service.ProvisionService) *ProvisionHandler {
	return &ProvisionHandler{provision: provision}
}

// CreateSchema handles GET /create_schema.
func (h *ProvisionHandler) CreateSchema(c *fiber.Ctx) error {
	if err := h.provision.CreateSchema(c.UserContext()); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusCreated)
}

// LoadData handles GET /load_data.
func (h *ProvisionHandler) LoadData(c *fiber.Ctx) error {
	if err := h.provision.LoadFixtures(c.UserContext()); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return apperrors.NewConflict("username or email already exists", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusCreated)
}
