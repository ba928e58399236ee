package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-profile-service/internal/domain"
	apperrors "github.com/spec-kit/shift-profile-service/pkg/util"
)

const principalKey = "auth_principal"

// Authorizer validates a bearer token and resolves it to an active identity.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*domain.User, error)
}

// Middleware enforces bearer authentication for protected routes.
type Middleware struct {
	authorizer Authorizer
}

// NewMiddleware constructs middleware around the given authorizer.
func NewMiddleware(authorizer Authorizer) *Middleware {
	return &Middleware{authorizer: authorizer}
}

// Handle extracts the bearer token, authorizes it and stores the resolved
// user for downstream handlers. A missing or malformed header gets the same
// generic rejection as an invalid token.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("Could not validate credentials")
	}

	user, err := m.authorizer.Authorize(c.UserContext(), parts[1])
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			return apperrors.NewUnauthorized("Could not validate credentials")
		case errors.Is(err, ErrInactiveUser):
			return apperrors.NewInactiveAccount()
		default:
			return apperrors.MapError(err)
		}
	}

	c.Locals(principalKey, user)
	return c.Next()
}

// CurrentUser retrieves the authenticated identity set by Handle.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
