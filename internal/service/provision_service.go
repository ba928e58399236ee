package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/shift-profile-service/internal/auth"
	"github.com/spec-kit/shift-profile-service/internal/domain"
	"github.com/spec-kit/shift-profile-service/internal/persistence"
	"github.com/spec-kit/shift-profile-service/internal/repository"
)

// ProvisionService covers schema creation and fixture loading, exposed as
// explicit operations rather than boot-time steps.
type ProvisionService struct {
	pool       *pgxpool.Pool
	users      repository.UserRepository
	bcryptCost int
	logger     *zap.Logger
}

// NewProvisionService builds the service.
func NewProvisionService(pool *pgxpool.Pool, users repository.UserRepository, bcryptCost int, logger *zap.Logger) *ProvisionService {
	return &ProvisionService{pool: pool, users: users, bcryptCost: bcryptCost, logger: logger}
}

// CreateSchema provisions the user_account table.
func (s *ProvisionService) CreateSchema(ctx context.Context) error {
	return persistence.CreateSchema(ctx, s.pool, s.logger)
}

// LoadFixtures seeds the test user. Reloading over existing data surfaces as
// repository.ErrDuplicate.
func (s *ProvisionService) LoadFixtures(ctx context.Context) error {
	hash, err := auth.HashPassword("alice12345", s.bcryptCost)
	if err != nil {
		return err
	}

	alice := &domain.User{
		Username:          "alice",
		Email:             "alice@example.com",
		Salary:            10,
		NextPromotionDate: time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC),
		Disabled:          false,
		PasswordHash:      hash,
	}

	if err := s.users.Create(ctx, alice); err != nil {
		return err
	}
	s.logger.Info("fixture user created", zap.String("username", alice.Username))
	return nil
}
