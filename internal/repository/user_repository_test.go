package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shift-profile-service/internal/domain"
)

func userColumns() []string {
	return []string{
		"id", "username", "email", "salary", "next_promotion_date",
		"disabled", "password_hash", "created_at", "updated_at",
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	now := time.Now().UTC()
	promotion := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantUser  bool
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(userColumns()).
					AddRow(int64(1), "alice", "alice@example.com", int64(10), promotion,
						false, "$2a$10$hash", now, now)
				mock.ExpectQuery(`FROM user_account WHERE username=`).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			wantUser: true,
		},
		{
			name: "no rows maps to ErrNotFound",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM user_account WHERE username=`).
					WithArgs("alice").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "infrastructure fault passes through",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM user_account WHERE username=`).
					WithArgs("alice").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository(mock)
			user, err := repo.GetByUsername(context.Background(), "alice")

			if tt.wantUser {
				require.NoError(t, err)
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, int64(10), user.Salary)
				assert.Equal(t, promotion, user.NextPromotionDate)
			} else {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NotErrorIs(t, err, ErrNotFound)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM user_account WHERE id=`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	now := time.Now().UTC()
	promotion := time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC)

	newUser := func() *domain.User {
		return &domain.User{
			Username:          "alice",
			Email:             "alice@example.com",
			Salary:            10,
			NextPromotionDate: promotion,
			PasswordHash:      "$2a$10$hash",
		}
	}

	t.Run("success fills generated fields", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO user_account`).
			WithArgs("alice", "alice@example.com", int64(10), promotion, false, "$2a$10$hash").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(1), now, now))

		user := newUser()
		repo := NewUserRepository(mock)
		require.NoError(t, repo.Create(context.Background(), user))
		assert.Equal(t, int64(1), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrDuplicate", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO user_account`).
			WithArgs("alice", "alice@example.com", int64(10), promotion, false, "$2a$10$hash").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		repo := NewUserRepository(mock)
		err = repo.Create(context.Background(), newUser())
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
