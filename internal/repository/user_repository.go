package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/shift-profile-service/internal/domain"
)

var (
	// ErrNotFound signals an absent record. Storage-level no-rows conditions
	// are translated here and never cross this boundary raw.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicate signals a username or email uniqueness violation.
	ErrDuplicate = errors.New("username or email already exists")
)

// UserRepository defines persistence access for identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// db is the subset of pgxpool.Pool the repository needs. Both *pgxpool.Pool
// and pgxmock pools satisfy it.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type userRepository struct {
	db db
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db db) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO user_account (username, email, salary, next_promotion_date, disabled, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Salary,
		user.NextPromotionDate,
		user.Disabled,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, username, email, salary, next_promotion_date, disabled, password_hash, created_at, updated_at
        FROM user_account WHERE id=$1`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, email, salary, next_promotion_date, disabled, password_hash, created_at, updated_at
        FROM user_account WHERE username=$1`

	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *userRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Salary,
		&user.NextPromotionDate,
		&user.Disabled,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
