package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrNotConfigured reports an operation against a missing backing store.
var ErrNotConfigured = errors.New("store not configured")

const userAccountDDL = `
CREATE TABLE IF NOT EXISTS user_account (
    id                  BIGSERIAL PRIMARY KEY,
    username            VARCHAR(50) NOT NULL UNIQUE,
    email               VARCHAR(50) NOT NULL UNIQUE,
    salary              BIGINT NOT NULL CHECK (salary >= 0),
    next_promotion_date DATE NOT NULL,
    disabled            BOOLEAN NOT NULL DEFAULT FALSE,
    password_hash       TEXT NOT NULL,
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// CreateSchema provisions the user_account table. The DDL is idempotent, so
// repeated provisioning calls succeed.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		return ErrNotConfigured
	}
	if _, err := pool.Exec(ctx, userAccountDDL); err != nil {
		return err
	}
	logger.Info("database schema created")
	return nil
}
