package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_SECRET_KEY", "test-secret")
	t.Setenv("AUTH_ALGORITHM", "HS256")
}

func TestLoad_MissingSecretKey(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "")
	t.Setenv("AUTH_ALGORITHM", "HS256")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SECRET_KEY")
}

func TestLoad_MissingAlgorithm(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "test-secret")
	t.Setenv("AUTH_ALGORITHM", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_ALGORITHM")
}

func TestLoad_UnsupportedAlgorithm(t *testing.T) {
	t.Setenv("AUTH_SECRET_KEY", "test-secret")
	t.Setenv("AUTH_ALGORITHM", "none")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_TokenTTL(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		want        int
		wantWarning bool
	}{
		{name: "absent uses default", value: "", want: DefaultAccessTokenTTLMinutes},
		{name: "valid value", value: "30", want: 30},
		{name: "unparseable falls back with warning", value: "soon", want: DefaultAccessTokenTTLMinutes, wantWarning: true},
		{name: "non-positive falls back with warning", value: "-5", want: DefaultAccessTokenTTLMinutes, wantWarning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", tt.value)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Auth.AccessTokenTTLMinutes)
			if tt.wantWarning {
				assert.NotEmpty(t, cfg.Warnings)
			} else {
				assert.Empty(t, cfg.Warnings)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shift-profile-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "logs", cfg.Logger.Dir)
	assert.Equal(t, 60, cfg.Redis.UserCacheTTLSec)
	assert.False(t, cfg.Postgres.AutoSchema)
}
