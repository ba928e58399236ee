package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shift-profile-service/internal/domain"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	var req UserCreateRequest
	payload := `{"username":"alice","email":"alice@example.com","salary":10,"next_promotion_date":"2025-12-12","password":"alice12345"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	assert.Equal(t, time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC), req.NextPromotionDate.Time)

	err := json.Unmarshal([]byte(`{"next_promotion_date":"12/12/2025"}`), &req)
	assert.Error(t, err)
}

func TestUserResponse_NeverCarriesPasswordHash(t *testing.T) {
	user := &domain.User{
		Username:          "alice",
		Email:             "alice@example.com",
		Salary:            10,
		NextPromotionDate: time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC),
		PasswordHash:      "$2a$10$secret",
	}

	payload, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "secret")
	assert.Contains(t, string(payload), `"next_promotion_date":"2025-12-12"`)
}

func TestProjectionResponses(t *testing.T) {
	user := &domain.User{
		Username:          "alice",
		Salary:            10,
		NextPromotionDate: time.Date(2025, time.December, 12, 0, 0, 0, 0, time.UTC),
	}

	salary, err := json.Marshal(NewUserSalaryResponse(user.SalaryView()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","salary":10}`, string(salary))

	promotion, err := json.Marshal(NewUserPromotionResponse(user.NextPromotionView()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","next_promotion_date":"2025-12-12"}`, string(promotion))
}
