package dto

import (
	"fmt"
	"time"

	"github.com/spec-kit/shift-profile-service/internal/domain"
)

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}
	parsed, err := time.Parse(fmt.Sprintf("%q", dateLayout), raw)
	if err != nil {
		return fmt.Errorf("invalid date %s: expected %s", raw, dateLayout)
	}
	d.Time = parsed
	return nil
}

// LoginRequest carries the form-encoded credential pair for POST /token.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse is the successful login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserCreateRequest provisions a new identity.
type UserCreateRequest struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Salary            int64  `json:"salary"`
	NextPromotionDate Date   `json:"next_promotion_date"`
	Disabled          bool   `json:"disabled"`
	Password          string `json:"password"`
}

// UserResponse is the outward identity shape. The password hash is never part
// of any response type.
type UserResponse struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Salary            int64  `json:"salary"`
	NextPromotionDate Date   `json:"next_promotion_date"`
	Disabled          bool   `json:"disabled"`
}

// UserSalaryResponse is the salary projection payload.
type UserSalaryResponse struct {
	Username string `json:"username"`
	Salary   int64  `json:"salary"`
}

// UserPromotionResponse is the promotion-date projection payload.
type UserPromotionResponse struct {
	Username          string `json:"username"`
	NextPromotionDate Date   `json:"next_promotion_date"`
}

// NewUserResponse maps a domain user to its outward shape.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		Username:          u.Username,
		Email:             u.Email,
		Salary:            u.Salary,
		NextPromotionDate: Date{u.NextPromotionDate},
		Disabled:          u.Disabled,
	}
}

// NewUserSalaryResponse maps the salary projection.
func NewUserSalaryResponse(s domain.UserSalary) UserSalaryResponse {
	return UserSalaryResponse{Username: s.Username, Salary: s.Salary}
}

// NewUserPromotionResponse maps the promotion-date projection.
func NewUserPromotionResponse(p domain.UserNextPromotionDate) UserPromotionResponse {
	return UserPromotionResponse{
		Username:          p.Username,
		NextPromotionDate: Date{p.NextPromotionDate},
	}
}
