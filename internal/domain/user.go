package domain

import "time"

// User is the domain model for an identity with profile data. PasswordHash
// never leaves the server side; handlers build responses from projections.
type User struct {
	ID                int64
	Username          string
	Email             string
	Salary            int64
	NextPromotionDate time.Time
	Disabled          bool
	PasswordHash      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Active reports whether the account may hold a session.
func (u *User) Active() bool {
	return !u.Disabled
}

// UserSalary is the salary projection of a user.
type UserSalary struct {
	Username string
	Salary   int64
}

// UserNextPromotionDate is the promotion-date projection of a user.
type UserNextPromotionDate struct {
	Username          string
	NextPromotionDate time.Time
}

// SalaryView returns the salary projection.
func (u *User) SalaryView() UserSalary {
	return UserSalary{Username: u.Username, Salary: u.Salary}
}

// NextPromotionView returns the promotion-date projection.
func (u *User) NextPromotionView() UserNextPromotionDate {
	return UserNextPromotionDate{Username: u.Username, NextPromotionDate: u.NextPromotionDate}
}
