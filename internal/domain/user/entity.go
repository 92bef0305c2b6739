package user

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsAdmin      bool
	EmployeeID   *string
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
