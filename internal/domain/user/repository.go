package user

import (
	"context"
	"time"
)

type Repository interface {
	// GetByUsername returns (nil, nil) when no user matches.
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
}
