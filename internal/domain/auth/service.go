package auth

import (
	"context"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/user"
)

type Service interface {
	// Login verifies credentials and issues a token pair. Accounts with
	// too many recent failed attempts are locked before the password is
	// even checked.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	RefreshToken(ctx context.Context, req *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID string) (*user.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *ChangePasswordRequest) error
}
