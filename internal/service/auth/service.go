package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/auth"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/user"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/jwt"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/ratelimit"
)

// LockoutPolicy caps failed login attempts per username.
type LockoutPolicy struct {
	Threshold int
	Window    time.Duration
}

type AuthServiceImpl struct {
	userRepo   user.Repository
	jwtService jwt.Service
	limiter    ratelimit.Store
	lockout    LockoutPolicy
}

func NewAuthService(
	userRepo user.Repository,
	jwtService jwt.Service,
	limiter ratelimit.Store,
	lockout LockoutPolicy,
) auth.Service {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		limiter:    limiter,
		lockout:    lockout,
	}
}

func failedLoginKey(username string) string {
	return "failed_login:" + username
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Lockout is checked before the password so a locked account leaks
	// nothing. Limiter outages fail open, same as the rate limit
	// middleware: a store failure must not take down login.
	failures, err := s.limiter.Count(ctx, failedLoginKey(req.Username), s.lockout.Window)
	if err != nil {
		slog.Warn("Failed to check login failures", "username", req.Username, "error", err)
		failures = 0
	}
	if failures >= s.lockout.Threshold {
		return nil, auth.ErrAccountLocked
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		s.recordFailure(ctx, req.Username)
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, req.Username)
		return nil, auth.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, failedLoginKey(req.Username)); err != nil {
		slog.Warn("Failed to reset login failure counter", "username", req.Username, "error", err)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, u.ID, now); err != nil {
		slog.Warn("Failed to record last login", "user_id", u.ID, "error", err)
	}
	u.LastLogin = &now

	accessToken, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.NewUserResponse(u),
	}, nil
}

func (s *AuthServiceImpl) recordFailure(ctx context.Context, username string) {
	if _, err := s.limiter.Incr(ctx, failedLoginKey(username), s.lockout.Window); err != nil {
		slog.Warn("Failed to record login failure", "username", username, "error", err)
	}
}

// RefreshToken implements auth.Service.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, req *auth.RefreshTokenRequest) (*auth.RefreshTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return nil, auth.ErrTokenRevoked
	}

	userID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	accessToken, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Rotate: the old refresh token cannot be replayed.
	s.jwtService.RevokeToken(req.RefreshToken)

	return &auth.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	s.jwtService.RevokeToken(token)
	return nil
}

// Me implements auth.Service.
func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.NewUserResponse(u), nil
}

// ChangePassword implements auth.Service.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req *auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHash = string(hash)
	return s.userRepo.Update(ctx, u)
}
