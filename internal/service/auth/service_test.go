package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/auth"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/user"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/jwt"
	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/ratelimit"
)

const (
	testSecret     = "test-secret-key"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users      map[string]*user.User
	lastLogins map[string]time.Time
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      make(map[string]*user.User),
		lastLogins: make(map[string]time.Time),
	}
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmployeeID(_ context.Context, employeeID string) (*user.User, error) {
	for _, u := range r.users {
		if u.EmployeeID != nil && *u.EmployeeID == employeeID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.lastLogins[id] = at
	return nil
}

func (r *fakeUserRepo) CountActiveSince(_ context.Context, since time.Time) (int, error) {
	count := 0
	for _, u := range r.users {
		if u.LastLogin != nil && u.LastLogin.After(since) {
			count++
		}
	}
	return count, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &user.User{
		ID:           "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func newTestService(t *testing.T) (auth.Service, *fakeUserRepo, jwt.Service) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	svc := NewAuthService(repo, jwtSvc, ratelimit.NewMemoryStore(), LockoutPolicy{
		Threshold: 3,
		Window:    15 * time.Minute,
	})
	return svc, repo, jwtSvc
}

func TestLoginSuccess(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "alice", "s3cretpass")

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Contains(t, repo.lastLogins, "user-alice")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "alice", "s3cretpass")

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "alice", "s3cretpass")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}

	// Even the correct password is rejected once the account is locked.
	_, err := svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "s3cretpass"})
	assert.ErrorIs(t, err, auth.ErrAccountLocked)
}

func TestLoginSuccessResetsFailureCounter(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "alice", "s3cretpass")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}

	_, err := svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	// Counter was reset, so two more failures do not lock.
	for i := 0; i < 2; i++ {
		_, err = svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}
	_, err = svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "s3cretpass"})
	assert.NoError(t, err)
}

// failingStore simulates a limiter backend outage.
type failingStore struct{}

func (failingStore) Incr(_ context.Context, _ string, _ time.Duration) (int, error) {
	return 0, errors.New("store unavailable")
}

func (failingStore) Count(_ context.Context, _ string, _ time.Duration) (int, error) {
	return 0, errors.New("store unavailable")
}

func (failingStore) Reset(_ context.Context, _ string) error {
	return errors.New("store unavailable")
}

func TestLoginFailsOpenOnLimiterOutage(t *testing.T) {
	repo := newFakeUserRepo()
	jwtSvc := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	svc := NewAuthService(repo, jwtSvc, failingStore{}, LockoutPolicy{Threshold: 3, Window: 15 * time.Minute})
	seedUser(t, repo, "alice", "s3cretpass")

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "alice", "s3cretpass")
	ctx := context.Background()

	login, err := svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, &auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// The old refresh token is revoked by rotation.
	_, err = svc.RefreshToken(ctx, &auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.RefreshToken(context.Background(), &auth.RefreshTokenRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "alice", "s3cretpass")
	ctx := context.Background()

	login, err := svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, &auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, repo, jwtSvc := newTestService(t)
	seedUser(t, repo, "alice", "s3cretpass")
	ctx := context.Background()

	login, err := svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "s3cretpass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.AccessToken))
	assert.True(t, jwtSvc.IsTokenRevoked(login.AccessToken))
}

func TestMe(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "alice", "s3cretpass")

	resp, err := svc.Me(context.Background(), "user-alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)

	_, err = svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	svc, repo, _ := newTestService(t)
	seedUser(t, repo, "alice", "s3cretpass")
	ctx := context.Background()

	err := svc.ChangePassword(ctx, "user-alice", &auth.ChangePasswordRequest{
		CurrentPassword: "wrongpass",
		NewPassword:     "brandnewpass",
	})
	assert.ErrorIs(t, err, auth.ErrWrongPassword)

	err = svc.ChangePassword(ctx, "user-alice", &auth.ChangePasswordRequest{
		CurrentPassword: "s3cretpass",
		NewPassword:     "brandnewpass",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &auth.LoginRequest{Username: "alice", Password: "brandnewpass"})
	assert.NoError(t, err)
}
