package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrAccountLocked       = errors.New("account temporarily locked due to repeated failed logins")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrTokenRevoked        = errors.New("token has been revoked")
	ErrWrongPassword       = errors.New("current password is incorrect")
)
