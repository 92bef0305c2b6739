package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/user"
)

func atoiOrDefault(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

var errMissingClaim = errors.New("required token claim is missing")

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errMissingClaim
	}
	return userID, nil
}

// employeeIDFromContext returns the employee linked to the caller's
// account. Accounts without a linked employee cannot use attendance
// endpoints.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", user.ErrEmployeeNotLinked
	}
	return employeeID, nil
}
