package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	user.Repository
}

func NewUserService(userRepo user.Repository) user.Service {
	return &UserServiceImpl{Repository: userRepo}
}

// List implements user.Service.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *user.NewUserResponse(&users[i]))
	}
	return responses, nil
}

// Create implements user.Service.
func (s *UserServiceImpl) Create(ctx context.Context, req *user.CreateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &user.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
		EmployeeID:   req.EmployeeID,
	}
	if err := s.Repository.Create(ctx, u); err != nil {
		return nil, err
	}

	return user.NewUserResponse(u), nil
}

// Update implements user.Service.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req *user.UpdateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if req.IsAdmin != nil {
		u.IsAdmin = *req.IsAdmin
	}
	if req.EmployeeID != nil {
		u.EmployeeID = req.EmployeeID
	}

	if err := s.Repository.Update(ctx, u); err != nil {
		return nil, err
	}

	return user.NewUserResponse(u), nil
}

// Delete implements user.Service.
func (s *UserServiceImpl) Delete(ctx context.Context, id, requesterID string) error {
	if id == requesterID {
		return user.ErrCannotDeleteSelf
	}
	return s.Repository.Delete(ctx, id)
}
