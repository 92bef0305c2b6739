package user

import "context"

type Service interface {
	List(ctx context.Context) ([]UserResponse, error)
	Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	Update(ctx context.Context, id string, req *UpdateUserRequest) (*UserResponse, error)
	// Delete refuses to remove the caller's own account.
	Delete(ctx context.Context, id, requesterID string) error
}
