package employee

import "context"

type Service interface {
	Get(ctx context.Context, employeeID string) (*EmployeeResponse, error)
	List(ctx context.Context, filter ListFilter) ([]EmployeeResponse, error)
	Create(ctx context.Context, req *CreateEmployeeRequest) (*EmployeeResponse, error)
	Update(ctx context.Context, employeeID string, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	// UpdateProfile applies the self-service subset of Update.
	UpdateProfile(ctx context.Context, employeeID string, req *UpdateProfileRequest) (*EmployeeResponse, error)
	// Delete marks the employee inactive when attendance records exist,
	// and removes the row outright otherwise.
	Delete(ctx context.Context, employeeID string) error
	Departments(ctx context.Context) ([]string, error)
}
