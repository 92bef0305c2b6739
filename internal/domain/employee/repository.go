package employee

import "context"

type ListFilter struct {
	Search     string
	Department string
	Status     string
}

type Repository interface {
	// GetByEmployeeID returns (nil, nil) when no employee matches.
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, employeeID string) error
	Departments(ctx context.Context) ([]string, error)
}
