package employee

import (
	"context"
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/domain/attendance"
	"github.com/shiftbase-io/timecard-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.Repository
	timeRecordRepo attendance.TimeRecordRepository
}

func NewEmployeeService(employeeRepo employee.Repository, timeRecordRepo attendance.TimeRecordRepository) employee.Service {
	return &EmployeeServiceImpl{
		Repository:     employeeRepo,
		timeRecordRepo: timeRecordRepo,
	}
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (*employee.EmployeeResponse, error) {
	e, err := s.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, employee.ErrEmployeeNotFound
	}
	return employee.NewEmployeeResponse(e), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, *employee.NewEmployeeResponse(&employees[i]))
	}
	return responses, nil
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, employee.ErrEmployeeIDTaken
	}

	status := req.Status
	if status == "" {
		status = employee.StatusActive
	}

	e := &employee.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Position:   req.Position,
		Phone:      req.Phone,
		JoinDate:   parseDatePtr(req.JoinDate),
		Status:     status,
	}
	if err := s.Repository.Create(ctx, e); err != nil {
		return nil, err
	}

	return employee.NewEmployeeResponse(e), nil
}

// Update implements employee.Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, employeeID string, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, employee.ErrEmployeeNotFound
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = req.Email
	}
	if req.Department != nil {
		e.Department = req.Department
	}
	if req.Position != nil {
		e.Position = req.Position
	}
	if req.Phone != nil {
		e.Phone = req.Phone
	}
	if req.JoinDate != nil {
		e.JoinDate = parseDatePtr(req.JoinDate)
	}
	if req.Status != nil {
		e.Status = *req.Status
	}

	if err := s.Repository.Update(ctx, e); err != nil {
		return nil, err
	}

	return employee.NewEmployeeResponse(e), nil
}

// UpdateProfile implements employee.Service.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, employeeID string, req *employee.UpdateProfileRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, employee.ErrEmployeeNotFound
	}

	if req.Email != nil {
		e.Email = req.Email
	}
	if req.Phone != nil {
		e.Phone = req.Phone
	}

	if err := s.Repository.Update(ctx, e); err != nil {
		return nil, err
	}

	return employee.NewEmployeeResponse(e), nil
}

// Delete implements employee.Service. Employees with attendance history
// are deactivated instead of removed so their records stay reportable.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	e, err := s.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if e == nil {
		return employee.ErrEmployeeNotFound
	}

	records, err := s.timeRecordRepo.GetRecent(ctx, employeeID, 1)
	if err != nil {
		return err
	}
	if len(records) > 0 {
		e.Status = employee.StatusInactive
		return s.Repository.Update(ctx, e)
	}

	return s.Repository.Delete(ctx, employeeID)
}

// Departments implements employee.Service.
func (s *EmployeeServiceImpl) Departments(ctx context.Context) ([]string, error) {
	return s.Repository.Departments(ctx)
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
