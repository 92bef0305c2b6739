package employee

import (
	"time"

	"github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
	JoinDate   *string `json:"join_date"`
	Status     string  `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID is required"})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID format is invalid"})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email format is invalid"})
	}

	if r.JoinDate != nil && !validator.IsEmpty(*r.JoinDate) {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "Join date must be in YYYY-MM-DD format"})
		}
	}

	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, []string{StatusActive, StatusInactive}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be either active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
	JoinDate   *string `json:"join_date"`
	Status     *string `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name cannot be empty"})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email format is invalid"})
	}

	if r.JoinDate != nil && !validator.IsEmpty(*r.JoinDate) {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "Join date must be in YYYY-MM-DD format"})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{StatusActive, StatusInactive}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be either active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileRequest is the slice of the employee record a
// non-admin user may change about themselves.
type UpdateProfileRequest struct {
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email format is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
	JoinDate   *string `json:"join_date"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

func NewEmployeeResponse(e *Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Position:   e.Position,
		Phone:      e.Phone,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
	if e.JoinDate != nil {
		s := e.JoinDate.Format("2006-01-02")
		resp.JoinDate = &s
	}
	return resp
}
