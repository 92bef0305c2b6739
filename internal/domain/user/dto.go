package user

import "github.com/shiftbase-io/timecard-backend-go/internal/pkg/validator"

type CreateUserRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	IsAdmin    bool    `json:"is_admin"`
	EmployeeID *string `json:"employee_id"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "Username is required"})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "Username must be 3-50 characters (letters, digits, '.', '_' or '-')"})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password is required"})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 8 characters"})
	}

	if r.EmployeeID != nil && !validator.IsValidEmployeeID(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID format is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	Password   *string `json:"password"`
	IsAdmin    *bool   `json:"is_admin"`
	EmployeeID *string `json:"employee_id"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 8 characters"})
	}

	if r.EmployeeID != nil && !validator.IsEmpty(*r.EmployeeID) && !validator.IsValidEmployeeID(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Employee ID format is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	IsAdmin    bool    `json:"is_admin"`
	EmployeeID *string `json:"employee_id"`
	LastLogin  *string `json:"last_login"`
}

func NewUserResponse(u *User) *UserResponse {
	resp := &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		IsAdmin:    u.IsAdmin,
		EmployeeID: u.EmployeeID,
	}
	if u.LastLogin != nil {
		s := u.LastLogin.Format("2006-01-02 15:04:05")
		resp.LastLogin = &s
	}
	return resp
}
