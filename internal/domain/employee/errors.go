package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeIDTaken   = errors.New("employee ID already exists")
	ErrEmployeeHasRecord = errors.New("employee has attendance records and cannot be deleted")
)
