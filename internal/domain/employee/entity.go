package employee

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID         string
	EmployeeID string
	Name       string
	Email      *string
	Department *string
	Position   *string
	Phone      *string
	JoinDate   *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
