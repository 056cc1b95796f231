package employee

import "context"

// EmployeeService exposes the staff directory together with derived work experience
type EmployeeService interface {
	ListActive(ctx context.Context) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
}
