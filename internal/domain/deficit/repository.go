package deficit

import "context"

// DeficitRepository - interface for deficits table
type DeficitRepository interface {
	Create(ctx context.Context, d Deficit) (Deficit, error)
	GetByID(ctx context.Context, id string) (Deficit, error)
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]Deficit, error)
	// ListByPeriod returns the deficits of every employee for month/year
	ListByPeriod(ctx context.Context, month, year int) ([]Deficit, error)
	Delete(ctx context.Context, id string) error
}
