package payroll

import "context"

// PayrollRepository - interface for payroll_records table
type PayrollRepository interface {
	// Create inserts one approved record. Repeated approval of the same employee and period inserts again.
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, error)
}
