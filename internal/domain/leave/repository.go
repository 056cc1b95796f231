package leave

import "context"

// EntitlementRepository - interface for leave_entitlements table
type EntitlementRepository interface {
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) (Entitlement, error)
	Upsert(ctx context.Context, entitlement Entitlement) (Entitlement, error)
}
