package leave

import "context"

type LeaveService interface {
	GetAccrual(ctx context.Context, employeeID string, year int) (AccrualResponse, error)
	// GetAccrualTotals returns every active employee's record plus the columnwise totals
	GetAccrualTotals(ctx context.Context, year int) (AccrualTotalsResponse, error)
	UpsertEntitlement(ctx context.Context, req UpsertEntitlementRequest) (EntitlementResponse, error)
}
