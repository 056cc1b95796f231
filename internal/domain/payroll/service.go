package payroll

import "context"

type PayrollService interface {
	Compute(ctx context.Context, employeeID string, month, year int) (Result, error)
	// ComputeBatch computes every listed employee, or all active ones when the list is empty.
	// Per-employee errors are reported as failures; only infrastructure errors abort the call.
	ComputeBatch(ctx context.Context, req ComputeRequest) (BatchResult, error)
	// Approve persists each result with an independent write
	Approve(ctx context.Context, results []Result) (ApprovalReport, error)
	ApprovePeriod(ctx context.Context, req ComputeRequest) (ApprovalReport, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)
	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	RenderPayslip(ctx context.Context, id string) ([]byte, error)
	GetSummary(ctx context.Context, month, year int) (SummaryResponse, error)
}
