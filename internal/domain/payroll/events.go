package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ApprovedEvent is published once per persisted payroll record
type ApprovedEvent struct {
	RecordID        string          `json:"record_id"`
	EmployeeID      string          `json:"employee_id"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	ApprovedAt      time.Time       `json:"approved_at"`
}

func NewApprovedEvent(r Record) ApprovedEvent {
	return ApprovedEvent{
		RecordID:        r.ID,
		EmployeeID:      r.EmployeeID,
		Month:           r.Month,
		Year:            r.Year,
		TotalEarnings:   r.TotalEarnings,
		TotalDeductions: r.TotalDeductions,
		NetPay:          r.NetPay,
		ApprovedAt:      r.ApprovedAt,
	}
}

type EventPublisher interface {
	PublishApproved(ctx context.Context, event ApprovedEvent) error
}
