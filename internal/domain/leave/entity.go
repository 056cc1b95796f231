package leave

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const MonthsPerYear = 12

// MonthlyValues holds one value per calendar month, index 0 being January
type MonthlyValues [MonthsPerYear]decimal.Decimal

// Sum adds the twelve months without intermediate rounding
func (m MonthlyValues) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}

// Value implements driver.Valuer for the jsonb leave_per_month column
func (m *MonthlyValues) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for the jsonb leave_per_month column
func (m *MonthlyValues) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("failed to scan MonthlyValues: invalid type")
	}

	return json.Unmarshal(b, m)
}

// Entitlement is the configured leave allowance of one employee for one year.
// LeavePerMonth, when set, replaces the policy-derived monthly accrual.
type Entitlement struct {
	EmployeeID             string
	Year                   int
	AnnualLeaveEntitlement decimal.Decimal
	LeavePerMonth          *MonthlyValues
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// AccrualRecord is the monthly entitlement/usage bookkeeping of one employee for one year.
// RemainingLeavePerMonth is LeavePerMonth minus UsedLeavePerMonth and may be negative.
type AccrualRecord struct {
	EmployeeID             string
	Year                   int
	AnnualLeaveEntitlement decimal.Decimal
	LeavePerMonth          MonthlyValues
	UsedLeavePerMonth      MonthlyValues
	RemainingLeavePerMonth MonthlyValues
	TotalUsedLeave         decimal.Decimal
	TotalRemainingLeave    decimal.Decimal
}

// AccrualPolicy derives the monthly entitlement from the annual one
type AccrualPolicy interface {
	MonthlyAccrual(annual decimal.Decimal) (MonthlyValues, error)
}
