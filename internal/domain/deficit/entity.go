package deficit

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypePurchaseReimbursementDeduction Type = "purchase_reimbursement_deduction"
	TypePenalty                        Type = "penalty"
	TypeAdvance                        Type = "advance"
	TypeLoan                           Type = "loan"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePurchaseReimbursementDeduction, TypePenalty, TypeAdvance, TypeLoan:
		return true
	}
	return false
}

// Deficit is a deduction recorded against one employee's pay for a period
type Deficit struct {
	ID          string
	EmployeeID  string
	Type        Type
	Amount      decimal.Decimal
	Day         int
	Month       int
	Year        int
	Description string
	CreatedAt   time.Time
}

// Matches reports whether the deficit applies to the employee's payroll of month/year
func (d Deficit) Matches(employeeID string, month, year int) bool {
	return d.EmployeeID == employeeID && d.Month == month && d.Year == year
}
