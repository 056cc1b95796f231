package employee

import (
	"errors"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

// Employee is the staff profile read by the payroll core. It is maintained
// by HR administration and never written by this service.
type Employee struct {
	ID              string
	EmployeeCode    string
	FullName        string
	Position        string
	HireDate        time.Time
	ContractEndDate *time.Time
	BaseSalary      *decimal.Decimal // overrides the salary law base salary when set
	HourlyWage      *decimal.Decimal // overrides the salary law overtime rate when set
	IsActive        bool
	IsMarried       bool
	ChildrenCount   int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Tenure returns the work experience of the employee as of asOf.
func (e Employee) Tenure(asOf time.Time) (utils.Tenure, error) {
	t, err := utils.CalculateTenure(e.HireDate, asOf)
	if errors.Is(err, utils.ErrFutureDate) {
		return utils.Tenure{}, ErrHireDateInFuture
	}
	return t, err
}
