package leave

import (
	"fmt"

	"github.com/Knetic/govaluate"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(leave.MonthsPerYear)

// accrualScale is the number of decimal places of a monthly accrual
const accrualScale = 4

// FixedRatePolicy spreads the annual entitlement evenly over the twelve months.
// Each month accrues annual/12 rounded to accrualScale places and December takes
// the remainder, so the twelve values always sum to annual.
type FixedRatePolicy struct{}

func (FixedRatePolicy) MonthlyAccrual(annual decimal.Decimal) (leave.MonthlyValues, error) {
	var m leave.MonthlyValues
	perMonth := annual.DivRound(monthsPerYear, accrualScale)
	accrued := decimal.Zero
	for i := 0; i < leave.MonthsPerYear-1; i++ {
		m[i] = perMonth
		accrued = accrued.Add(perMonth)
	}
	m[leave.MonthsPerYear-1] = annual.Sub(accrued)
	return m, nil
}

// FormulaPolicy evaluates an expression once per month. The expression sees
// the variables "annual" (yearly entitlement) and "month" (1..12), e.g.
// "month <= 6 ? annual / 24 : annual / 8".
type FormulaPolicy struct {
	source string
	expr   *govaluate.EvaluableExpression
}

func NewFormulaPolicy(formula string) (*FormulaPolicy, error) {
	expr, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", leave.ErrInvalidFormula, err)
	}
	return &FormulaPolicy{source: formula, expr: expr}, nil
}

func (p *FormulaPolicy) MonthlyAccrual(annual decimal.Decimal) (leave.MonthlyValues, error) {
	var m leave.MonthlyValues
	annualF, _ := annual.Float64()

	for i := range m {
		result, err := p.expr.Evaluate(map[string]interface{}{
			"annual": annualF,
			"month":  float64(i + 1),
		})
		if err != nil {
			return leave.MonthlyValues{}, fmt.Errorf("%w: %q month %d: %v", leave.ErrInvalidFormula, p.source, i+1, err)
		}

		value, ok := result.(float64)
		if !ok {
			return leave.MonthlyValues{}, fmt.Errorf("%w: %q did not produce a number", leave.ErrInvalidFormula, p.source)
		}
		if value < 0 {
			return leave.MonthlyValues{}, fmt.Errorf("%w: %q produced %v for month %d", leave.ErrInvalidFormula, p.source, value, i+1)
		}
		m[i] = decimal.NewFromFloat(value)
	}
	return m, nil
}

// NewPolicy returns a FormulaPolicy when formula is set and FixedRatePolicy otherwise
func NewPolicy(formula string) (leave.AccrualPolicy, error) {
	if formula == "" {
		return FixedRatePolicy{}, nil
	}
	return NewFormulaPolicy(formula)
}
