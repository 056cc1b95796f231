package salarylaw

import (
	"testing"

	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() UpsertSalaryLawRequest {
	return UpsertSalaryLawRequest{
		Year:             2025,
		WorkHoursPerDay:  decimal.RequireFromString("7.33"),
		BaseSalary:       decimal.NewFromInt(5_000_000),
		HousingAllowance: decimal.NewFromInt(500_000),
		WorkerVoucher:    decimal.NewFromInt(300_000),
		TaxRate:          decimal.RequireFromString("0.10"),
		InsuranceRate:    decimal.RequireFromString("0.07"),
	}
}

func TestUpsertSalaryLawRequest_Validate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())

	bad := validRequest()
	bad.Year = 1999
	bad.WorkHoursPerDay = decimal.Zero
	bad.TaxRate = decimal.RequireFromString("1.5")
	bad.HousingAllowance = decimal.NewFromInt(-1)

	err := bad.Validate()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "year")
	assert.Contains(t, m, "work_hours_per_day")
	assert.Contains(t, m, "tax_rate")
	assert.Contains(t, m, "housing_allowance")
	assert.NotContains(t, m, "insurance_rate")
}

func TestUpsertSalaryLawRequest_ToEntity(t *testing.T) {
	req := validRequest()
	law := req.ToEntity()
	assert.True(t, law.IsActive)
	assert.True(t, law.MarriageAllowance.IsZero())

	m := decimal.NewFromInt(250_000)
	req.MarriageAllowance = &m
	assert.True(t, req.ToEntity().MarriageAllowance.Equal(m))
}
