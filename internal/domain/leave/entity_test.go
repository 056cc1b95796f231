package leave

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyValues_ValueScan(t *testing.T) {
	var in MonthlyValues
	for i := range in {
		in[i] = decimal.NewFromInt(int64(i))
	}
	in[11] = decimal.RequireFromString("1.5")

	v, err := in.Value()
	require.NoError(t, err)

	var out MonthlyValues
	require.NoError(t, out.Scan(v))
	assert.True(t, out[11].Equal(decimal.RequireFromString("1.5")))
	assert.True(t, out[3].Equal(decimal.NewFromInt(3)))

	assert.Error(t, out.Scan(42))
}

func TestMonthlyValues_Sum(t *testing.T) {
	var m MonthlyValues
	for i := range m {
		m[i] = decimal.RequireFromString("0.1")
	}
	assert.True(t, m.Sum().Equal(decimal.RequireFromString("1.2")))
}

func TestUpsertEntitlementRequest_Validate(t *testing.T) {
	req := UpsertEntitlementRequest{EmployeeID: "emp-1", Year: 2025, AnnualLeaveEntitlement: decimal.NewFromInt(12)}
	assert.NoError(t, req.Validate())
	assert.Nil(t, req.ToEntity().LeavePerMonth)

	req.LeavePerMonth = []decimal.Decimal{decimal.NewFromInt(1)}
	assert.Error(t, req.Validate())

	req.LeavePerMonth = make([]decimal.Decimal, MonthsPerYear)
	req.LeavePerMonth[0] = decimal.NewFromInt(2)
	assert.NoError(t, req.Validate())
	e := req.ToEntity()
	require.NotNil(t, e.LeavePerMonth)
	assert.True(t, e.LeavePerMonth[0].Equal(decimal.NewFromInt(2)))

	req.AnnualLeaveEntitlement = decimal.NewFromInt(-1)
	assert.Error(t, req.Validate())
}
