package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFillMonth(t *testing.T) {
	stored := []Day{
		{EmployeeID: "emp-1", Year: 2025, Month: 2, Day: 3, Status: StatusPresent, EntryTime: strPtr("08:00"), ExitTime: strPtr("17:00")},
		{EmployeeID: "emp-1", Year: 2025, Month: 2, Day: 10, Status: StatusLeave},
	}

	days, recorded := FillMonth("emp-1", 2025, 2, 28, stored)
	require.Len(t, days, 28)
	require.Len(t, recorded, 28)

	assert.Equal(t, StatusPresent, days[2].Status)
	assert.True(t, recorded[2])
	assert.Equal(t, StatusLeave, days[9].Status)
	assert.True(t, recorded[9])

	assert.Equal(t, StatusAbsent, days[0].Status)
	assert.False(t, recorded[0])
	assert.Nil(t, days[0].EntryTime)
	assert.Equal(t, 28, days[27].Day)
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("sick").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestUpsertDayRequest_Validate(t *testing.T) {
	req := UpsertDayRequest{EmployeeID: "emp-1", Year: 2024, Month: 2, Day: 29, Status: "present", EntryTime: strPtr("08:00"), ExitTime: strPtr("17:00")}
	assert.NoError(t, req.Validate())

	req.Year = 2025
	assert.Error(t, req.Validate(), "2025-02-29 does not exist")

	bad := UpsertDayRequest{EmployeeID: "emp-1", Year: 2025, Month: 13, Day: 1, Status: "sick", EntryTime: strPtr("8am")}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")
	assert.Contains(t, err.Error(), "status")
	assert.Contains(t, err.Error(), "entry_time")
}

func TestUpsertDayRequest_ToEntity(t *testing.T) {
	req := UpsertDayRequest{EmployeeID: "emp-1", Year: 2025, Month: 3, Day: 4, Status: "absent", EntryTime: strPtr("  "), ExitTime: strPtr(" 17:00 "), Description: " sick child "}
	d := req.ToEntity()
	assert.Nil(t, d.EntryTime)
	require.NotNil(t, d.ExitTime)
	assert.Equal(t, "17:00", *d.ExitTime)
	assert.Nil(t, d.LunchDuration)
	assert.Equal(t, "sick child", d.Description)
	assert.Equal(t, StatusAbsent, d.Status)
}
