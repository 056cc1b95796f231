package deficit

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryDeficitRepo struct {
	items map[string]deficit.Deficit
	seq   int
}

func (m *memoryDeficitRepo) Create(_ context.Context, d deficit.Deficit) (deficit.Deficit, error) {
	m.seq++
	d.ID = "def-" + decimal.NewFromInt(int64(m.seq)).String()
	d.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	m.items[d.ID] = d
	return d, nil
}

func (m *memoryDeficitRepo) GetByID(_ context.Context, id string) (deficit.Deficit, error) {
	d, ok := m.items[id]
	if !ok {
		return deficit.Deficit{}, deficit.ErrDeficitNotFound
	}
	return d, nil
}

func (m *memoryDeficitRepo) ListByEmployeePeriod(_ context.Context, employeeID string, month, year int) ([]deficit.Deficit, error) {
	var out []deficit.Deficit
	for _, d := range m.items {
		if d.Matches(employeeID, month, year) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memoryDeficitRepo) ListByPeriod(_ context.Context, month, year int) ([]deficit.Deficit, error) {
	var out []deficit.Deficit
	for _, d := range m.items {
		if d.Month == month && d.Year == year {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memoryDeficitRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return deficit.ErrDeficitNotFound
	}
	delete(m.items, id)
	return nil
}

type stubEmployeeRepo struct{}

func (stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id != "emp-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id}, nil
}

func (stubEmployeeRepo) GetActive(context.Context) ([]employee.Employee, error) { return nil, nil }

func TestDeficitService_Lifecycle(t *testing.T) {
	repo := &memoryDeficitRepo{items: map[string]deficit.Deficit{}}
	svc := NewDeficitService(repo, stubEmployeeRepo{})
	ctx := context.Background()

	created, err := svc.Create(ctx, deficit.CreateDeficitRequest{
		EmployeeID: "emp-1", Type: "advance", Amount: decimal.NewFromInt(200000), Day: 3, Month: 6, Year: 2025, Description: " salary advance ",
	})
	require.NoError(t, err)
	assert.Equal(t, "salary advance", created.Description)
	assert.Equal(t, "2025-06-01T00:00:00Z", created.CreatedAt)

	list, err := svc.ListByEmployeePeriod(ctx, deficit.DeficitFilter{EmployeeID: "emp-1", Month: 6, Year: 2025})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = svc.ListByEmployeePeriod(ctx, deficit.DeficitFilter{EmployeeID: "emp-1", Month: 7, Year: 2025})
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), deficit.ErrDeficitNotFound)
}

func TestDeficitService_CreateRejects(t *testing.T) {
	repo := &memoryDeficitRepo{items: map[string]deficit.Deficit{}}
	svc := NewDeficitService(repo, stubEmployeeRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, deficit.CreateDeficitRequest{EmployeeID: "emp-1", Type: "gift", Amount: decimal.NewFromInt(1), Day: 1, Month: 1, Year: 2025})
	assert.Error(t, err)

	_, err = svc.Create(ctx, deficit.CreateDeficitRequest{EmployeeID: "emp-9", Type: "loan", Amount: decimal.NewFromInt(1), Day: 1, Month: 1, Year: 2025})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, repo.items)

	_, err = svc.ListByEmployeePeriod(ctx, deficit.DeficitFilter{Month: 1, Year: 2025})
	assert.Error(t, err)
}
