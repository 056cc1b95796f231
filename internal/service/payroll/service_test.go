package payroll

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if f.err != nil {
		return employee.Employee{}, f.err
	}
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetActive(context.Context) ([]employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeSalaryLawRepo struct {
	laws map[int]salarylaw.SalaryLaw
}

func (f *fakeSalaryLawRepo) GetByYear(_ context.Context, year int) (salarylaw.SalaryLaw, error) {
	l, ok := f.laws[year]
	if !ok {
		return salarylaw.SalaryLaw{}, salarylaw.ErrSalaryLawNotFound
	}
	return l, nil
}

func (f *fakeSalaryLawRepo) List(context.Context) ([]salarylaw.SalaryLaw, error) { return nil, nil }

func (f *fakeSalaryLawRepo) Upsert(_ context.Context, l salarylaw.SalaryLaw) (salarylaw.SalaryLaw, error) {
	return l, nil
}

type fakeAttendanceRepo struct {
	days map[string][]attendance.Day
	err  error
}

func (f *fakeAttendanceRepo) ListByEmployeeMonth(_ context.Context, employeeID string, _, _ int) ([]attendance.Day, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.days[employeeID], nil
}

func (f *fakeAttendanceRepo) ListByEmployeeYear(context.Context, string, int) ([]attendance.Day, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, d attendance.Day) (attendance.Day, error) {
	return d, nil
}

type fakeDeficitRepo struct {
	items []deficit.Deficit
}

func (f *fakeDeficitRepo) Create(_ context.Context, d deficit.Deficit) (deficit.Deficit, error) {
	return d, nil
}

func (f *fakeDeficitRepo) GetByID(context.Context, string) (deficit.Deficit, error) {
	return deficit.Deficit{}, deficit.ErrDeficitNotFound
}

func (f *fakeDeficitRepo) ListByEmployeePeriod(_ context.Context, employeeID string, month, year int) ([]deficit.Deficit, error) {
	var out []deficit.Deficit
	for _, d := range f.items {
		if d.Matches(employeeID, month, year) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeficitRepo) ListByPeriod(_ context.Context, month, year int) ([]deficit.Deficit, error) {
	var out []deficit.Deficit
	for _, d := range f.items {
		if d.Month == month && d.Year == year {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDeficitRepo) Delete(context.Context, string) error { return nil }

type fakePayrollRepo struct {
	mu      sync.Mutex
	records map[string]payroll.Record
	failFor map[string]bool
}

func (f *fakePayrollRepo) Create(_ context.Context, r payroll.Record) (payroll.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[r.EmployeeID] {
		return payroll.Record{}, errors.New("unique violation")
	}
	r.CreatedAt = r.ApprovedAt
	f.records[r.ID] = r
	return r, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.Record, error) {
	r, ok := f.records[id]
	if !ok {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}
	return r, nil
}

func (f *fakePayrollRepo) List(_ context.Context, filter payroll.RecordFilter) ([]payroll.Record, error) {
	var out []payroll.Record
	for _, r := range f.records {
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []payroll.ApprovedEvent
	err    error
}

func (p *recordingPublisher) PublishApproved(_ context.Context, e payroll.ApprovedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

type fixture struct {
	employees  *fakeEmployeeRepo
	laws       *fakeSalaryLawRepo
	attendance *fakeAttendanceRepo
	deficits   *fakeDeficitRepo
	records    *fakePayrollRepo
	publisher  *recordingPublisher
	svc        payroll.PayrollService
}

func hired(id string) employee.Employee {
	return employee.Employee{ID: id, FullName: "Staff " + id, HireDate: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), IsActive: true}
}

func strPtr(s string) *string { return &s }

func newFixture() *fixture {
	future := hired("emp-future")
	future.HireDate = asOf.AddDate(0, 1, 0)

	f := &fixture{
		employees: &fakeEmployeeRepo{employees: []employee.Employee{hired("emp-1"), hired("emp-2"), hired("emp-3"), future}},
		laws:      &fakeSalaryLawRepo{laws: map[int]salarylaw.SalaryLaw{2025: *law2025()}},
		attendance: &fakeAttendanceRepo{days: map[string][]attendance.Day{
			"emp-1": {
				{EmployeeID: "emp-1", Year: 2025, Month: 6, Day: 2, Status: attendance.StatusPresent, EntryTime: strPtr("08:00"), ExitTime: strPtr("17:00")},
				{EmployeeID: "emp-1", Year: 2025, Month: 6, Day: 3, Status: attendance.StatusLeave},
			},
		}},
		deficits: &fakeDeficitRepo{items: []deficit.Deficit{
			{EmployeeID: "emp-2", Month: 6, Year: 2025, Amount: dec("200000"), Type: deficit.TypeAdvance},
		}},
		records:   &fakePayrollRepo{records: map[string]payroll.Record{}, failFor: map[string]bool{}},
		publisher: &recordingPublisher{},
	}
	f.svc = NewPayrollService(f.employees, f.laws, f.attendance, f.deficits, f.records, f.publisher,
		Config{StandardDaysInMonth: 30, BatchConcurrency: 2, CompanyName: "CMLabs"},
		func() time.Time { return asOf })
	return f
}

func TestPayrollService_Compute(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	res, err := f.svc.Compute(ctx, "emp-1", 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, 1, res.WorkingDays)
	assert.True(t, res.WorkHours.Equal(dec("8")))
	assert.True(t, res.OvertimeHours.Equal(dec("0.67")))
	assert.True(t, res.Earnings.OvertimePay.Equal(dec("16750")))
	assert.Equal(t, 1, res.StatusCounts[attendance.StatusLeave])
	assertBalanced(t, res)

	res, err = f.svc.Compute(ctx, "emp-2", 6, 2025)
	require.NoError(t, err)
	assert.True(t, res.NetPay.Equal(dec("4614000")), res.NetPay.String())

	_, err = f.svc.Compute(ctx, "emp-1", 6, 2030)
	assert.ErrorIs(t, err, salarylaw.ErrSalaryLawNotFound)

	_, err = f.svc.Compute(ctx, "emp-future", 6, 2025)
	assert.ErrorIs(t, err, employee.ErrHireDateInFuture)

	_, err = f.svc.Compute(ctx, "ghost", 6, 2025)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPayrollService_ComputeBatch(t *testing.T) {
	f := newFixture()

	batch, err := f.svc.ComputeBatch(context.Background(), payroll.ComputeRequest{Month: 6, Year: 2025})
	require.NoError(t, err)

	require.Len(t, batch.Results, 3)
	assert.Equal(t, "emp-1", batch.Results[0].EmployeeID)
	assert.Equal(t, "emp-2", batch.Results[1].EmployeeID)
	assert.Equal(t, "emp-3", batch.Results[2].EmployeeID)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, payroll.Failure{EmployeeID: "emp-future", Code: payroll.FailureInvalidDate, Reason: employee.ErrHireDateInFuture.Error()}, batch.Failures[0])
}

func TestPayrollService_ComputeBatchSelectedAndUnknown(t *testing.T) {
	f := newFixture()

	batch, err := f.svc.ComputeBatch(context.Background(), payroll.ComputeRequest{Month: 6, Year: 2025, EmployeeIDs: []string{"emp-3", "ghost", "emp-3"}})
	require.NoError(t, err)
	require.Len(t, batch.Results, 1)
	assert.Equal(t, "emp-3", batch.Results[0].EmployeeID)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, payroll.FailureEmployeeNotFound, batch.Failures[0].Code)
}

func TestPayrollService_ComputeBatchMissingConfiguration(t *testing.T) {
	f := newFixture()

	batch, err := f.svc.ComputeBatch(context.Background(), payroll.ComputeRequest{Month: 6, Year: 2026, EmployeeIDs: []string{"emp-1", "emp-2"}})
	require.NoError(t, err)
	assert.Empty(t, batch.Results)
	require.Len(t, batch.Failures, 2)
	for _, fl := range batch.Failures {
		assert.Equal(t, payroll.FailureConfigurationMissing, fl.Code)
	}
}

func TestPayrollService_ComputeBatchInfrastructureError(t *testing.T) {
	f := newFixture()
	f.attendance.err = errors.New("connection refused")

	_, err := f.svc.ComputeBatch(context.Background(), payroll.ComputeRequest{Month: 6, Year: 2025})
	assert.Error(t, err)

	_, err = f.svc.ComputeBatch(context.Background(), payroll.ComputeRequest{Month: 0, Year: 2025})
	assert.Error(t, err)
}

func TestPayrollService_ApprovePartialFailure(t *testing.T) {
	f := newFixture()
	f.records.failFor["emp-2"] = true
	f.publisher.err = errors.New("broker unavailable")
	ctx := context.Background()

	batch, err := f.svc.ComputeBatch(ctx, payroll.ComputeRequest{Month: 6, Year: 2025, EmployeeIDs: []string{"emp-1", "emp-2", "emp-3"}})
	require.NoError(t, err)

	report, err := f.svc.Approve(ctx, batch.Results)
	require.NoError(t, err)

	require.Len(t, report.Approved, 2)
	assert.Equal(t, "emp-1", report.Approved[0].EmployeeID)
	assert.Equal(t, "emp-3", report.Approved[1].EmployeeID)
	assert.Equal(t, payroll.RecordStatusApproved, report.Approved[0].Status)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "emp-2", report.Failures[0].EmployeeID)
	assert.Equal(t, payroll.FailurePersistence, report.Failures[0].Code)

	// publish errors are logged, never turned into failures
	assert.Len(t, f.publisher.events, 2)
	assert.Len(t, f.records.records, 2)
}

func TestPayrollService_ApproveContinuesAfterIDFailure(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	batch, err := f.svc.ComputeBatch(ctx, payroll.ComputeRequest{Month: 6, Year: 2025, EmployeeIDs: []string{"emp-1", "emp-2", "emp-3"}})
	require.NoError(t, err)

	calls := 0
	f.svc.(*PayrollServiceImpl).newID = func() (uuid.UUID, error) {
		calls++
		if calls == 2 {
			return uuid.Nil, errors.New("entropy exhausted")
		}
		return uuid.NewV7()
	}

	report, err := f.svc.Approve(ctx, batch.Results)
	require.NoError(t, err)

	require.Len(t, report.Approved, 2)
	assert.Equal(t, "emp-1", report.Approved[0].EmployeeID)
	assert.Equal(t, "emp-3", report.Approved[1].EmployeeID)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "emp-2", report.Failures[0].EmployeeID)
	assert.Equal(t, payroll.FailurePersistence, report.Failures[0].Code)
	assert.Contains(t, report.Failures[0].Reason, "entropy exhausted")
	assert.Len(t, f.records.records, 2)
}

func TestPayrollService_ApprovePeriod(t *testing.T) {
	f := newFixture()

	report, err := f.svc.ApprovePeriod(context.Background(), payroll.ComputeRequest{Month: 6, Year: 2025})
	require.NoError(t, err)
	assert.Len(t, report.Approved, 3)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "emp-future", report.Failures[0].EmployeeID)
	assert.Len(t, f.publisher.events, 3)

	records, err := f.svc.ListRecords(context.Background(), payroll.RecordFilter{EmployeeID: strPtr("emp-2")})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "approved", records[0].Status)
	assert.True(t, records[0].Deductions.Deficits.Equal(dec("200000")))

	got, err := f.svc.GetRecord(context.Background(), records[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "emp-2", got.EmployeeID)

	pdf, err := f.svc.RenderPayslip(context.Background(), records[0].ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	_, err = f.svc.GetRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
	_, err = f.svc.RenderPayslip(context.Background(), "")
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestPayrollService_GetSummary(t *testing.T) {
	f := newFixture()

	summary, err := f.svc.GetSummary(context.Background(), 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Totals.Employees)
	assert.True(t, summary.Totals.Deductions.Deficits.Equal(dec("200000")))
	assert.True(t, summary.Totals.NetPay.Equal(summary.Totals.TotalEarnings.Sub(summary.Totals.TotalDeductions)))
	assert.Len(t, summary.Failures, 1)
}
