package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/payslip"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	attendanceservice "github.com/cmlabs-hris/hris-payroll-go/internal/service/attendance"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	StandardDaysInMonth  int
	DefaultLunchDuration string
	BatchConcurrency     int
	CompanyName          string
}

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	salaryLawRepo  salarylaw.SalaryLawRepository
	attendanceRepo attendance.AttendanceRepository
	deficitRepo    deficit.DeficitRepository
	payrollRepo    payroll.PayrollRepository
	publisher      payroll.EventPublisher
	calculator     *Calculator
	cfg            Config
	now            func() time.Time
	newID          func() (uuid.UUID, error)
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	salaryLawRepo salarylaw.SalaryLawRepository,
	attendanceRepo attendance.AttendanceRepository,
	deficitRepo deficit.DeficitRepository,
	payrollRepo payroll.PayrollRepository,
	publisher payroll.EventPublisher,
	cfg Config,
	now func() time.Time,
) payroll.PayrollService {
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	if cfg.DefaultLunchDuration == "" {
		cfg.DefaultLunchDuration = attendanceservice.DefaultLunchDuration
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 1
	}
	if now == nil {
		now = time.Now
	}
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		salaryLawRepo:  salaryLawRepo,
		attendanceRepo: attendanceRepo,
		deficitRepo:    deficitRepo,
		payrollRepo:    payrollRepo,
		publisher:      publisher,
		calculator:     NewCalculator(cfg.StandardDaysInMonth),
		cfg:            cfg,
		now:            now,
		newID:          uuid.NewV7,
	}
}

// Compute implements payroll.PayrollService.
func (s *PayrollServiceImpl) Compute(ctx context.Context, employeeID string, month, year int) (payroll.Result, error) {
	req := payroll.ComputeRequest{Month: month, Year: year}
	if err := req.Validate(); err != nil {
		return payroll.Result{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.Result{}, err
	}

	law, err := s.lookupSalaryLaw(ctx, year)
	if err != nil {
		return payroll.Result{}, err
	}

	deficits, err := s.deficitRepo.ListByEmployeePeriod(ctx, emp.ID, month, year)
	if err != nil {
		return payroll.Result{}, fmt.Errorf("failed to list deficits: %w", err)
	}

	in, err := s.buildInput(ctx, emp, month, year, law, deficits)
	if err != nil {
		return payroll.Result{}, err
	}

	return s.calculator.Calculate(in)
}

// ComputeBatch implements payroll.PayrollService.
func (s *PayrollServiceImpl) ComputeBatch(ctx context.Context, req payroll.ComputeRequest) (payroll.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}

	employees, failures, err := s.resolveEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return payroll.BatchResult{}, err
	}

	law, err := s.lookupSalaryLaw(ctx, req.Year)
	if err != nil {
		return payroll.BatchResult{}, err
	}

	deficits, err := s.deficitRepo.ListByPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return payroll.BatchResult{}, fmt.Errorf("failed to list deficits: %w", err)
	}

	inputs := make([]payroll.Input, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			in, err := s.buildInput(gctx, emp, req.Month, req.Year, law, deficits)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}
			inputs[i] = in
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payroll.BatchResult{}, err
	}

	batch := s.calculator.CalculateBatch(inputs)
	batch.Failures = append(failures, batch.Failures...)
	for _, f := range batch.Failures {
		slog.Warn("Payroll computation failed", "employee_id", f.EmployeeID, "code", f.Code, "reason", f.Reason)
	}

	slog.Info("Payroll batch computed",
		"month", req.Month, "year", req.Year,
		"computed", len(batch.Results), "failed", len(batch.Failures))

	return batch, nil
}

// Approve implements payroll.PayrollService.
func (s *PayrollServiceImpl) Approve(ctx context.Context, results []payroll.Result) (payroll.ApprovalReport, error) {
	report := payroll.ApprovalReport{
		Approved: make([]payroll.Record, 0, len(results)),
		Failures: []payroll.Failure{},
	}

	for _, res := range results {
		id, err := s.newID()
		if err != nil {
			slog.Error("Failed to generate payroll record id", "employee_id", res.EmployeeID, "error", err)
			report.Failures = append(report.Failures, payroll.NewFailure(res.EmployeeID, payroll.FailurePersistence, fmt.Errorf("failed to generate record id: %w", err)))
			continue
		}

		record := payroll.Record{
			ID:         id.String(),
			Result:     res,
			Status:     payroll.RecordStatusApproved,
			ApprovedAt: s.now().UTC(),
		}

		saved, err := s.payrollRepo.Create(ctx, record)
		if err != nil {
			slog.Error("Failed to persist payroll record", "employee_id", res.EmployeeID, "month", res.Month, "year", res.Year, "error", err)
			report.Failures = append(report.Failures, payroll.NewFailure(res.EmployeeID, payroll.FailurePersistence, err))
			continue
		}
		report.Approved = append(report.Approved, saved)

		if err := s.publisher.PublishApproved(ctx, payroll.NewApprovedEvent(saved)); err != nil {
			slog.Warn("Failed to publish payroll approved event", "record_id", saved.ID, "employee_id", saved.EmployeeID, "error", err)
		}
	}

	return report, nil
}

// ApprovePeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ApprovePeriod(ctx context.Context, req payroll.ComputeRequest) (payroll.ApprovalReport, error) {
	batch, err := s.ComputeBatch(ctx, req)
	if err != nil {
		return payroll.ApprovalReport{}, err
	}

	report, err := s.Approve(ctx, batch.Results)
	if err != nil {
		return payroll.ApprovalReport{}, err
	}
	report.Failures = append(batch.Failures, report.Failures...)

	slog.Info("Payroll period approved",
		"month", req.Month, "year", req.Year,
		"approved", len(report.Approved), "failed", len(report.Failures))

	return report, nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.RecordFilter) ([]payroll.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	resp := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, payroll.NewRecordResponse(r))
	}
	return resp, nil
}

// GetRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	if validator.IsEmpty(id) {
		return payroll.RecordResponse{}, payroll.ErrPayrollRecordNotFound
	}
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return payroll.NewRecordResponse(record), nil
}

// RenderPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, id string) ([]byte, error) {
	if validator.IsEmpty(id) {
		return nil, payroll.ErrPayrollRecordNotFound
	}
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pdf, err := payslip.Render(s.cfg.CompanyName, record)
	if err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return pdf, nil
}

// GetSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.SummaryResponse, error) {
	batch, err := s.ComputeBatch(ctx, payroll.ComputeRequest{Month: month, Year: year})
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	return payroll.SummaryResponse{
		Month:    month,
		Year:     year,
		Totals:   payroll.SumResults(batch.Results),
		Failures: batch.Failures,
	}, nil
}

// lookupSalaryLaw returns nil without error when the year is not configured
func (s *PayrollServiceImpl) lookupSalaryLaw(ctx context.Context, year int) (*salarylaw.SalaryLaw, error) {
	law, err := s.salaryLawRepo.GetByYear(ctx, year)
	if errors.Is(err, salarylaw.ErrSalaryLawNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get salary law: %w", err)
	}
	return &law, nil
}

// resolveEmployees loads the requested employees, or all active ones when ids
// is empty. Unknown ids become failures instead of errors.
func (s *PayrollServiceImpl) resolveEmployees(ctx context.Context, ids []string) ([]employee.Employee, []payroll.Failure, error) {
	failures := []payroll.Failure{}

	if len(ids) == 0 {
		employees, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get employees: %w", err)
		}
		return employees, failures, nil
	}

	seen := make(map[string]bool, len(ids))
	employees := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		emp, err := s.employeeRepo.GetByID(ctx, id)
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			failures = append(failures, payroll.NewFailure(id, payroll.FailureEmployeeNotFound, err))
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get employee %s: %w", id, err)
		}
		employees = append(employees, emp)
	}
	return employees, failures, nil
}

// buildInput loads the attendance of one employee and assembles the calculator
// input. Without a salary law the attendance is left empty since the
// calculation reports the missing configuration anyway.
func (s *PayrollServiceImpl) buildInput(ctx context.Context, emp employee.Employee, month, year int, law *salarylaw.SalaryLaw, deficits []deficit.Deficit) (payroll.Input, error) {
	in := payroll.Input{
		Employee:  emp,
		Month:     month,
		Year:      year,
		SalaryLaw: law,
		Deficits:  deficits,
		AsOf:      s.now(),
	}
	if law == nil {
		return in, nil
	}

	agg, err := attendanceservice.NewAggregator(law.WorkHoursPerDay, s.cfg.DefaultLunchDuration)
	if err != nil {
		return payroll.Input{}, err
	}

	days, err := s.attendanceRepo.ListByEmployeeMonth(ctx, emp.ID, year, month)
	if err != nil {
		return payroll.Input{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	in.Attendance = agg.Month(days)

	return in, nil
}
