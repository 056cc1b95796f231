package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// accrualConcurrency bounds the per-employee lookups of GetAccrualTotals
const accrualConcurrency = 4

type LeaveServiceImpl struct {
	entitlementRepo    leave.EntitlementRepository
	attendanceRepo     attendance.AttendanceRepository
	employeeRepo       employee.EmployeeRepository
	engine             *Engine
	defaultEntitlement decimal.Decimal
}

func NewLeaveService(
	entitlementRepo leave.EntitlementRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	engine *Engine,
	defaultEntitlement decimal.Decimal,
) leave.LeaveService {
	return &LeaveServiceImpl{
		entitlementRepo:    entitlementRepo,
		attendanceRepo:     attendanceRepo,
		employeeRepo:       employeeRepo,
		engine:             engine,
		defaultEntitlement: defaultEntitlement,
	}
}

// GetAccrual implements leave.LeaveService.
func (s *LeaveServiceImpl) GetAccrual(ctx context.Context, employeeID string, year int) (leave.AccrualResponse, error) {
	if !validator.IsValidPayrollYear(year) {
		return leave.AccrualResponse{}, validator.ValidationErrors{{Field: "year", Message: "must be between 2000 and 2100"}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.AccrualResponse{}, err
	}

	rec, err := s.accrual(ctx, emp.ID, year)
	if err != nil {
		return leave.AccrualResponse{}, err
	}
	return leave.NewAccrualResponse(rec, emp.FullName), nil
}

// GetAccrualTotals implements leave.LeaveService.
func (s *LeaveServiceImpl) GetAccrualTotals(ctx context.Context, year int) (leave.AccrualTotalsResponse, error) {
	if !validator.IsValidPayrollYear(year) {
		return leave.AccrualTotalsResponse{}, validator.ValidationErrors{{Field: "year", Message: "must be between 2000 and 2100"}}
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return leave.AccrualTotalsResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	records := make([]leave.AccrualRecord, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(accrualConcurrency)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			rec, err := s.accrual(gctx, emp.ID, year)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return leave.AccrualTotalsResponse{}, err
	}

	resp := leave.AccrualTotalsResponse{Year: year, Records: make([]leave.AccrualResponse, 0, len(employees))}
	for i, emp := range employees {
		resp.Records = append(resp.Records, leave.NewAccrualResponse(records[i], emp.FullName))
	}
	resp.Totals = leave.NewAccrualResponse(SumRecords(year, records), "")

	return resp, nil
}

// UpsertEntitlement implements leave.LeaveService.
func (s *LeaveServiceImpl) UpsertEntitlement(ctx context.Context, req leave.UpsertEntitlementRequest) (leave.EntitlementResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.EntitlementResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.EntitlementResponse{}, err
	}

	saved, err := s.entitlementRepo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return leave.EntitlementResponse{}, fmt.Errorf("failed to save leave entitlement: %w", err)
	}
	return leave.NewEntitlementResponse(saved), nil
}

func (s *LeaveServiceImpl) accrual(ctx context.Context, employeeID string, year int) (leave.AccrualRecord, error) {
	entitlement, err := s.entitlementRepo.GetByEmployeeYear(ctx, employeeID, year)
	if errors.Is(err, leave.ErrEntitlementNotFound) {
		entitlement = leave.Entitlement{EmployeeID: employeeID, Year: year, AnnualLeaveEntitlement: s.defaultEntitlement}
	} else if err != nil {
		return leave.AccrualRecord{}, fmt.Errorf("failed to get leave entitlement: %w", err)
	}

	days, err := s.attendanceRepo.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return leave.AccrualRecord{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return s.engine.Compute(entitlement, UsedLeave(days))
}
