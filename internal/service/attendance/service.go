package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	salaryLawRepo  salarylaw.SalaryLawRepository
	defaultLunch   string
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	salaryLawRepo salarylaw.SalaryLawRepository,
	defaultLunch string,
) attendance.AttendanceService {
	if defaultLunch == "" {
		defaultLunch = DefaultLunchDuration
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		salaryLawRepo:  salaryLawRepo,
		defaultLunch:   defaultLunch,
	}
}

// GetMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonth(ctx context.Context, employeeID string, year, month int) (attendance.MonthResponse, error) {
	if !validator.IsValidMonth(month) || !validator.IsValidPayrollYear(year) {
		return attendance.MonthResponse{}, attendance.ErrInvalidPeriod
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.MonthResponse{}, err
	}

	law, err := s.salaryLawRepo.GetByYear(ctx, year)
	if err != nil {
		return attendance.MonthResponse{}, fmt.Errorf("salary law for %d: %w", year, err)
	}

	agg, err := NewAggregator(law.WorkHoursPerDay, s.defaultLunch)
	if err != nil {
		return attendance.MonthResponse{}, err
	}

	stored, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return attendance.MonthResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	days, recorded := attendance.FillMonth(employeeID, year, month, utils.DaysInMonth(year, time.Month(month)), stored)

	resp := attendance.MonthResponse{
		EmployeeID:          employeeID,
		Year:                year,
		Month:               month,
		StandardHoursPerDay: law.WorkHoursPerDay,
		Days:                make([]attendance.DayResponse, 0, len(days)),
		Summary:             attendance.NewSummaryResponse(agg.Month(stored)),
	}
	for i, d := range days {
		h := agg.Day(d)
		dr := attendance.NewDayResponse(d, recorded[i])
		dr.WorkHours = &h.WorkHours
		dr.OvertimeHours = &h.OvertimeHours
		resp.Days = append(resp.Days, dr)
	}

	return resp, nil
}

// UpsertDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpsertDay(ctx context.Context, req attendance.UpsertDayRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.DayResponse{}, err
	}

	saved, err := s.attendanceRepo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	return attendance.NewDayResponse(saved, true), nil
}
