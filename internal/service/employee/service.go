package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, now func() time.Time) employee.EmployeeService {
	if now == nil {
		now = time.Now
	}
	return &EmployeeServiceImpl{employeeRepo: employeeRepo, now: now}
}

// ListActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	asOf := s.now()
	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, toResponse(e, asOf))
	}
	return resp, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e, s.now()), nil
}

func toResponse(e employee.Employee, asOf time.Time) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FullName:       e.FullName,
		Position:       e.Position,
		HireDate:       e.HireDate.Format(time.DateOnly),
		BaseSalary:     e.BaseSalary,
		HourlyWage:     e.HourlyWage,
		IsActive:       e.IsActive,
		IsMarried:      e.IsMarried,
		ChildrenCount:  e.ChildrenCount,
		WorkExperience: workExperience(e, asOf),
	}
	if e.ContractEndDate != nil {
		end := e.ContractEndDate.Format(time.DateOnly)
		resp.ContractEndDate = &end
	}
	return resp
}

func workExperience(e employee.Employee, asOf time.Time) employee.WorkExperience {
	t, err := e.Tenure(asOf)
	if err != nil {
		reason := err.Error()
		if !errors.Is(err, employee.ErrHireDateInFuture) {
			reason = "tenure could not be computed"
		}
		return employee.WorkExperience{Valid: false, Reason: reason}
	}
	return employee.WorkExperience{Valid: true, Years: t.Years, Months: t.Months, Days: t.Days}
}
