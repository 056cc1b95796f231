package deficit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/deficit"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
)

type DeficitServiceImpl struct {
	deficitRepo  deficit.DeficitRepository
	employeeRepo employee.EmployeeRepository
}

func NewDeficitService(deficitRepo deficit.DeficitRepository, employeeRepo employee.EmployeeRepository) deficit.DeficitService {
	return &DeficitServiceImpl{deficitRepo: deficitRepo, employeeRepo: employeeRepo}
}

// Create implements deficit.DeficitService.
func (s *DeficitServiceImpl) Create(ctx context.Context, req deficit.CreateDeficitRequest) (deficit.DeficitResponse, error) {
	if err := req.Validate(); err != nil {
		return deficit.DeficitResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return deficit.DeficitResponse{}, err
	}

	created, err := s.deficitRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return deficit.DeficitResponse{}, fmt.Errorf("failed to create deficit: %w", err)
	}

	slog.Info("Deficit recorded", "deficit_id", created.ID, "employee_id", created.EmployeeID, "type", created.Type, "month", created.Month, "year", created.Year)
	return deficit.NewDeficitResponse(created), nil
}

// ListByEmployeePeriod implements deficit.DeficitService.
func (s *DeficitServiceImpl) ListByEmployeePeriod(ctx context.Context, filter deficit.DeficitFilter) ([]deficit.DeficitResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, err := s.deficitRepo.ListByEmployeePeriod(ctx, filter.EmployeeID, filter.Month, filter.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list deficits: %w", err)
	}

	resp := make([]deficit.DeficitResponse, 0, len(items))
	for _, d := range items {
		resp = append(resp, deficit.NewDeficitResponse(d))
	}
	return resp, nil
}

// Delete implements deficit.DeficitService.
func (s *DeficitServiceImpl) Delete(ctx context.Context, id string) error {
	if validator.IsEmpty(id) {
		return deficit.ErrDeficitNotFound
	}
	if err := s.deficitRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Deficit deleted", "deficit_id", id)
	return nil
}
