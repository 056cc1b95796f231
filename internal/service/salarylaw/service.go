package salarylaw

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/validator"
)

type SalaryLawServiceImpl struct {
	salaryLawRepo salarylaw.SalaryLawRepository
}

func NewSalaryLawService(salaryLawRepo salarylaw.SalaryLawRepository) salarylaw.SalaryLawService {
	return &SalaryLawServiceImpl{salaryLawRepo: salaryLawRepo}
}

// GetSalaryLaw implements salarylaw.SalaryLawService.
func (s *SalaryLawServiceImpl) GetSalaryLaw(ctx context.Context, year int) (salarylaw.SalaryLawResponse, error) {
	if !validator.IsValidPayrollYear(year) {
		return salarylaw.SalaryLawResponse{}, salarylaw.ErrInvalidYear
	}

	law, err := s.salaryLawRepo.GetByYear(ctx, year)
	if err != nil {
		return salarylaw.SalaryLawResponse{}, err
	}
	return salarylaw.NewSalaryLawResponse(law), nil
}

// ListSalaryLaws implements salarylaw.SalaryLawService.
func (s *SalaryLawServiceImpl) ListSalaryLaws(ctx context.Context) ([]salarylaw.SalaryLawResponse, error) {
	laws, err := s.salaryLawRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary laws: %w", err)
	}

	resp := make([]salarylaw.SalaryLawResponse, 0, len(laws))
	for _, l := range laws {
		resp = append(resp, salarylaw.NewSalaryLawResponse(l))
	}
	return resp, nil
}

// UpsertSalaryLaw implements salarylaw.SalaryLawService.
func (s *SalaryLawServiceImpl) UpsertSalaryLaw(ctx context.Context, req salarylaw.UpsertSalaryLawRequest) (salarylaw.SalaryLawResponse, error) {
	if err := req.Validate(); err != nil {
		return salarylaw.SalaryLawResponse{}, err
	}

	saved, err := s.salaryLawRepo.Upsert(ctx, req.ToEntity())
	if err != nil {
		return salarylaw.SalaryLawResponse{}, fmt.Errorf("failed to save salary law: %w", err)
	}

	slog.Info("Salary law updated", "year", saved.Year, "id", saved.ID)
	return salarylaw.NewSalaryLawResponse(saved), nil
}
