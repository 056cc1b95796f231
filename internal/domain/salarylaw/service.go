package salarylaw

import "context"

type SalaryLawService interface {
	GetSalaryLaw(ctx context.Context, year int) (SalaryLawResponse, error)
	ListSalaryLaws(ctx context.Context) ([]SalaryLawResponse, error)
	UpsertSalaryLaw(ctx context.Context, req UpsertSalaryLawRequest) (SalaryLawResponse, error)
}
