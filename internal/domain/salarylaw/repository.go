package salarylaw

import "context"

type SalaryLawRepository interface {
	// GetByYear returns the active configuration or ErrSalaryLawNotFound
	GetByYear(ctx context.Context, year int) (SalaryLaw, error)
	List(ctx context.Context) ([]SalaryLaw, error)
	// Upsert stores law as the single active configuration of its year
	Upsert(ctx context.Context, law SalaryLaw) (SalaryLaw, error)
}
