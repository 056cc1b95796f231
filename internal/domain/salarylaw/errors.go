package salarylaw

import "errors"

var (
	ErrSalaryLawNotFound = errors.New("salary law configuration not found for year")
	ErrInvalidYear       = errors.New("invalid salary law year")
)
