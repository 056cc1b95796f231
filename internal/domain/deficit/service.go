package deficit

import "context"

type DeficitService interface {
	Create(ctx context.Context, req CreateDeficitRequest) (DeficitResponse, error)
	ListByEmployeePeriod(ctx context.Context, filter DeficitFilter) ([]DeficitResponse, error)
	Delete(ctx context.Context, id string) error
}
