package cats

import "context"

type Repository interface {
	Create(ctx context.Context, c CatProfile) error
	Update(ctx context.Context, c CatProfile) error
	GetByID(ctx context.Context, id string) (CatProfile, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]CatProfile, error)

	SaveRoutine(ctx context.Context, catID string, r CareRoutine) error
	GetRoutine(ctx context.Context, catID string) (CareRoutine, error)
}
