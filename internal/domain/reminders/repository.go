package reminders

import "context"

type Repository interface {
	Create(ctx context.Context, r Reminder) error
	Update(ctx context.Context, r Reminder) error
	GetByID(ctx context.Context, id string) (Reminder, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Reminder, error)
	ListAll(ctx context.Context) ([]Reminder, error)
}
