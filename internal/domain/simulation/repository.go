package simulation

import "context"

// RunRepository guarda la última corrida por gato. No hay historia ni capa
// de persistencia durable.
type RunRepository interface {
	SaveLatest(ctx context.Context, run Run) error
	Latest(ctx context.Context, catID string) (Run, error)
}
