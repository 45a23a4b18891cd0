package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"
)

// runRepo guarda una sola corrida por gato: la última pisa a la anterior.
type runRepo struct {
	mu      sync.RWMutex
	byCatID map[string]simulation.Run
}

func NewRunRepo() simulation.RunRepository {
	return &runRepo{
		byCatID: make(map[string]simulation.Run),
	}
}

func (r *runRepo) SaveLatest(ctx context.Context, run simulation.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(run.CatID) == "" {
		return errors.New("run cat id required")
	}
	r.byCatID[run.CatID] = run
	return nil
}

func (r *runRepo) Latest(ctx context.Context, catID string) (simulation.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.byCatID[catID]
	if !ok {
		return simulation.Run{}, ErrNotFound
	}
	return run, nil
}
