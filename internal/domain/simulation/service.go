package simulation

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	runs RunRepository
	rnd  *rand.Rand
	now  func() time.Time
}

func NewService(runs RunRepository) *Service {
	return &Service{
		runs: runs,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// NewSeededService fija la fuente de aleatoriedad (tests).
func NewSeededService(runs RunRepository, seed int64) *Service {
	s := NewService(runs)
	s.rnd = rand.New(rand.NewSource(seed))
	return s
}

// Run corre la simulación base para un gato y registra la corrida como la
// última del gato (cualquier enhancement pendiente de una corrida anterior
// queda superseded).
func (s *Service) Run(ctx context.Context, cat cats.CatProfile, routine cats.CareRoutine, startMonths, endMonths int) (Run, error) {
	if startMonths < 0 || startMonths > EndAgeMonths {
		return Run{}, ErrInvalidInput
	}
	if endMonths == 0 {
		endMonths = EndAgeMonths
	}
	if endMonths < startMonths || endMonths > EndAgeMonths {
		return Run{}, ErrInvalidInput
	}

	result := Simulate(cat, routine, startMonths, endMonths, s.rnd)

	run := Run{
		ID:        uuid.NewString(),
		CatID:     cat.ID,
		StartedAt: s.now(),
		Result:    result,
	}
	if s.runs != nil {
		if err := s.runs.SaveLatest(ctx, run); err != nil {
			return Run{}, err
		}
	}
	return run, nil
}

// LatestRun devuelve la última corrida registrada para un gato.
func (s *Service) LatestRun(ctx context.Context, catID string) (Run, error) {
	return s.runs.Latest(ctx, catID)
}

// IsLatestRun chequea si runID sigue siendo la corrida vigente del gato.
// Lo usa el enhancement asincrónico para descartar resultados superseded.
func (s *Service) IsLatestRun(ctx context.Context, catID, runID string) bool {
	run, err := s.runs.Latest(ctx, catID)
	if err != nil {
		return false
	}
	return run.ID == runID
}
