package notes

import (
	"context"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"
)

// MilestoneNote es una nota personalizada para un cumpleaños simulado.
type MilestoneNote struct {
	AgeYears             int      `json:"age_years"`
	PersonalizedNote     string   `json:"personalized_note"`
	BreedSpecificAlerts  []string `json:"breed_specific_alerts"`
	AgeAppropriateAdvice string   `json:"age_appropriate_advice"`
	UpcomingMilestones   []string `json:"upcoming_milestones"`
	TrajectoryInsight    string   `json:"trajectory_insight"`
	Priority             string   `json:"priority"`
}

// Request es el contexto que recibe el generador externo.
type Request struct {
	Cat          cats.CatProfile
	Routine      cats.CareRoutine
	YearlyPoints []simulation.Point
	Trend        string
}

// Generator produce notas de hito personalizadas. Es el único colaborador
// lento/falible del pipeline: los callers lo tratan como best-effort y siempre
// tienen un resultado local completo antes de llamarlo.
type Generator interface {
	MilestoneNotes(ctx context.Context, req Request) ([]MilestoneNote, error)
}
