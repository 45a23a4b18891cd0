package enhance

import (
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/notes"
)

// Trend de la trayectoria de salud derivada.
// @Enum improving, stable, declining
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Trajectory es derivada, no almacenada: compara mitades de los puntos anuales.
type Trajectory struct {
	Trend              Trend                   `json:"trend"`
	ProjectedYear10    simulation.HealthStatus `json:"projected_year_10"`
	ProjectedYear15    simulation.HealthStatus `json:"projected_year_15"`
	RiskFactors        []string                `json:"risk_factors"`
	PositiveFactors    []string                `json:"positive_factors"`
	AverageHealthScore float64                 `json:"average_health_score"` // 1-4, thriving=4
}

// Point extiende el punto base con riesgos de raza y la nota personalizada
// opcional. Nunca altera los valores simulados.
type Point struct {
	simulation.Point
	BreedRisks   []string             `json:"breed_risks,omitempty"`
	EnhancedNote *notes.MilestoneNote `json:"enhanced_note,omitempty"`
}

// Category de una recomendación progresiva.
// @Enum screening, diet, activity, monitoring, comfort
type Category string

const (
	CategoryScreening  Category = "screening"
	CategoryDiet       Category = "diet"
	CategoryActivity   Category = "activity"
	CategoryMonitoring Category = "monitoring"
	CategoryComfort    Category = "comfort"
)

// Priority de una recomendación progresiva.
// @Enum high, medium, low
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TimelineEntry es una recomendación anclada a un año de vida.
type TimelineEntry struct {
	AgeYears       int      `json:"age_years"`
	Category       Category `json:"category"`
	Recommendation string   `json:"recommendation"`
	Reason         string   `json:"reason"`
	Priority       Priority `json:"priority"`
}

// Result es el resultado enriquecido. Se construye como una estructura nueva
// sobre el resultado base, nunca mutándolo in place.
type Result struct {
	Points          []Point            `json:"points"`
	Alerts          []simulation.Alert `json:"alerts"`
	Summary         string             `json:"summary"`
	Recommendations []string           `json:"recommendations"`
	Trajectory      Trajectory         `json:"trajectory"`
	BreedProfile    breeds.Profile     `json:"breed_profile"`
	Timeline        []TimelineEntry    `json:"progressive_timeline"`
	IsEnhanced      bool               `json:"is_enhanced"`
}
