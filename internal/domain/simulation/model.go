package simulation

import "time"

// HealthStatus es la clasificación mensual, ordenada de mejor a peor.
// @Enum thriving, ok, risky, unhealthy
type HealthStatus string

const (
	StatusThriving  HealthStatus = "thriving"
	StatusOK        HealthStatus = "ok"
	StatusRisky     HealthStatus = "risky"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// Score mapea el status a la escala 1-4 usada por resúmenes y trayectorias.
func (s HealthStatus) Score() float64 {
	switch s {
	case StatusThriving:
		return 4
	case StatusOK:
		return 3
	case StatusRisky:
		return 2
	default:
		return 1
	}
}

// StatusForScore es el inverso aproximado de Score. Umbrales 3.5/2.5/1.5,
// compartidos con las proyecciones de trayectoria.
func StatusForScore(score float64) HealthStatus {
	switch {
	case score >= 3.5:
		return StatusThriving
	case score >= 2.5:
		return StatusOK
	case score >= 1.5:
		return StatusRisky
	default:
		return StatusUnhealthy
	}
}

// downgrade baja el status un escalón. Nunca sube.
func downgrade(s HealthStatus) HealthStatus {
	switch s {
	case StatusThriving:
		return StatusOK
	case StatusOK:
		return StatusRisky
	default:
		return StatusUnhealthy
	}
}

// Point es el snapshot de un mes simulado.
// Notes solo se llena en el punto inicial y en cumpleaños (mes % 12 == 0).
type Point struct {
	AgeMonths int          `json:"age_months"`
	WeightKg  float64      `json:"weight_kg"`
	Status    HealthStatus `json:"health_status"`
	Notes     string       `json:"notes"`
}

// Severity de una alerta. Solo afecta énfasis de presentación.
// @Enum info, warning, critical
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert es un evento discreto derivado de la simulación.
// Inmutable una vez generada; el set completo va ordenado por AgeMonths.
type Alert struct {
	ID             string   `json:"id"`
	AgeMonths      int      `json:"age_months"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

// Result es la salida completa de una corrida base.
type Result struct {
	Points          []Point  `json:"points"`
	Alerts          []Alert  `json:"alerts"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// Run asocia un resultado a un gato con un id de corrida. El store de runs
// guarda solo la última corrida por gato: una corrida nueva supersede
// cualquier enhancement en vuelo de la anterior.
type Run struct {
	ID        string
	CatID     string
	StartedAt time.Time
	Result    Result
}
