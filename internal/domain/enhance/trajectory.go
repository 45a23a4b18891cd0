package enhance

import (
	"fmt"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"
)

const (
	trendThreshold   = 0.3
	decliningPenalty = 0.5
	improvingBonus   = 0.3
	lateYearPenalty  = 0.3
	seniorAgeYears   = 15
	lowPlayMinutes   = 15
	highPlayMinutes  = 30
	treatsRiskPerDay = 5
)

// yearlyPoints filtra los puntos de cumpleaños (mes % 12 == 0).
func yearlyPoints(points []simulation.Point) []simulation.Point {
	out := make([]simulation.Point, 0, len(points)/12+1)
	for _, p := range points {
		if p.AgeMonths%12 == 0 {
			out = append(out, p)
		}
	}
	return out
}

// AnalyzeTrajectory deriva trend, proyecciones y factores a partir de los
// puntos anuales de una corrida. Determinística: sin aleatoriedad.
func AnalyzeTrajectory(points []simulation.Point, cat cats.CatProfile, routine cats.CareRoutine) Trajectory {
	yearly := yearlyPoints(points)

	var avg float64
	for _, p := range yearly {
		avg += p.Status.Score()
	}
	if len(yearly) > 0 {
		avg /= float64(len(yearly))
	} else {
		avg = simulation.StatusOK.Score()
	}

	trend := trendOf(yearly)

	t := Trajectory{
		Trend:              trend,
		ProjectedYear10:    projectStatus(yearly, 10, trend, avg),
		ProjectedYear15:    projectStatus(yearly, 15, trend, avg),
		AverageHealthScore: avg,
	}
	t.RiskFactors, t.PositiveFactors = careFactors(cat, routine)
	return t
}

// trendOf compara el score medio de la primera mitad de puntos anuales contra
// la segunda. Diferencias menores a ±0.3 cuentan como estable.
func trendOf(yearly []simulation.Point) Trend {
	if len(yearly) < 2 {
		return TrendStable
	}
	half := len(yearly) / 2

	var first, second float64
	for _, p := range yearly[:half] {
		first += p.Status.Score()
	}
	first /= float64(half)
	for _, p := range yearly[half:] {
		second += p.Status.Score()
	}
	second /= float64(len(yearly) - half)

	switch {
	case second-first > trendThreshold:
		return TrendImproving
	case first-second > trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// projectStatus usa el punto anual real si la simulación lo cubrió; si no,
// extrapola desde el promedio y el trend.
func projectStatus(yearly []simulation.Point, targetYears int, trend Trend, avg float64) simulation.HealthStatus {
	targetMonths := targetYears * 12
	for _, p := range yearly {
		if p.AgeMonths == targetMonths {
			return p.Status
		}
	}

	score := avg
	switch trend {
	case TrendDeclining:
		score -= decliningPenalty
	case TrendImproving:
		score += improvingBonus
	}
	if targetYears >= seniorAgeYears {
		score -= lateYearPenalty
	}

	return simulation.StatusForScore(score)
}

// careFactors acumula strings de riesgo/positivos desde umbrales fijos
// sobre rutina, peso y perfil.
func careFactors(cat cats.CatProfile, routine cats.CareRoutine) (risks, positives []string) {
	if routine.PlayMinutesPerDay < lowPlayMinutes {
		risks = append(risks, "Low daily activity")
	} else if routine.PlayMinutesPerDay >= highPlayMinutes {
		positives = append(positives, "Active play routine")
	}

	if routine.VetVisitsPerYear < 1 {
		risks = append(risks, "No regular vet care")
	} else if routine.VetVisitsPerYear >= 2 {
		positives = append(positives, "Consistent vet care")
	}

	if routine.TreatsPerDay > treatsRiskPerDay {
		risks = append(risks, "High treat intake")
	}

	switch routine.FoodType {
	case cats.FoodWet, cats.FoodMixed:
		positives = append(positives, "Moisture-rich diet")
	case cats.FoodDry:
		risks = append(risks, "Dry-only diet")
	}

	ideal := simulation.IdealWeightRange(cat.Breed)
	if cat.CurrentWeightKg > ideal.MaxKg {
		risks = append(risks, fmt.Sprintf("Weight above ideal range (%.1f-%.1f kg)", ideal.MinKg, ideal.MaxKg))
	} else if cat.CurrentWeightKg >= ideal.MinKg {
		positives = append(positives, "Weight within ideal range")
	}

	if cat.HasKnownConditions() {
		risks = append(risks, "Pre-existing conditions on file")
	}

	if cat.AgeInMonths() > 180 && routine.VetVisitsPerYear < 2 {
		risks = append(risks, "Senior age with infrequent vet visits")
	}

	return risks, positives
}

// breedRiskNames aplica el filtro inclusivo del registro (onset <= edad+2)
// y devuelve solo los nombres de condición para anotar puntos.
func breedRiskNames(p breeds.Profile, ageYears int) []string {
	rs := breeds.RisksForAge(p, ageYears)
	if len(rs) == 0 {
		return nil
	}
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Condition)
	}
	return out
}
