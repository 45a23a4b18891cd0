package simulation

import (
	"fmt"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
)

const (
	trailingWindowMonths = 24
	maxRecommendations   = 5
	minRecommendations   = 3
)

// TrajectoryLabel es una clasificación más gruesa que HealthStatus, usada solo
// para la redacción del resumen.
type TrajectoryLabel string

const (
	LabelExcellent      TrajectoryLabel = "excellent"
	LabelGood           TrajectoryLabel = "good"
	LabelConcerning     TrajectoryLabel = "concerning"
	LabelNeedsAttention TrajectoryLabel = "needs attention"
)

// trajectoryLabel promedia el score de los últimos 24 meses simulados.
func trajectoryLabel(points []Point) TrajectoryLabel {
	if len(points) == 0 {
		return LabelNeedsAttention
	}
	tail := points
	if len(tail) > trailingWindowMonths {
		tail = tail[len(tail)-trailingWindowMonths:]
	}

	var sum float64
	for _, p := range tail {
		sum += p.Status.Score()
	}
	avg := sum / float64(len(tail))

	switch {
	case avg >= 3.5:
		return LabelExcellent
	case avg >= 2.5:
		return LabelGood
	case avg >= 1.5:
		return LabelConcerning
	default:
		return LabelNeedsAttention
	}
}

func buildSummary(cat cats.CatProfile, routine cats.CareRoutine, points []Point, ideal breeds.WeightRange) (string, []string) {
	label := trajectoryLabel(points)

	var summary string
	switch label {
	case LabelExcellent, LabelGood:
		summary = fmt.Sprintf(
			"%s's projected health trajectory looks %s over the next 20 years. Keeping the current routine should carry %s comfortably into the senior years.",
			cat.Name, label, cat.Name,
		)
	default:
		summary = fmt.Sprintf(
			"%s's projected health trajectory is %s in the later years. Small routine changes now can meaningfully improve how the simulation plays out.",
			cat.Name, label,
		)
	}

	return summary, buildRecommendations(cat, routine, ideal)
}

// buildRecommendations corre reglas independientes; cada una aporta 0-2 textos
// fijos. Se rellena con genéricos hasta 3 y se corta en 5.
func buildRecommendations(cat cats.CatProfile, routine cats.CareRoutine, ideal breeds.WeightRange) []string {
	recs := make([]string, 0, maxRecommendations)

	if cat.CurrentWeightKg > ideal.MaxKg {
		recs = append(recs,
			"Current weight is above the ideal range for the breed; measure meals and cut back gradually.",
			"Ask your vet for a target weight and recheck monthly.",
		)
	} else if cat.CurrentWeightKg > 0 && cat.CurrentWeightKg < ideal.MinKg {
		recs = append(recs, "Current weight is below the ideal range; rule out medical causes and increase calories slowly.")
	}

	if routine.PlayMinutesPerDay < 15 {
		recs = append(recs, "Add play time: two 10-minute sessions a day keep weight and mood in check.")
	}

	isSenior := cat.AgeInMonths() > seniorAgeMonths
	if routine.VetVisitsPerYear < 1 {
		recs = append(recs, "Book at least one vet visit per year; prevention is far cheaper than treatment.")
	} else if isSenior && routine.VetVisitsPerYear < 2 {
		recs = append(recs, "Senior cats benefit from twice-yearly checkups to catch kidney and thyroid changes early.")
	}

	if routine.FoodType == cats.FoodDry {
		recs = append(recs, "Consider mixing in wet food; the extra moisture supports kidney and urinary health.")
	}

	if routine.TreatsPerDay > 5 {
		recs = append(recs, "Treats add up fast; keep them under 10% of daily calories.")
	}

	fillers := []string{
		"Keep fresh water available in more than one spot.",
		"Scoop the litter box daily; changes in habits are an early health signal.",
		"Weigh your cat monthly so trends show up before problems do.",
	}
	for _, f := range fillers {
		if len(recs) >= minRecommendations {
			break
		}
		recs = append(recs, f)
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
