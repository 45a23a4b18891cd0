package simulation

import (
	"fmt"
	"sort"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"

	"github.com/google/uuid"
)

const (
	weightAlertFactor = 1.15 // dispara al superar 115% del ideal máximo
	vetGapAgeMonths   = 120  // senior vet-gap: desde los 10 años
)

// Hitos fijos de etapa de vida. Siempre existe un punto en la edad exacta
// porque la simulación cubre cada mes entero del rango.
var lifeStageMilestones = []struct {
	ageMonths      int
	message        string
	recommendation string
}{
	{12, "First birthday: your cat is now an adult.", "Switch to an adult diet and book the one-year checkup."},
	{84, "Age 7: entering the mature years.", "Start senior bloodwork baselines and watch weight trends."},
	{120, "Age 10: officially a senior cat.", "Move to twice-yearly vet visits and senior panels."},
	{180, "Age 15: geriatric stage.", "Prioritize comfort: soft bedding, easy litter access, frequent checkups."},
}

// generateAlerts hace una sola pasada hacia adelante sobre los puntos.
// Cada categoría dispara a lo sumo una vez (flag por categoría, no por
// transición): reincidencias tras una recuperación no re-disparan.
func generateAlerts(points []Point, routine cats.CareRoutine, ideal breeds.WeightRange) []Alert {
	alerts := make([]Alert, 0, 8)
	if len(points) == 0 {
		return alerts
	}

	var warnedRisky, warnedUnhealthy, warnedWeight, warnedVetGap bool

	for _, p := range points {
		if !warnedRisky && p.Status == StatusRisky {
			warnedRisky = true
			alerts = append(alerts, Alert{
				ID:             uuid.NewString(),
				AgeMonths:      p.AgeMonths,
				Severity:       SeverityWarning,
				Message:        fmt.Sprintf("Health status drops to risky at age %s.", formatAge(p.AgeMonths)),
				Recommendation: "Schedule a vet visit to catch problems while they are still reversible.",
			})
		}
		if !warnedUnhealthy && p.Status == StatusUnhealthy {
			warnedUnhealthy = true
			alerts = append(alerts, Alert{
				ID:             uuid.NewString(),
				AgeMonths:      p.AgeMonths,
				Severity:       SeverityCritical,
				Message:        fmt.Sprintf("Health status becomes unhealthy at age %s.", formatAge(p.AgeMonths)),
				Recommendation: "This projection needs intervention: vet visit plus diet and activity changes.",
			})
		}
		if !warnedWeight && p.WeightKg > ideal.MaxKg*weightAlertFactor {
			warnedWeight = true
			alerts = append(alerts, Alert{
				ID:             uuid.NewString(),
				AgeMonths:      p.AgeMonths,
				Severity:       SeverityWarning,
				Message:        fmt.Sprintf("Projected weight %.2f kg exceeds 115%% of the ideal maximum at age %s.", p.WeightKg, formatAge(p.AgeMonths)),
				Recommendation: "Review portions and treats; aim for gradual weight loss with your vet.",
			})
		}
		if !warnedVetGap && p.AgeMonths >= vetGapAgeMonths && routine.VetVisitsPerYear < 1 {
			warnedVetGap = true
			alerts = append(alerts, Alert{
				ID:             uuid.NewString(),
				AgeMonths:      p.AgeMonths,
				Severity:       SeverityInfo,
				Message:        fmt.Sprintf("Senior cat with no regular vet care from age %s.", formatAge(p.AgeMonths)),
				Recommendation: "Senior cats need at least yearly visits; many issues are silent until late.",
			})
		}
	}

	start := points[0].AgeMonths
	end := points[len(points)-1].AgeMonths
	for _, m := range lifeStageMilestones {
		if m.ageMonths < start || m.ageMonths > end {
			continue
		}
		alerts = append(alerts, Alert{
			ID:             uuid.NewString(),
			AgeMonths:      m.ageMonths,
			Severity:       SeverityInfo,
			Message:        m.message,
			Recommendation: m.recommendation,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].AgeMonths < alerts[j].AgeMonths
	})
	return alerts
}

func formatAge(months int) string {
	y := months / 12
	m := months % 12
	if m == 0 {
		return fmt.Sprintf("%dy", y)
	}
	return fmt.Sprintf("%dy%dm", y, m)
}
