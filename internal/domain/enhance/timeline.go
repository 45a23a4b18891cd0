package enhance

import (
	"fmt"
	"strings"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
)

// Hitos fijos del timeline progresivo, independientes de la raza.
var timelineMilestones = map[int]TimelineEntry{
	1: {
		Category:       CategoryScreening,
		Recommendation: "Complete the adult vaccination series and baseline bloodwork",
		Reason:         "Year one sets the baselines every later result is compared against",
		Priority:       PriorityHigh,
	},
	7: {
		Category:       CategoryScreening,
		Recommendation: "Start yearly senior bloodwork (kidney, thyroid, blood pressure)",
		Reason:         "Age 7 is where silent senior conditions begin",
		Priority:       PriorityMedium,
	},
	10: {
		Category:       CategoryMonitoring,
		Recommendation: "Move to twice-yearly vet visits",
		Reason:         "Senior cats decline faster than an annual visit can catch",
		Priority:       PriorityHigh,
	},
	12: {
		Category:       CategoryComfort,
		Recommendation: "Add low-entry litter boxes, ramps, and warm resting spots",
		Reason:         "Arthritis is present in most cats past 12, shown or not",
		Priority:       PriorityMedium,
	},
}

// buildTimeline arma la línea de recomendaciones año a año desde
// max(1, edad actual) hasta 20: screenings de raza en su año exacto, riesgos
// en su año exacto de onset, hitos fijos, y entradas guiadas por el trend a
// partir de currentYears+2 cuando hay factores de riesgo que las justifiquen.
func buildTimeline(profile breeds.Profile, currentYears int, traj Trajectory) []TimelineEntry {
	startYear := currentYears
	if startYear < 1 {
		startYear = 1
	}

	out := make([]TimelineEntry, 0, 24)
	for year := startYear; year <= 20; year++ {
		for _, s := range profile.Screenings {
			if s.AgeYears == year {
				out = append(out, TimelineEntry{
					AgeYears:       year,
					Category:       CategoryScreening,
					Recommendation: strings.Join(s.Screenings, ", "),
					Reason:         s.Reason,
					Priority:       PriorityMedium,
				})
			}
		}

		for _, r := range profile.Risks {
			if r.OnsetAgeYears == year {
				out = append(out, TimelineEntry{
					AgeYears:       year,
					Category:       CategoryMonitoring,
					Recommendation: r.Monitoring,
					Reason:         fmt.Sprintf("%s typically appears around this age in this breed", r.Condition),
					Priority:       priorityForRisk(r.Level),
				})
			}
		}

		if m, ok := timelineMilestones[year]; ok {
			m.AgeYears = year
			out = append(out, m)
		}

		if year >= currentYears+2 {
			out = append(out, trendEntries(year, traj)...)
		}
	}
	return out
}

// trendEntries agrega recomendaciones derivadas de la trayectoria, solo
// cuando el factor de riesgo correspondiente está presente.
func trendEntries(year int, traj Trajectory) []TimelineEntry {
	out := make([]TimelineEntry, 0, 2)

	if traj.Trend == TrendDeclining && hasFactor(traj.RiskFactors, "Low daily activity") {
		out = append(out, TimelineEntry{
			AgeYears:       year,
			Category:       CategoryActivity,
			Recommendation: "Increase structured play to reverse the projected decline",
			Reason:         "The simulated trajectory is declining and activity is the most tunable input",
			Priority:       PriorityHigh,
		})
	}
	if traj.Trend == TrendDeclining && hasFactor(traj.RiskFactors, "Dry-only diet") {
		out = append(out, TimelineEntry{
			AgeYears:       year,
			Category:       CategoryDiet,
			Recommendation: "Shift part of the diet to wet food",
			Reason:         "Moisture intake buys kidney margin in a declining projection",
			Priority:       PriorityMedium,
		})
	}

	return out
}

func hasFactor(factors []string, name string) bool {
	for _, f := range factors {
		if f == name {
			return true
		}
	}
	return false
}

func priorityForRisk(level breeds.RiskLevel) Priority {
	switch level {
	case breeds.RiskHigh:
		return PriorityHigh
	case breeds.RiskModerate:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
