package enhance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"

	"github.com/google/uuid"
)

const dedupPrefixLen = 30

// breedAlerts genera alertas específicas de raza dentro del rango simulado:
// por cada riesgo, un pre-aviso un año antes del onset (clampeado al inicio)
// y una alerta en el mes exacto de onset. Por cada screening, una alerta info.
func breedAlerts(profile breeds.Profile, startMonths, endMonths int) []simulation.Alert {
	out := make([]simulation.Alert, 0, len(profile.Risks)*2+len(profile.Screenings))

	for _, risk := range profile.Risks {
		onset := risk.OnsetAgeYears * 12
		if onset < startMonths || onset > endMonths {
			continue
		}

		pre := onset - 12
		if pre < startMonths {
			pre = startMonths
		}

		preSeverity := simulation.SeverityInfo
		onsetSeverity := simulation.SeverityWarning
		if risk.Level == breeds.RiskHigh {
			preSeverity = simulation.SeverityWarning
			onsetSeverity = simulation.SeverityCritical
		}

		out = append(out, simulation.Alert{
			ID:             uuid.NewString(),
			AgeMonths:      pre,
			Severity:       preSeverity,
			Message:        fmt.Sprintf("%s risk window approaching for this breed (typical onset: %d years).", risk.Condition, risk.OnsetAgeYears),
			Recommendation: risk.Monitoring,
		})
		out = append(out, simulation.Alert{
			ID:             uuid.NewString(),
			AgeMonths:      onset,
			Severity:       onsetSeverity,
			Message:        fmt.Sprintf("%s typical onset age reached for this breed.", risk.Condition),
			Recommendation: risk.Monitoring,
		})
	}

	for _, s := range breeds.ScreeningsInRange(profile, startMonths, endMonths) {
		out = append(out, simulation.Alert{
			ID:             uuid.NewString(),
			AgeMonths:      s.AgeYears * 12,
			Severity:       simulation.SeverityInfo,
			Message:        fmt.Sprintf("Breed screening due at age %d: %s.", s.AgeYears, strings.Join(s.Screenings, ", ")),
			Recommendation: s.Reason,
		})
	}

	return out
}

// mergeAlerts combina alertas base y de raza, deduplicando por edad igual +
// primeros 30 caracteres del mensaje iguales. Heurística heredada de prefijo,
// no comparación estructural: los mensajes acá salen de plantillas fijas cuyo
// prefijo ya codifica la condición, así que el over/under-merge teórico no se
// da con este set.
func mergeAlerts(base, extra []simulation.Alert) []simulation.Alert {
	merged := make([]simulation.Alert, 0, len(base)+len(extra))
	merged = append(merged, base...)

	for _, a := range extra {
		dup := false
		for _, b := range merged {
			if b.AgeMonths == a.AgeMonths && msgPrefix(b.Message) == msgPrefix(a.Message) {
				dup = true
				break
			}
		}
		if !dup {
			merged = append(merged, a)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].AgeMonths < merged[j].AgeMonths
	})
	return merged
}

func msgPrefix(msg string) string {
	if len(msg) > dedupPrefixLen {
		return msg[:dedupPrefixLen]
	}
	return msg
}
