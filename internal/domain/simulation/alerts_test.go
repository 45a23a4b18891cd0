package simulation

import (
	"sort"
	"strings"
	"testing"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
)

var testIdeal = breeds.WeightRange{MinKg: 3.5, MaxKg: 5.5}

// flatPoints genera puntos sintéticos thriving con peso fijo.
func flatPoints(start, end int) []Point {
	out := make([]Point, 0, end-start+1)
	for m := start; m <= end; m++ {
		out = append(out, Point{AgeMonths: m, WeightKg: 4.5, Status: StatusThriving})
	}
	return out
}

func countBySubstring(alerts []Alert, sub string) int {
	n := 0
	for _, a := range alerts {
		if strings.Contains(a.Message, sub) {
			n++
		}
	}
	return n
}

func TestGenerateAlerts_RiskyFiresOncePerRun(t *testing.T) {
	pts := flatPoints(24, 100)
	pts[6].Status = StatusRisky  // mes 30
	pts[20].Status = StatusOK    // recupera
	pts[40].Status = StatusRisky // reincide, no debe re-disparar

	alerts := generateAlerts(pts, cats.CareRoutine{VetVisitsPerYear: 1}, testIdeal)

	if got := countBySubstring(alerts, "drops to risky"); got != 1 {
		t.Fatalf("expected exactly 1 risky alert, got %d", got)
	}
	for _, a := range alerts {
		if strings.Contains(a.Message, "drops to risky") && a.AgeMonths != 30 {
			t.Fatalf("risky alert should anchor at first occurrence (30), got %d", a.AgeMonths)
		}
	}
}

func TestGenerateAlerts_UnhealthyIsCritical(t *testing.T) {
	pts := flatPoints(24, 100)
	pts[10].Status = StatusUnhealthy // mes 34
	pts[30].Status = StatusUnhealthy

	alerts := generateAlerts(pts, cats.CareRoutine{VetVisitsPerYear: 1}, testIdeal)

	found := 0
	for _, a := range alerts {
		if strings.Contains(a.Message, "becomes unhealthy") {
			found++
			if a.Severity != SeverityCritical {
				t.Fatalf("expected critical severity, got %s", a.Severity)
			}
			if a.AgeMonths != 34 {
				t.Fatalf("expected first unhealthy month 34, got %d", a.AgeMonths)
			}
		}
	}
	if found != 1 {
		t.Fatalf("expected exactly 1 unhealthy alert, got %d", found)
	}
}

func TestGenerateAlerts_WeightThreshold(t *testing.T) {
	pts := flatPoints(24, 60)
	// 115% de 5.5 = 6.325; justo por debajo no dispara.
	pts[5].WeightKg = 6.3
	pts[10].WeightKg = 6.4 // mes 34: dispara

	alerts := generateAlerts(pts, cats.CareRoutine{VetVisitsPerYear: 1}, testIdeal)

	found := false
	for _, a := range alerts {
		if strings.Contains(a.Message, "115%") {
			found = true
			if a.AgeMonths != 34 {
				t.Fatalf("expected weight alert at month 34, got %d", a.AgeMonths)
			}
			if a.Severity != SeverityWarning {
				t.Fatalf("expected warning severity, got %s", a.Severity)
			}
		}
	}
	if !found {
		t.Fatalf("expected a weight alert")
	}
}

func TestGenerateAlerts_SeniorVetGap(t *testing.T) {
	pts := flatPoints(100, 140)

	alerts := generateAlerts(pts, cats.CareRoutine{VetVisitsPerYear: 0}, testIdeal)

	found := false
	for _, a := range alerts {
		if strings.Contains(a.Message, "no regular vet care") {
			found = true
			if a.AgeMonths != vetGapAgeMonths {
				t.Fatalf("expected vet gap at first month >= %d, got %d", vetGapAgeMonths, a.AgeMonths)
			}
			if a.Severity != SeverityInfo {
				t.Fatalf("expected info severity, got %s", a.Severity)
			}
		}
	}
	if !found {
		t.Fatalf("expected a vet gap alert")
	}

	// Con una visita anual no hay gap.
	alerts = generateAlerts(pts, cats.CareRoutine{VetVisitsPerYear: 1}, testIdeal)
	if countBySubstring(alerts, "no regular vet care") != 0 {
		t.Fatalf("unexpected vet gap alert with yearly visits")
	}
}

func TestGenerateAlerts_LifeStageMilestonesWithinRange(t *testing.T) {
	alerts := generateAlerts(flatPoints(0, 240), cats.CareRoutine{VetVisitsPerYear: 1}, testIdeal)

	for _, want := range []int{12, 84, 120, 180} {
		found := false
		for _, a := range alerts {
			if a.AgeMonths == want && a.Severity == SeverityInfo {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected milestone alert at month %d", want)
		}
	}

	// Fuera de rango no aparecen.
	alerts = generateAlerts(flatPoints(100, 140), cats.CareRoutine{VetVisitsPerYear: 1}, testIdeal)
	for _, a := range alerts {
		if a.AgeMonths == 12 || a.AgeMonths == 84 || a.AgeMonths == 180 {
			t.Fatalf("milestone outside simulated range leaked: %+v", a)
		}
	}
}

func TestGenerateAlerts_SortedByAge(t *testing.T) {
	pts := flatPoints(0, 240)
	pts[200].Status = StatusRisky
	pts[50].WeightKg = 9.9

	alerts := generateAlerts(pts, cats.CareRoutine{VetVisitsPerYear: 0}, testIdeal)

	if !sort.SliceIsSorted(alerts, func(i, j int) bool {
		return alerts[i].AgeMonths < alerts[j].AgeMonths
	}) {
		t.Fatalf("alerts not sorted by age")
	}
}

func TestGenerateAlerts_EmptyPoints(t *testing.T) {
	if got := generateAlerts(nil, cats.CareRoutine{}, testIdeal); len(got) != 0 {
		t.Fatalf("expected no alerts for empty points, got %d", len(got))
	}
}
