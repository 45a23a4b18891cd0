package simulation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
)

const (
	// EndAgeMonths es el horizonte fijo de la simulación: 20 años.
	EndAgeMonths = 240

	// MinWeightKg es el piso duro de peso; ningún punto baja de acá.
	MinWeightKg = 1.5

	driftScale     = 0.02  // proxy calórico -> delta mensual de kg
	noiseAmplitude = 0.025 // ruido uniforme simétrico por mes
	juvenilePull   = 0.05  // <12 meses: tira hacia idealMax a 5%/mes
	seniorDecline  = 0.002 // >180 meses: baja 0.2%/mes mientras supere el target senior
	seniorFloorPct = 0.80  // target senior: 80% del idealMin
)

// Simulate corre la proyección mes a mes desde startMonths hasta endMonths
// (ambos inclusive): exactamente un punto por mes entero.
// rnd es inyectable para que los tests fijen la semilla; la aleatoriedad hace
// que corridas sin semilla no sean bit-reproducibles, a propósito.
func Simulate(cat cats.CatProfile, routine cats.CareRoutine, startMonths, endMonths int, rnd *rand.Rand) Result {
	if endMonths <= 0 || endMonths > EndAgeMonths {
		endMonths = EndAgeMonths
	}
	if startMonths < 0 {
		startMonths = 0
	}

	ideal := IdealWeightRange(cat.Breed)
	proxy := CalorieProxy(routine, cat.Lifestyle, ideal)
	hasConditions := cat.HasKnownConditions()

	weight := cat.CurrentWeightKg
	if weight <= 0 {
		// Peso ausente: arrancamos en el promedio poblacional para la raza.
		weight = ideal.Midpoint()
	}

	points := make([]Point, 0, endMonths-startMonths+1)
	for m := startMonths; m <= endMonths; m++ {
		if m > startMonths {
			weight += proxy * driftScale
			weight += (rnd.Float64()*2 - 1) * noiseAmplitude

			// Ajustes no lineales por etapa de vida.
			if m < 12 {
				weight += (ideal.MaxKg - weight) * juvenilePull
			}
			if m > seniorAgeMonths && weight > ideal.MinKg*seniorFloorPct {
				weight -= weight * seniorDecline
			}

			if weight < MinWeightKg {
				weight = MinWeightKg
			}
		}

		w := math.Round(weight*100) / 100
		status := StatusFor(w, ideal, routine.VetVisitsPerYear, m, hasConditions)

		// Narrativa solo en el punto inicial y en cumpleaños, para no saturar.
		notes := ""
		if m == startMonths || m%12 == 0 {
			notes = yearlyNote(cat.Name, m, w, status)
		}

		points = append(points, Point{
			AgeMonths: m,
			WeightKg:  w,
			Status:    status,
			Notes:     notes,
		})
	}

	alerts := generateAlerts(points, routine, ideal)
	summary, recs := buildSummary(cat, routine, points, ideal)

	return Result{
		Points:          points,
		Alerts:          alerts,
		Summary:         summary,
		Recommendations: recs,
	}
}

func yearlyNote(name string, ageMonths int, weightKg float64, status HealthStatus) string {
	years := ageMonths / 12
	rem := ageMonths % 12

	var phase string
	switch {
	case ageMonths < 12:
		phase = "growing fast"
	case ageMonths < 84:
		phase = "in the prime adult years"
	case ageMonths <= seniorAgeMonths:
		phase = "entering the mature years"
	default:
		phase = "enjoying the senior years"
	}

	age := fmt.Sprintf("%d years", years)
	if rem != 0 {
		age = fmt.Sprintf("%d years %d months", years, rem)
	}
	return fmt.Sprintf("%s at %s: %.2f kg, %s, %s.", name, age, weightKg, status, phase)
}
