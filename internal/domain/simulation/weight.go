package simulation

import (
	"strings"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/breeds"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
)

// Tabla de fallback por tamaño, para razas que el registro no cubre pero cuyo
// tamaño sí conocemos. Duplica a propósito una porción mínima del registro:
// solo aplica cuando Find() devolvió el perfil genérico.
var sizeByBreed = map[string]breeds.SizeCategory{
	"munchkin":   breeds.SizeSmall,
	"singapura":  breeds.SizeSmall,
	"korat":      breeds.SizeSmall,
	"lykoi":      breeds.SizeSmall,
	"ragamuffin": breeds.SizeLarge,
	"pixie-bob":  breeds.SizeLarge,
	"chausie":    breeds.SizeLarge,
	"highlander": breeds.SizeLarge,
}

var weightBySize = map[breeds.SizeCategory]breeds.WeightRange{
	breeds.SizeSmall:  {MinKg: 2.5, MaxKg: 4.0},
	breeds.SizeMedium: {MinKg: 3.5, MaxKg: 5.5},
	breeds.SizeLarge:  {MinKg: 5.0, MaxKg: 8.0},
}

// IdealWeightRange devuelve el rango de peso ideal para una raza.
// Registro primero; si cayó al perfil genérico, intenta la tabla por tamaño.
func IdealWeightRange(breedName string) breeds.WeightRange {
	p := breeds.Find(breedName)
	if !p.IsGeneric() {
		return p.IdealWeight
	}
	key := strings.ToLower(strings.TrimSpace(breedName))
	if size, ok := sizeByBreed[key]; ok {
		return weightBySize[size]
	}
	return p.IdealWeight
}

// Coeficientes del proxy calórico. Valores heredados y tunables; lo que sí es
// contrato es el signo de cada término: más comida/treats => tendencia a subir,
// más juego / vida outdoor / comida húmeda => tendencia a bajar.
const (
	coefFood      = 0.1
	coefTreats    = 0.02
	coefPlay      = 0.01
	coefLifestyle = 0.05
	coefFoodType  = 0.02
)

// CalorieProxy calcula un escalar de deriva sin unidades a partir de la rutina.
// No es un modelo fisiológico: el simulador lo consume como multiplicador de
// delta mensual de peso.
func CalorieProxy(routine cats.CareRoutine, lifestyle cats.Lifestyle, ideal breeds.WeightRange) float64 {
	// Target diario de onzas derivado del peso ideal (heurística kg->oz 1:1).
	targetOz := ideal.Midpoint()

	proxy := (routine.FoodOuncesPerDay - targetOz) * coefFood
	proxy += float64(routine.TreatsPerDay) * coefTreats
	proxy -= float64(routine.PlayMinutesPerDay) * coefPlay

	if lifestyle == cats.LifestyleIndoor {
		proxy += coefLifestyle
	} else {
		proxy -= coefLifestyle
	}

	switch routine.FoodType {
	case cats.FoodWet, cats.FoodRaw:
		proxy -= coefFoodType
	case cats.FoodDry:
		proxy += coefFoodType
	}

	return proxy
}

// Umbrales de edad en meses.
const (
	adultAgeMonths  = 24
	seniorAgeMonths = 180
)

// StatusFor clasifica un mes en los 4 buckets por desviación relativa del peso
// respecto al punto medio del rango ideal, y luego aplica ajustes que solo
// empeoran (orden fijo, idempotentes):
//  1. sin visitas al vet pasados los 24 meses
//  2. senior (>180 meses) con menos de 1 visita/año
//  3. condiciones conocidas con menos de 2 visitas/año
func StatusFor(weightKg float64, ideal breeds.WeightRange, vetVisitsPerYear float64, ageMonths int, hasKnownConditions bool) HealthStatus {
	mid := ideal.Midpoint()
	dev := weightKg - mid
	if dev < 0 {
		dev = -dev
	}
	rel := dev / mid

	var status HealthStatus
	switch {
	case rel < 0.10:
		status = StatusThriving
	case rel < 0.20:
		status = StatusOK
	case rel < 0.35:
		status = StatusRisky
	default:
		status = StatusUnhealthy
	}

	if vetVisitsPerYear == 0 && ageMonths > adultAgeMonths {
		// Solo thriving->ok u ok->risky; no empuja a unhealthy por sí solo.
		if status == StatusThriving || status == StatusOK {
			status = downgrade(status)
		}
	}
	if ageMonths > seniorAgeMonths && vetVisitsPerYear < 1 {
		status = downgrade(status)
	}
	if hasKnownConditions && vetVisitsPerYear < 2 && status == StatusThriving {
		status = StatusOK
	}

	return status
}
