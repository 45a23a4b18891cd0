package breeds

import "strings"

// DefaultBreedName es el perfil al que cae cualquier raza desconocida.
const DefaultBreedName = "Domestic Shorthair"

var byKey map[string]int

func init() {
	byKey = make(map[string]int, len(profiles)*3)
	for i, p := range profiles {
		byKey[strings.ToLower(p.Name)] = i
		for _, a := range p.Aliases {
			byKey[strings.ToLower(a)] = i
		}
	}
}

// Find resuelve un nombre de raza (texto libre) contra el registro.
// Match case-insensitive contra el nombre canónico o cualquier alias.
// Nombre vacío o desconocido => perfil genérico. Nunca falla.
func Find(name string) Profile {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return profiles[defaultIdx]
	}
	if i, ok := byKey[key]; ok {
		return profiles[i]
	}
	return profiles[defaultIdx]
}

// RisksForAge devuelve los riesgos "relevantes ahora o pronto": los que ya
// aparecieron o cuya edad de aparición está dentro de los próximos 2 años.
// Filtro deliberadamente inclusivo, no de aparición exacta.
func RisksForAge(p Profile, ageYears int) []HealthRisk {
	out := make([]HealthRisk, 0, len(p.Risks))
	for _, r := range p.Risks {
		if r.OnsetAgeYears <= ageYears+2 {
			out = append(out, r)
		}
	}
	return out
}

// AdviceFor devuelve la banda de consejos que contiene ageYears
// (límite inferior inclusivo, superior exclusivo).
// Si la edad supera todas las bandas definidas no hay consejo: ok=false.
// No se clampa a la última banda; el caller decide qué mostrar.
func AdviceFor(p Profile, ageYears int) (AdviceBand, bool) {
	for _, b := range p.AdviceBands {
		if ageYears >= b.FromYears && ageYears < b.ToYears {
			return b, true
		}
	}
	return AdviceBand{}, false
}

// ScreeningsInRange devuelve los chequeos cuya edad cae dentro de
// [fromMonths, toMonths] expresado en meses de vida.
func ScreeningsInRange(p Profile, fromMonths, toMonths int) []Screening {
	out := make([]Screening, 0, len(p.Screenings))
	for _, s := range p.Screenings {
		m := s.AgeYears * 12
		if m >= fromMonths && m <= toMonths {
			out = append(out, s)
		}
	}
	return out
}
