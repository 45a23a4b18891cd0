package breeds

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes expone la consulta de perfiles. Es público: el registro no
// tiene datos por usuario.
func RegisterRoutes(r chi.Router) {
	r.Get("/breeds/{breedName}", getBreedHandler())
}

type breedResponse struct {
	Name           string       `json:"name"`
	Size           string       `json:"size"`
	LifeExpectancy [2]int       `json:"life_expectancy_years"`
	IdealWeight    [2]float64   `json:"ideal_weight_kg"`
	Risks          []HealthRisk `json:"risks"`
	Screenings     []Screening  `json:"screenings"`
	AdviceBands    []AdviceBand `json:"advice_bands"`
	IsGeneric      bool         `json:"is_generic"`
}

func getBreedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := Find(chi.URLParam(r, "breedName"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(breedResponse{
			Name:           p.Name,
			Size:           string(p.Size),
			LifeExpectancy: [2]int{p.LifeExpectancy.MinYears, p.LifeExpectancy.MaxYears},
			IdealWeight:    [2]float64{p.IdealWeight.MinKg, p.IdealWeight.MaxKg},
			Risks:          p.Risks,
			Screenings:     p.Screenings,
			AdviceBands:    p.AdviceBands,
			IsGeneric:      p.IsGeneric(),
		})
	}
}
