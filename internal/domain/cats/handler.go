package cats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/cats", func(cr chi.Router) {
		cr.Post("/", createCatHandler(svc))
		cr.Get("/", listCatsHandler(svc))
		cr.Get("/{catID}", getCatHandler(svc))
		cr.Get("/{catID}/routine", getRoutineHandler(svc))
		cr.Put("/{catID}/routine", replaceRoutineHandler(svc))
	})
}

type routinePayload struct {
	FoodType            string  `json:"food_type"`
	FoodOuncesPerDay    float64 `json:"food_oz_per_day"`
	FeedingsPerDay      int     `json:"feedings_per_day"`
	TreatsPerDay        int     `json:"treats_per_day"`
	PlayMinutesPerDay   int     `json:"play_minutes_per_day"`
	VetVisitsPerYear    float64 `json:"vet_visits_per_year"`
	LitterCleansPerWeek int     `json:"litter_cleans_per_week"`
}

type createCatRequest struct {
	Name            string         `json:"name"`
	AgeYears        int            `json:"age_years"`
	AgeMonths       int            `json:"age_months"`
	Sex             string         `json:"sex"`
	Neutered        bool           `json:"neutered"`
	Breed           string         `json:"breed"`
	Lifestyle       string         `json:"lifestyle"`
	CurrentWeightKg float64        `json:"current_weight_kg"`
	WeightSource    string         `json:"weight_source"`
	BodyCondition   string         `json:"body_condition"`
	KnownConditions []string       `json:"known_conditions"`
	PhotoURL        string         `json:"photo_url"`
	Routine         routinePayload `json:"routine"`
}

type catResponse struct {
	ID              string    `json:"id"`
	OwnerUserID     string    `json:"owner_user_id"`
	Name            string    `json:"name"`
	AgeYears        int       `json:"age_years"`
	AgeMonths       int       `json:"age_months"`
	AgeTotalMonths  int       `json:"age_total_months"`
	Sex             string    `json:"sex"`
	Neutered        bool      `json:"neutered"`
	Breed           string    `json:"breed"`
	Lifestyle       string    `json:"lifestyle"`
	CurrentWeightKg float64   `json:"current_weight_kg"`
	WeightSource    string    `json:"weight_source"`
	BodyCondition   string    `json:"body_condition"`
	KnownConditions []string  `json:"known_conditions"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	CoatColor       string    `json:"coat_color,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func createCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createCatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:            req.Name,
			AgeYears:        req.AgeYears,
			AgeMonths:       req.AgeMonths,
			Sex:             req.Sex,
			Neutered:        req.Neutered,
			Breed:           req.Breed,
			Lifestyle:       req.Lifestyle,
			CurrentWeightKg: req.CurrentWeightKg,
			WeightSource:    req.WeightSource,
			BodyCondition:   req.BodyCondition,
			KnownConditions: req.KnownConditions,
			PhotoURL:        req.PhotoURL,
			Routine:         toRoutine(req.Routine),
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toCatResponse(c))
	}
}

func listCatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]catResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCatResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "catID"))
		if err != nil {
			http.Error(w, "cat not found", http.StatusNotFound)
			return
		}
		if c.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

func getRoutineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		catID := chi.URLParam(r, "catID")
		owner, err := svc.OwnerOf(r.Context(), catID)
		if err != nil {
			http.Error(w, "cat not found", http.StatusNotFound)
			return
		}
		if owner != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		rt, err := svc.GetRoutine(r.Context(), catID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toRoutineResponse(rt))
	}
}

func replaceRoutineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		catID := chi.URLParam(r, "catID")
		owner, err := svc.OwnerOf(r.Context(), catID)
		if err != nil {
			http.Error(w, "cat not found", http.StatusNotFound)
			return
		}
		if owner != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req routinePayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rt, err := svc.ReplaceRoutine(r.Context(), catID, toRoutine(req))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toRoutineResponse(rt))
	}
}

func toRoutine(p routinePayload) CareRoutine {
	return CareRoutine{
		FoodType:            FoodType(strings.ToLower(strings.TrimSpace(p.FoodType))),
		FoodOuncesPerDay:    p.FoodOuncesPerDay,
		FeedingsPerDay:      p.FeedingsPerDay,
		TreatsPerDay:        p.TreatsPerDay,
		PlayMinutesPerDay:   p.PlayMinutesPerDay,
		VetVisitsPerYear:    p.VetVisitsPerYear,
		LitterCleansPerWeek: p.LitterCleansPerWeek,
	}
}

func toRoutineResponse(r CareRoutine) routinePayload {
	return routinePayload{
		FoodType:            string(r.FoodType),
		FoodOuncesPerDay:    r.FoodOuncesPerDay,
		FeedingsPerDay:      r.FeedingsPerDay,
		TreatsPerDay:        r.TreatsPerDay,
		PlayMinutesPerDay:   r.PlayMinutesPerDay,
		VetVisitsPerYear:    r.VetVisitsPerYear,
		LitterCleansPerWeek: r.LitterCleansPerWeek,
	}
}

func toCatResponse(c CatProfile) catResponse {
	return catResponse{
		ID:              c.ID,
		OwnerUserID:     c.OwnerUserID,
		Name:            c.Name,
		AgeYears:        c.AgeYears,
		AgeMonths:       c.AgeMonths,
		AgeTotalMonths:  c.AgeInMonths(),
		Sex:             string(c.Sex),
		Neutered:        c.Neutered,
		Breed:           c.Breed,
		Lifestyle:       string(c.Lifestyle),
		CurrentWeightKg: c.CurrentWeightKg,
		WeightSource:    string(c.WeightSource),
		BodyCondition:   string(c.BodyCondition),
		KnownConditions: c.KnownConditions,
		PhotoURL:        c.PhotoURL,
		AvatarURL:       c.AvatarURL,
		CoatColor:       c.CoatColor,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (cats/simulation/reminders) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
