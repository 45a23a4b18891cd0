package simulation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, catsSvc *cats.Service) {
	r.Post("/cats/{catID}/simulation", runSimulationHandler(svc, catsSvc))
	r.Get("/cats/{catID}/simulation", latestSimulationHandler(svc, catsSvc))
}

type runRequest struct {
	// Opcionales: default = edad actual del gato hasta 240 meses.
	StartAgeMonths *int `json:"start_age_months"`
	EndAgeMonths   *int `json:"end_age_months"`
}

type runResponse struct {
	RunID  string `json:"run_id"`
	Result Result `json:"result"`
}

func runSimulationHandler(svc *Service, catsSvc *cats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		catID := chi.URLParam(r, "catID")
		cat, err := catsSvc.GetByID(r.Context(), catID)
		if err != nil {
			http.Error(w, "cat not found", http.StatusNotFound)
			return
		}
		if cat.OwnerUserID != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req runRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		start := cat.AgeInMonths()
		if req.StartAgeMonths != nil {
			start = *req.StartAgeMonths
		}
		end := EndAgeMonths
		if req.EndAgeMonths != nil {
			end = *req.EndAgeMonths
		}

		routine, err := catsSvc.GetRoutine(r.Context(), catID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		run, err := svc.Run(r.Context(), cat, routine, start, end)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, runResponse{RunID: run.ID, Result: run.Result})
	}
}

func latestSimulationHandler(svc *Service, catsSvc *cats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		catID := chi.URLParam(r, "catID")
		owner, err := catsSvc.OwnerOf(r.Context(), catID)
		if err != nil {
			http.Error(w, "cat not found", http.StatusNotFound)
			return
		}
		if owner != claims.UserID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		run, err := svc.LatestRun(r.Context(), catID)
		if err != nil {
			http.Error(w, "no simulation yet", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, runResponse{RunID: run.ID, Result: run.Result})
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en cats/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
