package enhance

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/simulation"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, simSvc *simulation.Service, catsSvc *cats.Service) {
	// ?personalized=true intenta además las notas externas (best-effort).
	r.Post("/cats/{catID}/simulation/enhanced", enhanceHandler(svc, simSvc, catsSvc))
}

type enhanceResponse struct {
	RunID  string `json:"run_id"`
	Result Result `json:"result"`
}

func enhanceHandler(svc *Service, simSvc *simulation.Service, catsSvc *cats.Service) http.HandlerFunc {
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

		run, err := simSvc.LatestRun(r.Context(), catID)
		if err != nil {
			http.Error(w, "run a simulation first", http.StatusNotFound)
			return
		}

		routine, err := catsSvc.GetRoutine(r.Context(), catID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var result Result
		if r.URL.Query().Get("personalized") == "true" {
			result = svc.WithNotes(r.Context(), run.ID, run.Result, cat, routine)
		} else {
			result = svc.Local(run.Result, cat, routine)
		}

		writeJSON(w, http.StatusOK, enhanceResponse{RunID: run.ID, Result: result})
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en cats/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
