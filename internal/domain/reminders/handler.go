package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, catsSvc *cats.Service) {
	r.Post("/cats/{catID}/reminders", subscribeHandler(svc, catsSvc))
	r.Get("/me/reminders", listMyRemindersHandler(svc))
	r.Post("/reminders/{reminderID}/cancel", cancelHandler(svc))
	r.Post("/reminders/dispatch", dispatchHandler(svc))
}

type subscribeRequest struct {
	Email   string `json:"email"`
	Channel string `json:"channel"` // weekly | monthly
}

type reminderResponse struct {
	ID         string     `json:"id"`
	CatID      string     `json:"cat_id"`
	Email      string     `json:"email"`
	Channel    string     `json:"channel"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	LastSentAt *time.Time `json:"last_sent_at,omitempty"`
}

func subscribeHandler(svc *Service, catsSvc *cats.Service) http.HandlerFunc {
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

		var req subscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rem, err := svc.Subscribe(r.Context(), SubscribeInput{
			CatID:       catID,
			OwnerUserID: claims.UserID,
			Email:       req.Email,
			Channel:     req.Channel,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toReminderResponse(rem))
	}
}

func listMyRemindersHandler(svc *Service) http.HandlerFunc {
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

		out := make([]reminderResponse, 0, len(items))
		for _, rem := range items {
			out = append(out, toReminderResponse(rem))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rem, err := svc.Cancel(r.Context(), chi.URLParam(r, "reminderID"), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "reminder not found", http.StatusNotFound)
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			case errors.Is(err, ErrBadState):
				http.Error(w, "already cancelled", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toReminderResponse(rem))
	}
}

// dispatchHandler dispara el envío de vencidos. Pensado para un cron externo.
func dispatchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sent, err := svc.DispatchDue(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"sent": sent})
	}
}

func toReminderResponse(r Reminder) reminderResponse {
	return reminderResponse{
		ID:         r.ID,
		CatID:      r.CatID,
		Email:      r.Email,
		Channel:    string(r.Channel),
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		LastSentAt: r.LastSentAt,
	}
}

// writeJSON duplicado a propósito por módulo (ver nota en cats/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
