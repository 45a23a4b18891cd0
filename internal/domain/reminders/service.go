package reminders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/domain/cats"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/platform/logger"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/notify"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid state")
)

// CatResolver es lo mínimo que el dispatcher necesita del módulo cats
// (lo satisface *cats.Service).
type CatResolver interface {
	GetByID(ctx context.Context, id string) (cats.CatProfile, error)
}

type Service struct {
	repo     Repository
	notifier notify.Notifier // opcional; nil => dispatch no envía nada
	names    CatResolver
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, notifier notify.Notifier, names CatResolver, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		names:    names,
		log:      log,
		now:      time.Now,
	}
}

type SubscribeInput struct {
	CatID       string
	OwnerUserID string
	Email       string
	Channel     string
}

func (s *Service) Subscribe(ctx context.Context, in SubscribeInput) (Reminder, error) {
	catID := strings.TrimSpace(in.CatID)
	ownerID := strings.TrimSpace(in.OwnerUserID)
	email := strings.TrimSpace(in.Email)

	if catID == "" || ownerID == "" {
		return Reminder{}, ErrInvalidInput
	}
	if email == "" || !strings.Contains(email, "@") {
		return Reminder{}, ErrInvalidInput
	}

	ch := Channel(strings.ToLower(strings.TrimSpace(in.Channel)))
	if ch != ChannelWeekly && ch != ChannelMonthly {
		ch = ChannelMonthly
	}

	// Un activo por (gato, owner): si ya existe, se actualiza en vez de duplicar.
	existing, err := s.repo.ListByOwner(ctx, ownerID)
	if err == nil {
		for _, r := range existing {
			if r.CatID == catID && r.Status == StatusActive {
				r.Email = email
				r.Channel = ch
				r.UpdatedAt = s.now()
				if err := s.repo.Update(ctx, r); err != nil {
					return Reminder{}, err
				}
				return r, nil
			}
		}
	}

	now := s.now()
	rem := Reminder{
		ID:          uuid.NewString(),
		CatID:       catID,
		OwnerUserID: ownerID,
		Email:       email,
		Channel:     ch,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, rem); err != nil {
		return Reminder{}, err
	}
	return rem, nil
}

func (s *Service) Cancel(ctx context.Context, id, userID string) (Reminder, error) {
	r, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Reminder{}, ErrNotFound
	}
	if r.OwnerUserID != userID {
		return Reminder{}, ErrForbidden
	}
	if r.Status == StatusCancelled {
		return Reminder{}, ErrBadState
	}

	r.Status = StatusCancelled
	r.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, r); err != nil {
		return Reminder{}, err
	}
	return r, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Reminder, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// DispatchDue envía los recordatorios vencidos. Los fallos de envío se
// loguean y el recordatorio queda pendiente para el próximo dispatch.
// Devuelve cuántos se enviaron.
func (s *Service) DispatchDue(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, nil
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	sent := 0
	for _, r := range all {
		if !r.due(now) {
			continue
		}

		catName := "your cat"
		if s.names != nil {
			if c, err := s.names.GetByID(ctx, r.CatID); err == nil && c.Name != "" {
				catName = c.Name
			}
		}

		err := s.notifier.SendReminder(ctx, notify.Message{
			To:      r.Email,
			CatName: catName,
			Channel: string(r.Channel),
		})
		if err != nil {
			if s.log != nil {
				s.log.Warn("reminder send failed", map[string]any{"reminder": r.ID, "err": err.Error()})
			}
			continue
		}

		ts := now
		r.LastSentAt = &ts
		r.UpdatedAt = now
		if err := s.repo.Update(ctx, r); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}
