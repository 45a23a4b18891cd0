package reminders

import "time"

// Channel define la cadencia del recordatorio.
// @Enum weekly, monthly
type Channel string

const (
	ChannelWeekly  Channel = "weekly"
	ChannelMonthly Channel = "monthly"
)

// Status del recordatorio.
// @Enum active, cancelled
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Reminder es una suscripción a recordatorios por email para un gato.
type Reminder struct {
	ID string

	CatID       string
	OwnerUserID string

	Email   string
	Channel Channel
	Status  Status

	CreatedAt  time.Time
	UpdatedAt  time.Time
	LastSentAt *time.Time
}

// due indica si corresponde enviar según la cadencia y el último envío.
func (r Reminder) due(now time.Time) bool {
	if r.Status != StatusActive {
		return false
	}
	if r.LastSentAt == nil {
		return true
	}
	var interval time.Duration
	switch r.Channel {
	case ChannelWeekly:
		interval = 7 * 24 * time.Hour
	default:
		interval = 30 * 24 * time.Hour
	}
	return now.Sub(*r.LastSentAt) >= interval
}
