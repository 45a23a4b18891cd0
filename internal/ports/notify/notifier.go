package notify

import "context"

// Message es un recordatorio ya resuelto, listo para enviar.
type Message struct {
	To      string
	CatName string
	Channel string // weekly, monthly
}

// Notifier envía recordatorios. El contenido llega completamente formado;
// el adapter solo transporta.
type Notifier interface {
	SendReminder(ctx context.Context, m Message) error
}
