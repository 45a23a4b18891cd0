package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/notify"
)

var (
	ErrMailerNotConfigured = errors.New("mailer client not configured")
	ErrMailerRejected      = errors.New("mailer rejected message")
	ErrMailerUpstream      = errors.New("mailer upstream error")
)

// Config del cliente de mailing.
// BaseURL y APIKey normalmente vendrán de env vars en quien lo instancie.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	// Timeout HTTP.
	Timeout time.Duration
}

type Client struct {
	baseURL      string
	apiKey       string
	apiKeyHeader string
	httpClient   *http.Client
}

func NewClient(cfg Config) *Client {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL:      strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.baseURL != "" && c.apiKey != ""
}

// SendReminder manda el recordatorio por el servicio de mailing.
func (c *Client) SendReminder(ctx context.Context, m notify.Message) error {
	if !c.IsConfigured() {
		return ErrMailerNotConfigured
	}
	if strings.TrimSpace(m.To) == "" {
		return ErrMailerRejected
	}

	const sendPath = "/v1/messages"

	subject := fmt.Sprintf("Time for %s's checkup reminder", m.CatName)
	body := fmt.Sprintf(
		"Hi! This is your %s reminder to review %s's care routine and rerun the health projection.",
		m.Channel, m.CatName,
	)

	reqBody := map[string]string{
		"to":      m.To,
		"subject": subject,
		"body":    body,
	}
	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailerUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(c.apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMailerUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrMailerRejected
	default:
		return fmt.Errorf("%w: status=%d", ErrMailerUpstream, resp.StatusCode)
	}
}
