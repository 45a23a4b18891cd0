package catvision

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/platform/httpclient"
	"github.com/LawrenceHua/catlife-chat-sim-day-5-30dop/internal/ports/vision"
)

var (
	ErrVisionNotConfigured = errors.New("catvision client not configured")
)

// Config del cliente de visión.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http *httpclient.Client
}

// NewClient valida la BaseURL. Con BaseURL vacía devuelve (nil, nil): el
// enriquecimiento por foto es opcional y los callers toleran un Analyzer nil.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, nil
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// NewClientWithTransport permite inyectar un RoundTripper (tests).
func NewClientWithTransport(baseURL string, tr http.RoundTripper) *Client {
	hc := httpclient.NewWithTransport(0, tr)
	hc.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &Client{http: hc}
}

type analyzeRequest struct {
	PhotoURL string `json:"photo_url"`
}

type analyzeResponse struct {
	BodyCondition string  `json:"body_condition"`
	CoatColor     string  `json:"coat_color"`
	CoatPattern   string  `json:"coat_pattern"`
	Confidence    float64 `json:"confidence"`
}

// AnalyzePhoto pide al servicio de visión una estimación de condición
// corporal y pelaje.
func (c *Client) AnalyzePhoto(ctx context.Context, photoURL string) (vision.Assessment, error) {
	if c == nil || c.http == nil {
		return vision.Assessment{}, ErrVisionNotConfigured
	}
	if strings.TrimSpace(photoURL) == "" {
		return vision.Assessment{}, errors.New("catvision: empty photo url")
	}

	var out analyzeResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/v1/analyze", nil, analyzeRequest{PhotoURL: photoURL}, &out)
	if err != nil {
		return vision.Assessment{}, err
	}

	return vision.Assessment{
		BodyCondition: strings.ToLower(strings.TrimSpace(out.BodyCondition)),
		CoatColor:     strings.TrimSpace(out.CoatColor),
		CoatPattern:   strings.TrimSpace(out.CoatPattern),
		Confidence:    out.Confidence,
	}, nil
}
