// Package notify delivers push notifications through Pushy.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"petcare/internal/config"
)

// Notification is the visible part of a push plus the app payload.
type Notification struct {
	Title string
	Body  string
	Data  map[string]any
}

// Sender pushes a notification to device tokens.
type Sender interface {
	Send(ctx context.Context, tokens []string, n Notification) error
}

type pushyPayload struct {
	To           []string       `json:"to"`
	Data         map[string]any `json:"data"`
	Notification pushyAlert     `json:"notification"`
	Priority     string         `json:"priority"`
}

type pushyAlert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

// PushyClient talks to the Pushy send API.
type PushyClient struct {
	http      *http.Client
	apiURL    string
	secretKey string
}

var _ Sender = (*PushyClient)(nil)

// NewPushy builds a client for cfg. Without a secret key Send does nothing.
func NewPushy(cfg config.PushyConfig) *PushyClient {
	return &PushyClient{
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		apiURL:    cfg.APIURL,
		secretKey: cfg.SecretKey,
	}
}

// Enabled reports whether a secret key is configured.
func (p *PushyClient) Enabled() bool {
	return p.secretKey != ""
}

func (p *PushyClient) Send(ctx context.Context, tokens []string, n Notification) error {
	if !p.Enabled() || len(tokens) == 0 {
		return nil
	}
	data := n.Data
	if data == nil {
		data = map[string]any{}
	}
	body, err := json.Marshal(pushyPayload{
		To:           tokens,
		Data:         data,
		Notification: pushyAlert{Title: n.Title, Body: n.Body, Sound: "default"},
		Priority:     "high",
	})
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pushy returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
