package dispatch

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"hirebridge/internal/config"
)

// Message is one outbound application email
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	ReplyTo string `json:"reply_to,omitempty"`
}

// Mailer delivers a single message. Implementations own transport
// details; the dispatcher only cares about per-message success.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// HTTPMailer delivers messages through a JSON mail-provider API
type HTTPMailer struct {
	client *resty.Client
	apiURL string
}

// NewHTTPMailer creates a mailer against the configured provider endpoint
func NewHTTPMailer(cfg *config.Config) *HTTPMailer {
	client := resty.New().
		SetTimeout(cfg.Dispatch.Timeout).
		SetAuthToken(cfg.Dispatch.MailAPIKey).
		SetHeader("Content-Type", "application/json")

	return &HTTPMailer{
		client: client,
		apiURL: cfg.Dispatch.MailAPIURL,
	}
}

// Send posts the message to the provider. Any non-2xx response is a
// delivery failure for this message only.
func (m *HTTPMailer) Send(ctx context.Context, msg Message) error {
	if m.apiURL == "" {
		return fmt.Errorf("mail provider not configured - set MAIL_API_URL")
	}
	if msg.To == "" {
		return fmt.Errorf("message has no recipient")
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post(m.apiURL)
	if err != nil {
		return fmt.Errorf("mail provider request failed: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("mail provider rejected message: status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
