package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/domain"
)

// DefaultSender is used when EMAIL_SENDER is unset.
const DefaultSender = "Folio <onboarding@resend.dev>"

const resendEndpoint = "https://api.resend.com/emails"

// LogSender writes emails to the log instead of sending them.
type LogSender struct {
	senderAddress string
}

// NewLogSender returns a sender for local development.
func NewLogSender(from string) *LogSender {
	if from == "" {
		from = DefaultSender
	}
	return &LogSender{senderAddress: from}
}

// Send logs the email.
func (s *LogSender) Send(ctx context.Context, msg domain.Email) error {
	slog.InfoContext(ctx, "Email sent (logged)",
		"event", "email_logged",
		"from", s.senderAddress,
		"to", msg.To,
		"subject", msg.Subject,
		"body_bytes", len(msg.HTML),
	)
	return nil
}

// ResendSender sends emails through the Resend HTTP API.
type ResendSender struct {
	apiKey        string
	senderAddress string
	endpoint      string
	client        *http.Client
}

// NewResendSender returns a sender for the Resend API.
func NewResendSender(apiKey, from string) *ResendSender {
	if from == "" {
		from = DefaultSender
	}
	return &ResendSender{
		apiKey:        apiKey,
		senderAddress: from,
		endpoint:      resendEndpoint,
		client:        &http.Client{Timeout: 10 * time.Second},
	}
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send dispatches an email using the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg domain.Email) error {
	body, err := json.Marshal(resendPayload{
		From:    s.senderAddress,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request to resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	slog.InfoContext(ctx, "Sent email via Resend", "event", "email_sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
