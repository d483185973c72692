package client

import (
	"context"
	"errors"
	"time"

	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/pkg/webhook"
)

// WebhookSubject is sent with every webhook payload.
const WebhookSubject = "New Contact Form Submission"

// WebhookPayload is the JSON body posted to the webhook.
type WebhookPayload struct {
	contact.Submission
	Timestamp string `json:"timestamp"`
	Subject   string `json:"subject"`
}

// WebhookStrategy posts submissions to a generic webhook.
type WebhookStrategy struct {
	url    string
	secret string
	transport
}

// NewWebhookStrategy creates a webhook strategy. A non-empty secret signs
// each payload.
func NewWebhookStrategy(url, secret string, opts ...StrategyOption) *WebhookStrategy {
	return &WebhookStrategy{url: url, secret: secret, transport: newTransport(opts)}
}

// Name identifies the strategy in logs and results.
func (s *WebhookStrategy) Name() string { return "webhook" }

// Configured reports whether a real webhook URL is set.
func (s *WebhookStrategy) Configured() bool { return !IsPlaceholder(s.url) }

// Submit delivers sub with a timestamp and subject line, signed
// when a secret is set.
func (s *WebhookStrategy) Submit(ctx context.Context, sub contact.Submission) (*Result, error) {
	payload := WebhookPayload{
		Submission: sub,
		Timestamp:  s.now().UTC().Format(time.RFC3339),
		Subject:    WebhookSubject,
	}

	var opts []webhook.SendOption
	if s.secret != "" {
		opts = append(opts, webhook.WithSignature(s.secret))
	}

	if _, err := s.post(ctx, s.url, payload, opts...); err != nil {
		var se *webhook.StatusError
		if errors.As(err, &se) {
			return nil, &RejectedError{
				Strategy:   s.Name(),
				StatusCode: se.StatusCode,
				Message:    DefaultFailureMessage,
				Err:        err,
			}
		}
		return nil, err
	}

	return &Result{
		Message:  contact.SuccessMessage,
		Data:     &sub,
		Strategy: s.Name(),
	}, nil
}
