package client

import (
	"context"
	"errors"
	"strings"

	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/pkg/webhook"
)

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJSStrategy sends the submission through an EmailJS template.
type EmailJSStrategy struct {
	cfg EmailJSConfig
	transport
}

// NewEmailJSStrategy returns a strategy that sends through the
// EmailJS REST API. The access token is never sent.
func NewEmailJSStrategy(cfg EmailJSConfig, opts ...StrategyOption) *EmailJSStrategy {
	return &EmailJSStrategy{cfg: cfg, transport: newTransport(opts)}
}

// Name identifies the strategy in logs and results.
func (s *EmailJSStrategy) Name() string { return "emailjs" }

// Configured requires real service, template and public key values.
func (s *EmailJSStrategy) Configured() bool {
	return !IsPlaceholder(s.cfg.Endpoint) &&
		!IsPlaceholder(s.cfg.ServiceID) &&
		!IsPlaceholder(s.cfg.TemplateID) &&
		!IsPlaceholder(s.cfg.PublicKey)
}

// Submit sends sub as EmailJS template parameters.
func (s *EmailJSStrategy) Submit(ctx context.Context, sub contact.Submission) (*Result, error) {
	req := emailJSRequest{
		ServiceID:  s.cfg.ServiceID,
		TemplateID: s.cfg.TemplateID,
		UserID:     s.cfg.PublicKey,
		TemplateParams: map[string]string{
			"from_name":       sub.FirstName + " " + sub.LastName,
			"first_name":      sub.FirstName,
			"last_name":       sub.LastName,
			"from_email":      sub.Email,
			"reply_to":        sub.Email,
			"referral_source": sub.ReferralSource,
			"subject":         WebhookSubject,
		},
	}
	if !IsPlaceholder(s.cfg.AccessToken) {
		req.AccessToken = s.cfg.AccessToken
	}

	if _, err := s.post(ctx, s.cfg.Endpoint, req); err != nil {
		var se *webhook.StatusError
		if errors.As(err, &se) {
			msg := strings.TrimSpace(string(se.Body))
			if msg == "" {
				msg = DefaultFailureMessage
			}
			return nil, &RejectedError{
				Strategy:   s.Name(),
				StatusCode: se.StatusCode,
				Message:    msg,
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
