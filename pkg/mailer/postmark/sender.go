package postmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/ia4it/landing/pkg/mailer"
)

var (
	// ErrNoServerToken is returned by New without a server token.
	ErrNoServerToken = errors.New("postmark: server token is required")
	// ErrRejected: Postmark answered with a non-zero error code.
	ErrRejected      = errors.New("postmark: message rejected")
)

// Sender implements mailer.Sender using the Postmark API.
type Sender struct {
	client *postmark.Client
	config Config
}

// New creates a Postmark sender. Only the server token is needed to send.
func New(cfg Config) (*Sender, error) {
	if cfg.ServerToken == "" {
		return nil, ErrNoServerToken
	}

	client := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	if cfg.BaseURL != "" {
		client.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}

	return &Sender{client: client, config: cfg}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = s.config.SenderEmail
	}

	msg := postmark.Email{
		From:     from,
		To:       strings.Join(email.To, ","),
		ReplyTo:  email.ReplyTo,
		Subject:  email.Subject,
		TextBody: email.Text,
		HTMLBody: email.HTML,
		Headers:  headers(email.Headers),
	}
	// Postmark accepts a single tag per message.
	if names := email.Tags.Names(); len(names) > 0 {
		msg.Tag = names[0]
	}

	resp, err := s.client.SendEmail(ctx, msg)
	if err != nil {
		return fmt.Errorf("postmark: failed to send email: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("%w: %d - %s", ErrRejected, resp.ErrorCode, resp.Message)
	}
	return nil
}

func headers(h map[string]string) []postmark.Header {
	if len(h) == 0 {
		return nil
	}
	out := make([]postmark.Header, 0, len(h))
	for name, value := range h {
		out = append(out, postmark.Header{Name: name, Value: value})
	}
	return out
}
