// Package logsender is a mailer.Sender for local development that writes
// messages to a structured logger instead of delivering them.
package logsender

import (
	"context"
	"log/slog"

	"github.com/ia4it/landing/pkg/mailer"
)

// Sender logs each message at info level.
type Sender struct {
	logger *slog.Logger
}

// New creates a log-only sender. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "email would be sent",
		slog.String("from", email.From),
		slog.Any("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("body", email.Text),
	)
	return nil
}
