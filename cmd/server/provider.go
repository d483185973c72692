package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ia4it/landing/internal/config"
	"github.com/ia4it/landing/pkg/mailer"
	"github.com/ia4it/landing/pkg/mailer/logsender"
	"github.com/ia4it/landing/pkg/mailer/postmark"
	"github.com/ia4it/landing/pkg/mailer/resend"
)

var errUnknownProvider = errors.New("unknown email provider")

// newSender picks the provider named by EMAIL_PROVIDER. A missing
// credential yields a nil sender: the server still starts and reports the
// mailer as not configured.
func newSender(cfg config.Server, log *slog.Logger) (mailer.Sender, error) {
	switch provider := strings.ToLower(strings.TrimSpace(cfg.Mailer.Provider)); provider {
	case "resend", "":
		s, err := resend.New(cfg.Resend)
		if errors.Is(err, resend.ErrNoAPIKey) {
			log.Warn("email provider not configured", "provider", "resend")
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postmark":
		s, err := postmark.New(cfg.Postmark)
		if errors.Is(err, postmark.ErrNoServerToken) {
			log.Warn("email provider not configured", "provider", provider)
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return s, nil
	case "log":
		return logsender.New(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownProvider, cfg.Mailer.Provider)
	}
}
