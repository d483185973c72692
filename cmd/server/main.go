// Command server runs the contact form backend.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/ia4it/landing/internal/app"
	"github.com/ia4it/landing/internal/config"
	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/middlewares"
	"github.com/ia4it/landing/pkg/health"
	"github.com/ia4it/landing/pkg/logger"
	"github.com/ia4it/landing/pkg/mailer"
	"github.com/ia4it/landing/pkg/sanitizer"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg config.Server
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Logger, middlewares.RequestIDExtractor())
	defer logger.Flush(2 * time.Second)

	sender, err := newSender(cfg, log)
	if err != nil {
		return err
	}
	if err := cfg.Mailer.Validate(); err != nil {
		log.Warn("email addresses not configured", "error", err)
	}

	m := mailer.New(sender, mailer.NewRenderer(contact.Templates()), cfg.Mailer,
		mailer.WithHTMLSanitizer(sanitizer.SanitizeHTML),
	)

	err = newApp(log, m).Run(ctx, cfg.Addr,
		app.ShutdownTimeout(cfg.ShutdownTimeout),
		app.OnListen(func(addr net.Addr) {
			log.Info("server started",
				"addr", addr.String(),
				"provider", cfg.Mailer.Provider,
				"mailer_configured", m.Configured(),
			)
		}),
	)
	if err != nil {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}

func newApp(log *slog.Logger, m *mailer.Mailer) *app.App {
	return app.New(
		app.WithLogger(log),
		app.WithMiddleware(
			middlewares.RequestID(),
			middlewares.CORS(),
			middlewares.Recover(),
		),
		app.WithHealthChecks(
			app.WithReadinessCheck("mailer", health.Require(m.Configured, mailer.ErrNotConfigured)),
		),
		app.WithHandlers(contact.NewHandler(m)),
		app.WithNotFoundHandler(func(app.Context) error {
			return app.ErrNotFound("Not found")
		}),
		app.WithMethodNotAllowedHandler(func(app.Context) error {
			return app.ErrMethodNotAllowed("Method not allowed")
		}),
	)
}
