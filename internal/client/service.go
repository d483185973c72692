package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/pkg/logger"
	"github.com/ia4it/landing/pkg/webhook"
)

// Service submits contact forms through an ordered list of strategies.
type Service struct {
	strategies []Strategy
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for per-strategy failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStrategies appends strategies in priority order.
func WithStrategies(strategies ...Strategy) Option {
	return func(s *Service) { s.strategies = append(s.strategies, strategies...) }
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{logger: logger.NewNope()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deployment modes accepted by NewFromConfig.
const (
	// ModeAuto picks ModeHandler when the handler is configured and
	// ModeWebhook otherwise.
	ModeAuto = "auto"
	// ModeHandler posts to the contact handler only. Its answer is final.
	ModeHandler = "handler"
	// ModeWebhook posts to the webhook and falls back to EmailJS once.
	ModeWebhook = "webhook"
)

// NewFromConfig builds the strategy chain for cfg.Mode. The strategies
// share one sender and its connection pool.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	topts := []StrategyOption{
		WithSender(webhook.NewSender()),
		WithRequestTimeout(cfg.Timeout),
	}
	handler := NewHandlerStrategy(cfg.BaseURL, cfg.Token, topts...)

	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" || mode == ModeAuto {
		mode = ModeWebhook
		if handler.Configured() {
			mode = ModeHandler
		}
	}

	var chain []Strategy
	switch mode {
	case ModeHandler:
		chain = []Strategy{handler}
	case ModeWebhook:
		chain = []Strategy{
			NewWebhookStrategy(cfg.WebhookURL, cfg.WebhookSecret, topts...),
			NewEmailJSStrategy(cfg.EmailJS, topts...),
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}

	return New(append([]Option{WithStrategies(chain...)}, opts...)...), nil
}

// Configured reports whether at least one strategy can be attempted.
func (s *Service) Configured() bool {
	for _, st := range s.strategies {
		if st.Configured() {
			return true
		}
	}
	return false
}

// Submit tries each configured strategy in order. It returns the first
// success, or the first failure when all attempts fail. A 4xx rejection
// ends the chain: the endpoint refused the submission itself.
func (s *Service) Submit(ctx context.Context, sub contact.Submission) (*Result, error) {
	var (
		firstErr  error
		attempted int
	)

	for _, st := range s.strategies {
		if !st.Configured() {
			s.logger.DebugContext(ctx, "contact strategy skipped", "strategy", st.Name())
			continue
		}
		attempted++

		res, err := st.Submit(ctx, sub)
		if err == nil {
			s.logger.InfoContext(ctx, "contact form submitted", "strategy", st.Name())
			return res, nil
		}

		s.logger.WarnContext(ctx, "contact strategy failed", "strategy", st.Name(), "error", err)
		if firstErr == nil {
			firstErr = err
		}
		if ctx.Err() != nil || refused(err) {
			break
		}
	}

	if attempted == 0 {
		return nil, ErrNotConfigured
	}
	s.logger.ErrorContext(ctx, "contact form submission error", "error", firstErr)
	return nil, firstErr
}

func refused(err error) bool {
	re, ok := AsRejected(err)
	return ok && re.StatusCode >= http.StatusBadRequest && re.StatusCode < http.StatusInternalServerError
}
