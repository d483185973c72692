package client

import (
	"context"
	"time"

	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/pkg/webhook"
)

// Strategy is one way of delivering a submission.
type Strategy interface {
	Name() string
	// Configured reports whether the strategy has usable credentials.
	Configured() bool
	Submit(ctx context.Context, sub contact.Submission) (*Result, error)
}

// Result is what a successful strategy returns.
type Result struct {
	Message  string              `json:"message"`
	Data     *contact.Submission `json:"data,omitempty"`
	Strategy string              `json:"-"`
}

type transport struct {
	sender  *webhook.Sender
	timeout time.Duration
	now     func() time.Time
}

func newTransport(opts []StrategyOption) transport {
	t := transport{now: time.Now}
	for _, opt := range opts {
		opt(&t)
	}
	if t.sender == nil {
		t.sender = webhook.NewSender()
	}
	return t
}

func (t transport) post(ctx context.Context, endpoint string, data any, opts ...webhook.SendOption) ([]byte, error) {
	if t.timeout > 0 {
		opts = append(opts, webhook.WithTimeout(t.timeout))
	}
	return t.sender.Send(ctx, endpoint, data, opts...)
}

// StrategyOption configures the transport shared by all strategies.
type StrategyOption func(*transport)

// WithSender replaces the default webhook sender, typically to share one
// connection pool between strategies.
func WithSender(s *webhook.Sender) StrategyOption {
	return func(t *transport) {
		if s != nil {
			t.sender = s
		}
	}
}

// WithRequestTimeout bounds every request. Zero disables the bound.
func WithRequestTimeout(d time.Duration) StrategyOption {
	return func(t *transport) { t.timeout = d }
}

// WithClock overrides the clock used for payload timestamps.
func WithClock(now func() time.Time) StrategyOption {
	return func(t *transport) {
		if now != nil {
			t.now = now
		}
	}
}
