package mailer

import (
	"context"
	"errors"
)

// Mailer renders templates and hands the result to a Sender.
// A Mailer without a Sender or without sender and recipient addresses
// reports ErrNotConfigured and never renders.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
	sanitize func(string) string
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithHTMLSanitizer filters rendered HTML before it is sent.
func WithHTMLSanitizer(fn func(string) string) Option {
	return func(m *Mailer) {
		m.sanitize = fn
	}
}

// New creates a Mailer. sender may be nil.
func New(sender Sender, renderer *Renderer, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		sender:   sender,
		renderer: renderer,
		config:   cfg,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configured reports whether a provider is attached and the sender and
// recipient addresses are set.
func (m *Mailer) Configured() bool {
	return m != nil && m.sender != nil && m.config.Validate() == nil
}

// SendParams describes a templated email.
type SendParams struct {
	Template string
	Data     any

	// Optional overrides. To defaults to the configured recipient.
	To      []string
	Subject string
	ReplyTo string
	Tags    Tags
}

// Send renders params.Template and dispatches it.
// Subject resolution: params.Subject > template frontmatter > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if !m.Configured() {
		return ErrNotConfigured
	}

	result, err := m.renderer.Render(params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		subject = result.Subject
	}
	if subject == "" {
		subject = m.config.FallbackSubject
	}

	to := params.To
	if len(to) == 0 && m.config.To != "" {
		to = []string{m.config.To}
	}

	html := result.HTML
	if m.sanitize != nil {
		html = m.sanitize(html)
	}

	return m.SendRaw(ctx, &Email{
		From:    m.config.Sender(),
		To:      to,
		ReplyTo: params.ReplyTo,
		Subject: subject,
		Text:    result.Text,
		HTML:    html,
		Tags:    params.Tags,
	})
}

// SendRaw validates and dispatches a pre-built email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if !m.Configured() {
		return ErrNotConfigured
	}
	if err := email.Validate(); err != nil {
		return err
	}
	if email.From == "" {
		email.From = m.config.Sender()
	}
	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
