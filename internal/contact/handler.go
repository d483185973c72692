package contact

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ia4it/landing/internal/app"
	"github.com/ia4it/landing/pkg/mailer"
)

const (
	// RoutePath is the canonical submission endpoint.
	RoutePath         = "/send-contact-email"
	// FunctionRoutePath mirrors the hosted edge-function URL so clients
	// pointed at either base URL keep working.
	FunctionRoutePath = "/functions/v1/send-contact-email"

	// SuccessMessage is returned with every accepted submission.
	SuccessMessage = "Contact form submitted successfully"

	timestampLayout = "1/2/2006, 3:04:05 PM MST"
)

// Mailer is the part of *mailer.Mailer the handler needs.
type Mailer interface {
	Configured() bool
	Send(ctx context.Context, params mailer.SendParams) error
}

// Response is the body of a successful submission.
type Response struct {
	Message string     `json:"message"`
	Data    Submission `json:"data"`
}

// Handler serves the contact endpoint.
type Handler struct {
	mailer Mailer
	now    func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithClock overrides the clock used for the "Submitted at" line.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHandler creates a Handler. m may be an unconfigured mailer; requests
// then fail with "Email service not configured".
func NewHandler(m Mailer, opts ...HandlerOption) *Handler {
	h := &Handler{mailer: m, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements app.Handler.
func (h *Handler) Routes(r app.Router) {
	r.Any(RoutePath, h.submit)
	r.Any(FunctionRoutePath, h.submit)
}

type notification struct {
	Submission
	SubmittedAt string
}

func (h *Handler) submit(c app.Context) error {
	switch c.Request().Method {
	case http.MethodOptions:
		return c.NoContent(http.StatusOK)
	case http.MethodPost:
	default:
		return app.ErrMethodNotAllowed("Method not allowed")
	}

	var sub Submission
	if err := c.BindJSON(&sub); err != nil {
		return app.ErrInternal("Internal server error", app.WithError(err))
	}
	if err := sub.Validate(); err != nil {
		return app.ErrBadRequest(err.Error(), app.WithError(err))
	}

	if h.mailer == nil || !h.mailer.Configured() {
		return app.ErrInternal("Email service not configured", app.WithError(mailer.ErrNotConfigured))
	}

	err := h.mailer.Send(c, mailer.SendParams{
		Template: TemplateName,
		Data: notification{
			Submission:  sub,
			SubmittedAt: h.now().Format(timestampLayout),
		},
		Tags: mailer.SimpleTags("contact_form"),
	})
	switch {
	case errors.Is(err, mailer.ErrNotConfigured):
		return app.ErrInternal("Email service not configured", app.WithError(err))
	case err != nil:
		return app.ErrInternal("Internal server error", app.WithError(err))
	}

	c.LogInfo("contact form submitted", "referral_source", sub.ReferralSource)

	return c.JSON(http.StatusOK, Response{
		Message: SuccessMessage,
		Data:    sub,
	})
}
