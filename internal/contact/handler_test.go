package contact_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ia4it/landing/internal/app"
	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/middlewares"
	"github.com/ia4it/landing/pkg/logger"
	"github.com/ia4it/landing/pkg/mailer"
	"github.com/ia4it/landing/pkg/sanitizer"
)

const validBody = `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","referralSource":"Newsletter"}`

type recordingSender struct {
	mu     sync.Mutex
	emails []*mailer.Email
	err    error
}

func (s *recordingSender) Send(_ context.Context, email *mailer.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = append(s.emails, email)
	return s.err
}

func (s *recordingSender) sent() []*mailer.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*mailer.Email(nil), s.emails...)
}

type fixture struct {
	app    *app.App
	sender *recordingSender
	logs   *bytes.Buffer
}

func newFixture(t *testing.T, sender *recordingSender) *fixture {
	t.Helper()

	cfg := mailer.Config{
		From:            "noreply@ia4it.example",
		To:              "inbox@ia4it.example",
		FallbackSubject: "Notification",
	}

	var s mailer.Sender
	if sender != nil {
		s = sender
	}
	m := mailer.New(s, mailer.NewRenderer(contact.Templates()), cfg,
		mailer.WithHTMLSanitizer(sanitizer.SanitizeHTML))

	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	logs := &bytes.Buffer{}

	a := app.New(
		app.WithLogger(logger.NewWithWriter(logs, slog.LevelDebug)),
		app.WithMiddleware(middlewares.CORS()),
		app.WithHandlers(contact.NewHandler(m, contact.WithClock(func() time.Time { return now }))),
	)
	return &fixture{app: a, sender: sender, logs: logs}
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.app.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body app.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestHandler_Success(t *testing.T) {
	t.Parallel()

	for _, path := range []string{contact.RoutePath, contact.FunctionRoutePath} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, &recordingSender{})
			rec := f.do(http.MethodPost, path, validBody)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.JSONEq(t, `{
				"message": "Contact form submitted successfully",
				"data": {"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","referralSource":"Newsletter"}
			}`, rec.Body.String())

			sent := f.sender.sent()
			require.Len(t, sent, 1)
			email := sent[0]
			assert.Equal(t, "noreply@ia4it.example", email.From)
			assert.Equal(t, []string{"inbox@ia4it.example"}, email.To)
			assert.Equal(t, "New Contact Form Submission", email.Subject)
			assert.Equal(t, "New contact form submission received:\n\n"+
				"Name: Ada Lovelace\n"+
				"Email: ada@example.com\n"+
				"How they heard about us: Newsletter\n\n"+
				"Submitted at: 3/14/2025, 3:09:26 PM UTC\n", email.Text)
			assert.Contains(t, email.HTML, "Name: Ada Lovelace")
			assert.Equal(t, []string{"contact_form"}, email.Tags.Names())
		})
	}
}

func TestHandler_Options(t *testing.T) {
	t.Parallel()

	f := newFixture(t, &recordingSender{})
	rec := f.do(http.MethodOptions, contact.RoutePath, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Empty(t, f.sender.sent())
}

func TestHandler_OptionsWithoutCORSMiddleware(t *testing.T) {
	t.Parallel()

	a := app.New(app.WithHandlers(contact.NewHandler(nil)))
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, contact.RoutePath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	f := newFixture(t, &recordingSender{})
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := f.do(method, contact.RoutePath, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, "Method not allowed", errorMessage(t, rec))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestHandler_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing field", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`, "All fields are required"},
		{"empty field", `{"firstName":"","lastName":"Lovelace","email":"ada@example.com","referralSource":"Other"}`, "All fields are required"},
		{"no at sign", `{"firstName":"Ada","lastName":"Lovelace","email":"foo","referralSource":"Other"}`, "Invalid email format"},
		{"no tld", `{"firstName":"Ada","lastName":"Lovelace","email":"foo@bar","referralSource":"Other"}`, "Invalid email format"},
		{"space", `{"firstName":"Ada","lastName":"Lovelace","email":"foo bar@baz.com","referralSource":"Other"}`, "Invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, &recordingSender{})
			rec := f.do(http.MethodPost, contact.RoutePath, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, errorMessage(t, rec))
			assert.Empty(t, f.sender.sent())
		})
	}
}

func TestHandler_MalformedJSON(t *testing.T) {
	t.Parallel()

	f := newFixture(t, &recordingSender{})

	rec := f.do(http.MethodPost, contact.RoutePath, `{"firstName":`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", errorMessage(t, rec))

	rec = f.do(http.MethodPost, contact.RoutePath, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = f.do(http.MethodPost, contact.RoutePath, validBody+" garbage")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", errorMessage(t, rec))

	rec = f.do(http.MethodPost, contact.RoutePath, validBody+validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Empty(t, f.sender.sent())
}

func TestHandler_NotConfigured(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	rec := f.do(http.MethodPost, contact.RoutePath, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Email service not configured", errorMessage(t, rec))
	assert.Contains(t, f.logs.String(), "email service not configured")
}

func TestHandler_ProviderFailure(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{err: errors.New("resend: 403 domain not verified")}
	f := newFixture(t, sender)
	rec := f.do(http.MethodPost, contact.RoutePath, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", errorMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "domain not verified")
	assert.Len(t, sender.sent(), 1)
	assert.Contains(t, f.logs.String(), "domain not verified")
}

type stubMailer struct {
	configured bool
	err        error
}

func (m stubMailer) Configured() bool { return m.configured }

func (m stubMailer) Send(context.Context, mailer.SendParams) error { return m.err }

func TestHandler_MailerReportsNotConfigured(t *testing.T) {
	t.Parallel()

	a := app.New(app.WithHandlers(contact.NewHandler(stubMailer{configured: true, err: mailer.ErrNotConfigured})))
	rec := httptest.NewRecorder()
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, contact.RoutePath, strings.NewReader(validBody)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Email service not configured", errorMessage(t, rec))
}
