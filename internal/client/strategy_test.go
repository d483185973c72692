package client_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ia4it/landing/internal/client"
	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/pkg/webhook"
)

var submission = contact.Submission{
	FirstName:      "Ada",
	LastName:       "Lovelace",
	Email:          "ada@example.com",
	ReferralSource: "Newsletter",
}

func TestHandlerStrategy_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/functions/v1/send-contact-email", r.URL.Path)
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got contact.Submission
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, submission, got)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Contact form submitted successfully",
			"data":    got,
		})
	}))
	defer srv.Close()

	s := client.NewHandlerStrategy(srv.URL+"/", "anon-key")
	require.True(t, s.Configured())
	assert.Equal(t, srv.URL+"/functions/v1/send-contact-email", s.Endpoint())

	res, err := s.Submit(t.Context(), submission)
	require.NoError(t, err)
	assert.Equal(t, "Contact form submitted successfully", res.Message)
	require.NotNil(t, res.Data)
	assert.Equal(t, submission, *res.Data)
	assert.Equal(t, "handler", res.Strategy)
}

func TestHandlerStrategy_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error field", http.StatusBadRequest, `{"error":"Invalid email format"}`, "Invalid email format"},
		{"empty error", http.StatusInternalServerError, `{"error":""}`, client.DefaultFailureMessage},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, client.DefaultFailureMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := client.NewHandlerStrategy(srv.URL, "anon-key").Submit(t.Context(), submission)
			require.Error(t, err)
			assert.EqualError(t, err, tt.message)

			re, ok := client.AsRejected(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, re.StatusCode)
			assert.ErrorIs(t, err, webhook.ErrDeliveryFailed)
			assert.Contains(t, re.Detail(), "handler")
		})
	}
}

func TestHandlerStrategy_InvalidResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "OK")
	}))
	defer srv.Close()

	_, err := client.NewHandlerStrategy(srv.URL, "anon-key").Submit(t.Context(), submission)
	require.ErrorIs(t, err, client.ErrInvalidResponse)
}

func TestHandlerStrategy_Configured(t *testing.T) {
	t.Parallel()

	assert.False(t, client.NewHandlerStrategy("", "key").Configured())
	assert.False(t, client.NewHandlerStrategy("https://x.supabase.co", "").Configured())
	assert.False(t, client.NewHandlerStrategy("https://x.supabase.co", "YOUR_ANON_KEY").Configured())
}

func TestWebhookStrategy(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		ts := r.Header.Get(webhook.HeaderTimestamp)
		mac := hmac.New(sha256.New, []byte("s3cret"))
		mac.Write([]byte(ts + "."))
		mac.Write(body)
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), r.Header.Get(webhook.HeaderSignature))

		assert.JSONEq(t, `{
			"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","referralSource":"Newsletter",
			"timestamp":"2025-03-14T15:09:26Z",
			"subject":"New Contact Form Submission"
		}`, string(body))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := client.NewWebhookStrategy(srv.URL, "s3cret", client.WithClock(func() time.Time { return now }))
	require.True(t, s.Configured())

	res, err := s.Submit(t.Context(), submission)
	require.NoError(t, err)
	assert.Equal(t, "webhook", res.Strategy)
	assert.Equal(t, contact.SuccessMessage, res.Message)
}

func TestWebhookStrategy_Unsigned(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(webhook.HeaderSignature))
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := client.NewWebhookStrategy(srv.URL, "").Submit(t.Context(), submission)
	re, ok := client.AsRejected(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, re.StatusCode)
	assert.Equal(t, client.DefaultFailureMessage, re.Message)
}

func TestEmailJSStrategy(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "service_1", got["service_id"])
		assert.Equal(t, "template_1", got["template_id"])
		assert.Equal(t, "public_1", got["user_id"])
		assert.NotContains(t, got, "accessToken")

		params, _ := got["template_params"].(map[string]any)
		assert.Equal(t, "Ada Lovelace", params["from_name"])
		assert.Equal(t, "ada@example.com", params["reply_to"])
		assert.Equal(t, "Newsletter", params["referral_source"])

		_, _ = io.WriteString(w, "OK")
	}))
	defer srv.Close()

	s := client.NewEmailJSStrategy(client.EmailJSConfig{
		ServiceID:   "service_1",
		TemplateID:  "template_1",
		PublicKey:   "public_1",
		AccessToken: "YOUR_ACCESS_TOKEN",
		Endpoint:    srv.URL,
	})
	require.True(t, s.Configured())

	res, err := s.Submit(t.Context(), submission)
	require.NoError(t, err)
	assert.Equal(t, "emailjs", res.Strategy)
}

func TestEmailJSStrategy_Rejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, "The Public Key is invalid\n")
	}))
	defer srv.Close()

	_, err := client.NewEmailJSStrategy(client.EmailJSConfig{
		ServiceID: "s", TemplateID: "t", PublicKey: "p", Endpoint: srv.URL,
	}).Submit(t.Context(), submission)
	assert.EqualError(t, err, "The Public Key is invalid")
}

func TestIsPlaceholder(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", "  ", "YOUR_SERVICE_ID", "your_public_key", "your-webhook-url", "changeme", "PLACEHOLDER"} {
		assert.True(t, client.IsPlaceholder(v), v)
	}
	for _, v := range []string{"service_abc123", "https://hooks.example.com/contact", "yours"} {
		assert.False(t, client.IsPlaceholder(v), v)
	}
}
