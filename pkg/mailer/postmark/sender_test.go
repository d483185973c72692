package postmark_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ia4it/landing/pkg/mailer"
	"github.com/ia4it/landing/pkg/mailer/postmark"
)

func TestNew_RequiresServerToken(t *testing.T) {
	t.Parallel()

	s, err := postmark.New(postmark.Config{AccountToken: "acc"})
	require.ErrorIs(t, err, postmark.ErrNoServerToken)
	assert.Nil(t, s)

	s, err = postmark.New(postmark.Config{ServerToken: "srv"})
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/email", r.URL.Path)
		assert.Equal(t, "srv", r.Header.Get("X-Postmark-Server-Token"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"To":"owner@example.com","MessageID":"abc","ErrorCode":0,"Message":"OK"}`))
	}))
	defer server.Close()

	s, err := postmark.New(postmark.Config{ServerToken: "srv", SenderEmail: "noreply@example.com", BaseURL: server.URL})
	require.NoError(t, err)

	err = s.Send(context.Background(), &mailer.Email{
		To:      []string{"owner@example.com"},
		Subject: "New Contact Form Submission",
		Text:    "Email: ada@example.com",
		Tags:    mailer.SimpleTags("contact"),
	})
	require.NoError(t, err)

	assert.Equal(t, "noreply@example.com", got["From"])
	assert.Equal(t, "owner@example.com", got["To"])
	assert.Equal(t, "New Contact Form Submission", got["Subject"])
	assert.Equal(t, "Email: ada@example.com", got["TextBody"])
	assert.Equal(t, "contact", got["Tag"])
}

func TestSender_Send_Rejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"ErrorCode":300,"Message":"Invalid email request"}`))
	}))
	defer server.Close()

	s, err := postmark.New(postmark.Config{ServerToken: "srv", BaseURL: server.URL})
	require.NoError(t, err)

	err = s.Send(context.Background(), &mailer.Email{
		From:    "noreply@example.com",
		To:      []string{"owner@example.com"},
		Subject: "s",
		Text:    "t",
	})
	require.Error(t, err)
}
