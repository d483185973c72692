package logsender_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ia4it/landing/pkg/mailer"
	"github.com/ia4it/landing/pkg/mailer/logsender"
)

func TestSender_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := logsender.New(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := s.Send(context.Background(), &mailer.Email{
		From:    "noreply@example.com",
		To:      []string{"owner@example.com"},
		Subject: "New Contact Form Submission",
		Text:    "Name: Ada Lovelace",
	})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "email would be sent", entry["msg"])
	assert.Equal(t, "New Contact Form Submission", entry["subject"])
	assert.Equal(t, "Name: Ada Lovelace", entry["body"])
	assert.Equal(t, []any{"owner@example.com"}, entry["to"])
}

func TestSender_Send_Invalid(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := logsender.New(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := s.Send(context.Background(), &mailer.Email{Subject: "x", Text: "y"})
	require.ErrorIs(t, err, mailer.ErrNoRecipient)
	assert.Zero(t, buf.Len())

	assert.NotNil(t, logsender.New(nil))
}
