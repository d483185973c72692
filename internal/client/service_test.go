package client_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ia4it/landing/internal/client"
	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/pkg/logger"
)

type MockStrategy struct {
	mock.Mock
	name string
}

func (m *MockStrategy) Name() string { return m.name }

func (m *MockStrategy) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockStrategy) Submit(ctx context.Context, sub contact.Submission) (*client.Result, error) {
	args := m.Called(ctx, sub)
	res, _ := args.Get(0).(*client.Result)
	return res, args.Error(1)
}

func TestService_FirstSuccessWins(t *testing.T) {
	t.Parallel()

	first := &MockStrategy{name: "first"}
	first.On("Configured").Return(true)
	first.On("Submit", mock.Anything, submission).Return(&client.Result{Message: "ok", Strategy: "first"}, nil)

	second := &MockStrategy{name: "second"}

	svc := client.New(client.WithStrategies(first, second))
	res, err := svc.Submit(t.Context(), submission)

	require.NoError(t, err)
	assert.Equal(t, "first", res.Strategy)
	first.AssertExpectations(t)
	second.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestService_FallsBackAndReturnsFirstError(t *testing.T) {
	t.Parallel()

	errWebhook := errors.New("webhook down")

	primary := &MockStrategy{name: "webhook"}
	primary.On("Configured").Return(true)
	primary.On("Submit", mock.Anything, submission).Return(nil, errWebhook)

	fallback := &MockStrategy{name: "emailjs"}
	fallback.On("Configured").Return(true)
	fallback.On("Submit", mock.Anything, submission).Return(nil, errors.New("emailjs down"))

	var logs bytes.Buffer
	svc := client.New(
		client.WithStrategies(primary, fallback),
		client.WithLogger(logger.NewWithWriter(&logs, slog.LevelDebug)),
	)

	_, err := svc.Submit(t.Context(), submission)
	require.ErrorIs(t, err, errWebhook)
	primary.AssertExpectations(t)
	fallback.AssertExpectations(t)
	assert.Contains(t, logs.String(), "emailjs down")
	assert.Contains(t, logs.String(), "contact form submission error")
}

func TestService_FallbackSucceeds(t *testing.T) {
	t.Parallel()

	primary := &MockStrategy{name: "webhook"}
	primary.On("Configured").Return(true)
	primary.On("Submit", mock.Anything, submission).Return(nil, errors.New("webhook down"))

	fallback := &MockStrategy{name: "emailjs"}
	fallback.On("Configured").Return(true)
	fallback.On("Submit", mock.Anything, submission).Return(&client.Result{Strategy: "emailjs"}, nil)

	res, err := client.New(client.WithStrategies(primary, fallback)).Submit(t.Context(), submission)
	require.NoError(t, err)
	assert.Equal(t, "emailjs", res.Strategy)
}

func TestService_SkipsUnconfigured(t *testing.T) {
	t.Parallel()

	errWebhook := errors.New("webhook down")

	primary := &MockStrategy{name: "webhook"}
	primary.On("Configured").Return(true)
	primary.On("Submit", mock.Anything, submission).Return(nil, errWebhook)

	placeholder := &MockStrategy{name: "emailjs"}
	placeholder.On("Configured").Return(false)

	_, err := client.New(client.WithStrategies(primary, placeholder)).Submit(t.Context(), submission)
	require.ErrorIs(t, err, errWebhook)
	placeholder.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestService_NothingConfigured(t *testing.T) {
	t.Parallel()

	svc, err := client.NewFromConfig(client.Config{
		EmailJS: client.EmailJSConfig{ServiceID: "YOUR_SERVICE_ID", Endpoint: "https://api.emailjs.com/api/v1.0/email/send"},
	})
	require.NoError(t, err)
	assert.False(t, svc.Configured())

	_, err = svc.Submit(t.Context(), submission)
	require.ErrorIs(t, err, client.ErrNotConfigured)
}

func TestService_StopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())

	primary := &MockStrategy{name: "webhook"}
	primary.On("Configured").Return(true)
	primary.On("Submit", mock.Anything, submission).
		Run(func(mock.Arguments) { cancel() }).
		Return(nil, context.Canceled)

	fallback := &MockStrategy{name: "emailjs"}
	fallback.On("Configured").Return(true)

	_, err := client.New(client.WithStrategies(primary, fallback)).Submit(ctx, submission)
	require.ErrorIs(t, err, context.Canceled)
	fallback.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestNewFromConfig_HandlerAgainstServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Contact form submitted successfully"}`))
	}))
	defer srv.Close()

	svc, err := client.NewFromConfig(client.Config{BaseURL: srv.URL, Token: "anon-key"})
	require.NoError(t, err)
	require.True(t, svc.Configured())

	res, err := svc.Submit(t.Context(), submission)
	require.NoError(t, err)
	assert.Equal(t, "handler", res.Strategy)
	assert.Equal(t, "Contact form submitted successfully", res.Message)
}

func TestService_ClientErrorEndsChain(t *testing.T) {
	t.Parallel()

	rejected := &client.RejectedError{Strategy: "handler", StatusCode: http.StatusBadRequest, Message: "Invalid email format"}

	primary := &MockStrategy{name: "handler"}
	primary.On("Configured").Return(true)
	primary.On("Submit", mock.Anything, submission).Return(nil, rejected)

	fallback := &MockStrategy{name: "webhook"}
	fallback.On("Configured").Return(true)

	_, err := client.New(client.WithStrategies(primary, fallback)).Submit(t.Context(), submission)
	require.ErrorIs(t, err, rejected)
	assert.Equal(t, "Invalid email format", err.Error())
	fallback.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestService_ServerErrorFallsBack(t *testing.T) {
	t.Parallel()

	primary := &MockStrategy{name: "webhook"}
	primary.On("Configured").Return(true)
	primary.On("Submit", mock.Anything, submission).
		Return(nil, &client.RejectedError{Strategy: "webhook", StatusCode: http.StatusBadGateway, Message: client.DefaultFailureMessage})

	fallback := &MockStrategy{name: "emailjs"}
	fallback.On("Configured").Return(true)
	fallback.On("Submit", mock.Anything, submission).Return(&client.Result{Strategy: "emailjs"}, nil)

	res, err := client.New(client.WithStrategies(primary, fallback)).Submit(t.Context(), submission)
	require.NoError(t, err)
	assert.Equal(t, "emailjs", res.Strategy)
}

func TestNewFromConfig_HandlerRejectionIsFinal(t *testing.T) {
	t.Parallel()

	handler := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid email format"}`))
	}))
	defer handler.Close()

	var webhookHits atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhookHits.Add(1)
	}))
	defer hook.Close()

	svc, err := client.NewFromConfig(client.Config{
		BaseURL:    handler.URL,
		Token:      "anon-key",
		WebhookURL: hook.URL,
	})
	require.NoError(t, err)

	bad := submission
	bad.Email = "foo"
	res, err := svc.Submit(t.Context(), bad)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Equal(t, "Invalid email format", err.Error())
	assert.Zero(t, webhookHits.Load())
}

func TestNewFromConfig_Modes(t *testing.T) {
	t.Parallel()

	var webhookHits atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webhookHits.Add(1)
	}))
	defer hook.Close()

	t.Run("webhook mode ignores handler", func(t *testing.T) {
		svc, err := client.NewFromConfig(client.Config{
			Mode:       client.ModeWebhook,
			BaseURL:    "http://127.0.0.1:1",
			Token:      "anon-key",
			WebhookURL: hook.URL,
		})
		require.NoError(t, err)

		res, err := svc.Submit(t.Context(), submission)
		require.NoError(t, err)
		assert.Equal(t, "webhook", res.Strategy)
		assert.EqualValues(t, 1, webhookHits.Load())
	})

	t.Run("handler mode without credentials", func(t *testing.T) {
		svc, err := client.NewFromConfig(client.Config{Mode: client.ModeHandler, WebhookURL: hook.URL})
		require.NoError(t, err)
		assert.False(t, svc.Configured())
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := client.NewFromConfig(client.Config{Mode: "smtp"})
		require.ErrorIs(t, err, client.ErrUnknownMode)
	})
}
