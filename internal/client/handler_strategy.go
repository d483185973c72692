package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ia4it/landing/internal/contact"
	"github.com/ia4it/landing/pkg/webhook"
)

// HandlerStrategy posts to the contact handler.
type HandlerStrategy struct {
	baseURL string
	token   string
	transport
}

// NewHandlerStrategy creates a strategy for the handler at baseURL.
func NewHandlerStrategy(baseURL, token string, opts ...StrategyOption) *HandlerStrategy {
	return &HandlerStrategy{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		transport: newTransport(opts),
	}
}

// Name identifies the strategy in logs and results.
func (s *HandlerStrategy) Name() string { return "handler" }

// Configured reports whether both the base URL and anon key are real values.
func (s *HandlerStrategy) Configured() bool {
	return !IsPlaceholder(s.baseURL) && !IsPlaceholder(s.token)
}

// Endpoint returns the full URL submissions are posted to.
func (s *HandlerStrategy) Endpoint() string {
	return s.baseURL + contact.FunctionRoutePath
}

// Submit posts sub to the submission handler. A non-2xx answer
// becomes a *RejectedError carrying the handler's error text.
func (s *HandlerStrategy) Submit(ctx context.Context, sub contact.Submission) (*Result, error) {
	body, err := s.post(ctx, s.Endpoint(), sub,
		webhook.WithHeader("Authorization", "Bearer "+s.token),
	)
	if err != nil {
		var se *webhook.StatusError
		if errors.As(err, &se) {
			return nil, &RejectedError{
				Strategy:   s.Name(),
				StatusCode: se.StatusCode,
				Message:    errorMessage(se.Body),
				Err:        err,
			}
		}
		return nil, err
	}

	var res Result
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	res.Strategy = s.Name()
	return &res, nil
}

// errorMessage extracts {"error": "..."} from a response body.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		return DefaultFailureMessage
	}
	return payload.Error
}
