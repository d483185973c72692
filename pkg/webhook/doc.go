// Package webhook delivers JSON payloads to HTTP endpoints in a single attempt.
//
// The package handles the mechanics of one outbound POST: JSON encoding,
// custom headers, optional HMAC-SHA256 signing and classification of the
// response. Retries and fallbacks belong to the caller.
//
// # Basic Usage
//
//	sender := webhook.NewSender()
//
//	body, err := sender.Send(ctx, "https://hooks.example.com/contact", payload,
//	    webhook.WithHeader("Authorization", "Bearer "+token),
//	    webhook.WithSignature(secret),
//	    webhook.WithTimeout(10*time.Second),
//	)
//
// A Sender holds a pooled http.Client and is safe for concurrent use. Share
// one per process so every caller reuses the same connections.
//
// Every request carries Content-Type and Accept of application/json and a
// fixed User-Agent. Headers added with WithHeader override them.
//
// # Responses
//
// On a 2xx answer Send returns the response body, capped at 64 KiB. A
// non-2xx answer is reported as *StatusError, which keeps the status code
// and the same bounded body:
//
//	var se *webhook.StatusError
//	if errors.As(err, &se) {
//	    log.Warn("endpoint refused", "status", se.StatusCode, "body", string(se.Body))
//	}
//
// StatusError unwraps to ErrDeliveryFailed, so errors.Is(err,
// ErrDeliveryFailed) matches both refusals and transport failures.
//
// # Errors
//
//   - ErrInvalidURL: the endpoint is empty, unparsable, not http(s) or has
//     no host; nothing is sent
//   - ErrInvalidPayload: data does not marshal to JSON
//   - ErrTimeout: the WithTimeout deadline passed while ctx itself was
//     still live
//   - ErrDeliveryFailed: the transport failed or the endpoint answered
//     non-2xx
//
// Cancelling ctx yields ErrDeliveryFailed wrapping context.Canceled.
//
// # Signatures
//
// WithSignature adds three headers:
//
//	X-Webhook-ID         random delivery ID
//	X-Webhook-Timestamp  Unix seconds
//	X-Webhook-Signature  hex(HMAC-SHA256(secret, timestamp + "." + body))
//
// Receivers recompute the HMAC over the raw body with the shared secret and
// compare it in constant time, rejecting stale timestamps to stop replays.
// SignPayload exposes the same computation for callers that build their
// own requests.
package webhook
