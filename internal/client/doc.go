// Package client submits contact forms to a remote endpoint.
//
// A Service walks an ordered chain of strategies and returns the first
// success. Each strategy is one way of delivering a submission:
//
//   - HandlerStrategy posts to <base>/functions/v1/send-contact-email with a
//     bearer token and relays the handler's own error messages.
//   - WebhookStrategy posts the submission with a timestamp and subject to
//     an arbitrary webhook, HMAC signed when a secret is set.
//   - EmailJSStrategy sends through the EmailJS REST API.
//
// All strategies share one webhook.Sender, so they reuse a single
// connection pool.
//
// # Modes
//
// NewFromConfig builds the chain from Config.Mode (CONTACT_MODE):
//
//	auto     handler when CONTACT_BASE_URL and CONTACT_TOKEN are set, else webhook
//	handler  [handler]
//	webhook  [webhook, emailjs]
//
// The handler validates submissions itself, so it never falls back to a
// channel that does not. Any other mode fails with ErrUnknownMode.
//
//	svc, err := client.NewFromConfig(cfg.Client, client.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	res, err := svc.Submit(ctx, sub)
//
// # Credentials
//
// Strategies whose credentials are empty or still template values such as
// YOUR_SERVICE_ID (see IsPlaceholder) are skipped without a request. When
// every strategy is skipped, Submit returns ErrNotConfigured.
//
// # Failures
//
// A strategy failure is a *RejectedError carrying the HTTP status and a
// message fit for the user. Submit moves on to the next strategy after a
// transport error or a 5xx answer. A 4xx answer ends the chain: the
// endpoint refused the submission itself and retrying elsewhere would only
// hide that. Cancelling ctx also ends the chain.
//
// When every attempt fails, Submit returns the first error, so the user
// sees the message from the preferred channel.
package client
