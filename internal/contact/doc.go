// Package contact accepts contact form submissions over HTTP, validates them
// and forwards them as an email through pkg/mailer.
//
// # Endpoints
//
// The handler answers on RoutePath and on FunctionRoutePath, so clients
// configured with either base URL reach it:
//
//	POST /send-contact-email
//	POST /functions/v1/send-contact-email
//
//	{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","referralSource":"Newsletter"}
//
// OPTIONS answers 200 with an empty body for preflight requests. Any other
// method gets 405.
//
// # Validation
//
// Submission.Validate checks, in order:
//
//   - every field is non-empty; whitespace counts as a value
//   - the email has the shape local@domain.tld with no whitespace or extra @
//
// The first failure is returned as 400 with ErrMissingFields or
// ErrInvalidEmail as the message. The referral source is free text on the
// server; only the form restricts it to ReferralSources.
//
// # Responses
//
// Every response is JSON:
//
//	200 {"message":"Contact form submitted successfully","data":{...}}
//	400 {"error":"All fields are required"}
//	500 {"error":"Email service not configured"}
//	500 {"error":"Internal server error"}
//
// A body that is not exactly one JSON object, an unconfigured mailer and
// provider failures all answer 500. The cause is logged and never sent to
// the client.
//
// # Notification
//
// Accepted submissions are rendered with the embedded TemplateName template
// (see Templates) and sent to the configured recipient. The template
// receives the submission fields plus SubmittedAt, formatted like
// "3/14/2025, 3:09:26 PM UTC". Nothing is stored.
//
// # Wiring
//
//	m := mailer.New(sender, mailer.NewRenderer(contact.Templates()), cfg.Mailer)
//	a := app.New(app.WithHandlers(contact.NewHandler(m)))
package contact
