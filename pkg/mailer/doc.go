// Package mailer provides a provider-agnostic email interface with markdown
// template rendering.
//
// Sending is separated from rendering so providers can be swapped without
// touching templates:
//
//   - Sender: interface implemented by providers (resend, postmark, log)
//   - Renderer: converts markdown templates with YAML frontmatter into a
//     subject, a plain text body and an HTML body
//   - Mailer: combines a Sender and a Renderer
//
// # Usage
//
//	sender, err := resend.New(resend.Config{APIKey: os.Getenv("RESEND_API_KEY")})
//	if err != nil {
//		return err
//	}
//	renderer := mailer.NewRenderer(templates.FS)
//
//	m := mailer.New(sender, renderer, mailer.Config{
//		From: "noreply@example.com",
//		To:   "owner@example.com",
//	}, mailer.WithHTMLSanitizer(sanitizer.SanitizeHTML))
//
//	err = m.Send(ctx, mailer.SendParams{
//		Template: "contact.md",
//		Data:     submission,
//	})
//
// # Configuration
//
// Config is parsed from the environment with caarlos0/env:
//
//	EMAIL_PROVIDER           resend (default), postmark or log
//	EMAIL_FROM               sender address, required
//	EMAIL_FROM_NAME          optional display name
//	EMAIL_TO                 recipient of every message, required
//	MAILER_FALLBACK_SUBJECT  subject when a template sets none
//
// EMAIL_FROM and EMAIL_TO have no defaults. Config.Validate reports
// ErrNoFrom or ErrNoRecipient when either is missing, and
// Mailer.Configured reports false until both are set and a Sender exists.
// Wire Configured into a readiness check so an unconfigured deployment is
// kept out of rotation:
//
//	health.Require(m.Configured, mailer.ErrNotConfigured)
//
// A Mailer that is not configured reports ErrNotConfigured from Send
// without rendering anything, which lets callers tell a missing provider
// apart from a failed delivery.
//
// # Providers
//
//   - resend: Resend HTTP API, needs RESEND_API_KEY
//   - postmark: Postmark server API, needs POSTMARK_SERVER_TOKEN
//   - logsender: writes every message to a slog.Logger, for development
//
// Any func(ctx, *Email) error can be used through SenderFunc.
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: New message from {{.Name}}
//	---
//	Name: {{.Name}}
//	Email: {{.Email}}
//
// The body and the Subject value are executed with text/template. The
// processed markdown becomes the plain text part; goldmark converts it to
// HTML with hard line wraps. WithLayout wraps the HTML in an html/template
// layout that receives .Content and .Metadata.
//
// # Errors
//
// Render failures wrap ErrRenderFailed, ErrTemplateNotFound, ErrLayoutNotFound
// or ErrInvalidFrontmatter. Provider failures are joined with ErrSendFailed.
package mailer
