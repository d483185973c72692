package mailer

import "errors"

var (
	// ErrNotConfigured is returned by Send when the Mailer has no Sender or
	// its Config fails Validate. Nothing is rendered or sent.
	ErrNotConfigured      = errors.New("email service not configured")
	// ErrNoFrom: no sender address is configured.
	ErrNoFrom             = errors.New("email sender address is required")
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient        = errors.New("email must have at least one recipient")
	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject          = errors.New("email must have a subject")
	// ErrNoContent indicates neither text nor HTML content was provided.
	ErrNoContent          = errors.New("email must have text or HTML content")
	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound   = errors.New("template not found")
	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound     = errors.New("layout not found")
	// ErrRenderFailed wraps template execution errors.
	ErrRenderFailed       = errors.New("failed to render template")
	// ErrSendFailed wraps provider errors.
	ErrSendFailed         = errors.New("failed to send email")
	// ErrInvalidFrontmatter indicates the template's YAML header did not parse.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)
