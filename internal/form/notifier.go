package form

import "log/slog"

const (
	// ErrorAlert is shown when a submission fails.
	ErrorAlert = "There was an error sending your message. Please try again."

	// ThankYouTitle heads the confirmation shown after a successful send.
	ThankYouTitle   = "Thank You!"
	// ThankYouMessage is the confirmation body.
	ThankYouMessage = "We'll be in touch soon."
)

// Notifier shows feedback to the visitor.
type Notifier interface {
	Alert(message string)
	Confirm(title, message string)
}

// LogNotifier writes feedback to a logger. Useful for headless runs.
type LogNotifier struct {
	Logger *slog.Logger
}

// Alert logs message at error level.
func (n LogNotifier) Alert(message string) {
	n.logger().Warn(message)
}

// Confirm logs the confirmation at info level.
func (n LogNotifier) Confirm(title, message string) {
	n.logger().Info(title + " " + message)
}

func (n LogNotifier) logger() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}
