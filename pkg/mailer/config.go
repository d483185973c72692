package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
//
// From and To have no defaults: a deployment must name its own sender
// address and recipient, otherwise the Mailer reports itself as not
// configured.
type Config struct {
	// Provider selects the outbound implementation: resend, postmark or log.
	Provider        string `env:"EMAIL_PROVIDER" envDefault:"resend"`
	From            string `env:"EMAIL_FROM"`
	FromName        string `env:"EMAIL_FROM_NAME"`
	To              string `env:"EMAIL_TO"`
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Notification"`
}

// Sender returns the formatted From address.
func (c Config) Sender() string {
	return Recipient(c.FromName, c.From)
}

// Validate reports the first missing address.
func (c Config) Validate() error {
	if c.From == "" {
		return ErrNoFrom
	}
	if c.To == "" {
		return ErrNoRecipient
	}
	return nil
}
