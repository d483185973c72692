package client

import (
	"strings"
	"time"
)

// Config is the client configuration, parsed from the environment.
type Config struct {
	// Mode selects the strategy chain: auto, handler or webhook.
	Mode string `env:"CONTACT_MODE" envDefault:"auto"`

	BaseURL string `env:"CONTACT_BASE_URL"`
	Token   string `env:"CONTACT_TOKEN"`

	WebhookURL    string `env:"CONTACT_WEBHOOK_URL"`
	WebhookSecret string `env:"CONTACT_WEBHOOK_SECRET"`

	EmailJS EmailJSConfig

	// Timeout bounds each request. Zero leaves it to ctx.
	Timeout time.Duration `env:"CONTACT_TIMEOUT" envDefault:"0s"`
}

// EmailJSConfig holds EmailJS credentials.
type EmailJSConfig struct {
	ServiceID   string `env:"EMAILJS_SERVICE_ID"`
	TemplateID  string `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey   string `env:"EMAILJS_PUBLIC_KEY"`
	AccessToken string `env:"EMAILJS_ACCESS_TOKEN"`
	Endpoint    string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
}

// IsPlaceholder reports whether a credential is unset or still a template
// value such as YOUR_SERVICE_ID or your-webhook-url.
func IsPlaceholder(v string) bool {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return true
	case strings.HasPrefix(strings.ToUpper(v), "YOUR_"),
		strings.HasPrefix(strings.ToLower(v), "your-"):
		return true
	case strings.EqualFold(v, "changeme"), strings.EqualFold(v, "placeholder"):
		return true
	}
	return false
}
