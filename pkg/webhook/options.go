package webhook

import "time"

type sendOptions struct {
	timeout         time.Duration
	headers         map[string]string
	signatureSecret string
}

func defaultSendOptions() *sendOptions {
	return &sendOptions{
		headers: make(map[string]string),
	}
}

// SendOption configures a single Send call.
type SendOption func(*sendOptions)

// WithTimeout bounds the request. Zero or negative leaves the request bound
// only by ctx and the client transport.
func WithTimeout(timeout time.Duration) SendOption {
	return func(o *sendOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHeader adds a custom header. Empty keys or values are ignored.
func WithHeader(key, value string) SendOption {
	return func(o *sendOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}

// WithSignature enables HMAC-SHA256 request signing with the given secret.
func WithSignature(secret string) SendOption {
	return func(o *sendOptions) {
		o.signatureSecret = secret
	}
}
