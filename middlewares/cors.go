package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ia4it/landing/internal/app"
)

// DefaultCORSConfig allows any origin to POST JSON with a bearer token.
var DefaultCORSConfig = CORSConfig{
	AllowOrigins:    []string{"*"},
	AllowMethods:    []string{http.MethodPost, http.MethodOptions},
	AllowHeaders:    []string{"authorization", "x-client-info", "apikey", "content-type"},
	PreflightStatus: http.StatusOK,
}

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOrigins lists allowed origins. "*" allows every origin and is
	// sent literally, also to requests without an Origin header.
	AllowOrigins []string

	AllowMethods  []string
	AllowHeaders  []string
	ExposeHeaders []string

	// MaxAge is sent on preflight responses when positive.
	MaxAge time.Duration

	// PreflightStatus is the status written for OPTIONS requests.
	PreflightStatus int
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins sets the allowed origins. "*" allows any.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) { cfg.AllowOrigins = origins }
}

// WithAllowMethods sets the allowed HTTP methods.
func WithAllowMethods(methods ...string) CORSOption {
	return func(cfg *CORSConfig) { cfg.AllowMethods = methods }
}

// WithAllowHeaders sets the allowed request headers.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) { cfg.AllowHeaders = headers }
}

// WithExposeHeaders sets the headers exposed to the client.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) { cfg.ExposeHeaders = headers }
}

// WithMaxAge sets how long preflight results may be cached.
func WithMaxAge(d time.Duration) CORSOption {
	return func(cfg *CORSConfig) { cfg.MaxAge = d }
}

// WithPreflightStatus changes the preflight status, e.g. to 204.
func WithPreflightStatus(code int) CORSOption {
	return func(cfg *CORSConfig) {
		if code > 0 {
			cfg.PreflightStatus = code
		}
	}
}

// CORS returns middleware that sets cross-origin headers on every response
// and short-circuits OPTIONS requests.
func CORS(opts ...CORSOption) app.Middleware {
	cfg := DefaultCORSConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))
	wildcard := slices.Contains(cfg.AllowOrigins, "*")

	return func(next app.HandlerFunc) app.HandlerFunc {
		return func(c app.Context) error {
			headers := c.Response().Header()

			switch origin := c.Header("Origin"); {
			case wildcard:
				headers.Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(cfg.AllowOrigins, origin):
				headers.Add("Vary", "Origin")
				headers.Set("Access-Control-Allow-Origin", origin)
			default:
				// Not allowed: no CORS headers, the browser blocks the response.
				return next(c)
			}

			headers.Set("Access-Control-Allow-Headers", allowHeaders)
			headers.Set("Access-Control-Allow-Methods", allowMethods)
			if exposeHeaders != "" {
				headers.Set("Access-Control-Expose-Headers", exposeHeaders)
			}

			if c.Request().Method == http.MethodOptions {
				if cfg.MaxAge > 0 {
					headers.Set("Access-Control-Max-Age", maxAge)
				}
				return c.NoContent(cfg.PreflightStatus)
			}

			return next(c)
		}
	}
}
