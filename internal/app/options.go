package app

import "log/slog"

// Option configures the application.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMiddleware adds global middleware, applied in the order provided.
// Global middleware runs before routing, so it also sees unmatched requests.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithNotFoundHandler sets the handler for unmatched paths. Without it chi
// answers with a plain text 404.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets the handler for a known path requested
// with an unregistered method.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables LivenessPath and ReadinessPath.
//
// Example:
//
//	app.WithHealthChecks(
//	    app.WithReadinessCheck("mailer", health.Require(m.Configured, errNoProvider)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}
