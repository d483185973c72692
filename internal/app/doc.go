// Package app is a small HTTP application layer over chi.
//
// It owns the router, the middleware chain, health probes, error rendering
// and graceful shutdown, so feature packages only declare routes and
// return errors.
//
// # Quick Start
//
//	a := app.New(
//	    app.WithLogger(log),
//	    app.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.CORS(),
//	        middlewares.Recover(),
//	    ),
//	    app.WithHealthChecks(
//	        app.WithReadinessCheck("mailer", health.Require(m.Configured, mailer.ErrNotConfigured)),
//	    ),
//	    app.WithHandlers(contact.NewHandler(m)),
//	)
//
//	if err := a.Run(ctx, ":8080"); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// A Handler registers its routes on a Router. Route functions receive a
// Context and return an error:
//
//	func (h *Handler) Routes(r app.Router) {
//	    r.POST("/send-contact-email", h.submit)
//	}
//
//	func (h *Handler) submit(c app.Context) error {
//	    var in Input
//	    if err := c.BindJSON(&in); err != nil {
//	        return app.ErrBadRequest("Invalid body", app.WithError(err))
//	    }
//	    return c.JSON(http.StatusOK, in)
//	}
//
// Context also implements context.Context, so it can be passed straight to
// anything that takes one.
//
// # Request Bodies
//
// BindJSON decodes exactly one JSON value. Unknown fields are ignored, but
// anything other than whitespace after the value fails with
// ErrTrailingData, so concatenated bodies never bind.
//
// # Errors
//
// Returned errors are rendered by JSONErrorHandler as {"error": message}:
//
//   - *HTTPError keeps its status code and message
//   - any other error becomes 500 "Internal server error"
//
// The constructors ErrBadRequest, ErrNotFound, ErrMethodNotAllowed and
// ErrInternal cover the statuses the app uses. WithError attaches a cause
// that is logged for 5xx responses and never shown to the client. An error
// returned after the response was already written is only logged.
//
// Unmatched paths and methods go through WithNotFoundHandler and
// WithMethodNotAllowedHandler. Both pass through the global middleware, so
// a JSON 404 still carries CORS and request ID headers.
//
// # Health Probes
//
// WithHealthChecks mounts LivenessPath and ReadinessPath. Liveness always
// answers 200. Readiness runs every WithReadinessCheck in parallel and
// answers 503 when any of them fails.
//
// # Running
//
// App.Run listens on addr and stops on SIGINT/SIGTERM or when ctx is
// cancelled. StartupHook runs before the listener accepts connections and
// ShutdownHook runs after the server drains, both bounded by
// ShutdownTimeout. OnListen reports the bound address, which is useful with
// ":0" in tests.
package app
