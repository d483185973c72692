// Package middlewares provides HTTP middleware for app applications.
//
// Every middleware is an app.Middleware and is registered globally:
//
//	a := app.New(
//	    app.WithLogger(log),
//	    app.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.CORS(),
//	        middlewares.Recover(),
//	    ),
//	)
//
// Global middleware also wraps the not found and method not allowed
// handlers, so error responses carry the same headers as normal ones.
//
// # CORS
//
// CORS adds cross-origin headers to every response and answers preflight
// OPTIONS requests itself, before routing. The defaults match what a
// browser needs to call the contact endpoint from any origin:
//
//	Access-Control-Allow-Origin: *
//	Access-Control-Allow-Headers: authorization, x-client-info, apikey, content-type
//	Access-Control-Allow-Methods: POST, OPTIONS
//
// Preflight requests get 200 with an empty body. Restrict origins with
// WithAllowOrigins; a listed origin is echoed back with Vary: Origin and an
// unlisted one gets no CORS headers, so the browser blocks the response:
//
//	middlewares.CORS(
//	    middlewares.WithAllowOrigins("https://example.com"),
//	    middlewares.WithMaxAge(10*time.Minute),
//	    middlewares.WithPreflightStatus(http.StatusNoContent),
//	)
//
// # Request ID
//
// RequestID reuses an incoming X-Request-ID (or X-Correlation-ID) header or
// generates a UUIDv7, stores it in the request context and echoes it in the
// X-Request-ID response header. GetRequestID reads it inside handlers.
// Pair it with RequestIDExtractor so every log line carries it:
//
//	log := logger.New(slog.LevelInfo, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover turns panics into *PanicError values, which JSONErrorHandler
// renders as a generic 500. The panic value and, unless
// WithRecoverDisableStack is set, up to DefaultStackSize bytes of stack are
// logged. http.ErrAbortHandler is re-panicked so net/http can abort the
// connection as intended.
package middlewares
