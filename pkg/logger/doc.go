// Package logger builds slog loggers for the server and the CLI.
//
// Every constructor returns a plain *slog.Logger, so the rest of the code
// base depends only on log/slog.
//
// # Server Logging
//
// Server processes log JSON to stdout:
//
//	log := logger.New(logger.ParseLevel(os.Getenv("LOG_LEVEL")))
//	log.Info("server started", "addr", addr)
//
// ParseLevel accepts debug, info, warn and error and falls back to info.
// NewWithWriter does the same against any io.Writer, which tests use with
// a bytes.Buffer.
//
// # Context Extractors
//
// Extractors add request scoped attributes to every record logged with a
// context:
//
//	log := logger.New(slog.LevelInfo,
//	    logger.StringExtractor(requestIDKey{}, "request_id"),
//	)
//	log.InfoContext(ctx, "contact form submitted") // {"request_id":"...", ...}
//
// StringExtractor reads a string stored under a context key and skips
// empty values. Any func(ctx) (slog.Attr, bool) works as a ContextExtractor.
// LogHandlerDecorator applies them and can wrap any slog.Handler.
//
// # Sentry
//
// NewWithSentry builds the stdout logger from Config and, when SENTRY_DSN
// is set, also forwards records to Sentry:
//
//   - errors become Sentry events
//   - warnings and errors are sent as Sentry logs, or only errors with
//     SENTRY_ERRORS_ONLY=true
//
// If Sentry fails to initialize, the failure is logged and the logger
// continues with stdout only. Call Flush before the process exits so
// buffered events are delivered:
//
//	log := logger.NewWithSentry(cfg.Logger, middlewares.RequestIDExtractor())
//	defer logger.Flush(2 * time.Second)
//
// # Terminal Tools
//
// NewCLI renders through charmbracelet/log with colors and a prefix while
// keeping the *slog.Logger API. NewNope discards everything and is the
// default for packages that accept an optional logger.
package logger
