package app

// Handler declares routes on a router.
//
// Example:
//
//	type ContactHandler struct {
//	    mailer *mailer.Mailer
//	}
//
//	func (h *ContactHandler) Routes(r app.Router) {
//	    r.Any("/send-contact-email", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands it to JSONErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
type Middleware func(next HandlerFunc) HandlerFunc

