// Package health provides HTTP handlers for liveness and readiness probes.
//
// The handlers work with any router that accepts an http.HandlerFunc and
// with orchestrators, load balancers and uptime monitors alike.
//
// # Main Functions
//
// [LivenessHandler] always answers healthy while the process runs. It runs
// no checks, so a stuck dependency never gets the process restarted.
//
// [ReadinessHandler] executes a set of [Checks] concurrently under a shared
// timeout and answers 503 when any of them fails.
//
// [Run] executes the same checks without HTTP, for CLIs and startup gates.
//
// # Quick Start
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "mailer": health.Require(m.Configured, mailer.ErrNotConfigured),
//	}))
//
// # Writing Checks
//
// A check is any func(context.Context) error. [Require] adapts a plain
// boolean predicate, which suits configuration checks that need no I/O:
//
//	checks := health.Checks{
//	    "mailer": health.Require(m.Configured, mailer.ErrNotConfigured),
//	    "upstream": func(ctx context.Context) error {
//	        req, _ := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
//	        resp, err := http.DefaultClient.Do(req)
//	        if err != nil {
//	            return err
//	        }
//	        return resp.Body.Close()
//	    },
//	}
//
// Failed checks are wrapped with [ErrCheckFailed]. A check that overruns
// the deadline is additionally marked with [ErrCheckTimeout].
//
// # Response Formats
//
// Responses are JSON by default:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "mailer": {"status": "unhealthy", "error": "health: check failed\nemail service not configured"}
//	  }
//	}
//
// Probes that send "Accept: text/plain" or "?format=text" get the bare
// status word instead. Every response carries Cache-Control: no-store.
//
// # Configuration Options
//
//	r.Get("/health/ready", health.ReadinessHandler(checks,
//	    health.WithTimeout(3*time.Second),
//	    health.WithLogger(log),
//	))
//
// The default timeout is 5 seconds. Failed checks are logged at warn level
// with the check name.
package health
