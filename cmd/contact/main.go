// Command contact submits the contact form from a terminal.
//
//	contact send --first-name Ada --last-name Lovelace \
//	    --email ada@example.com --referral-source Newsletter
//	contact sources
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
