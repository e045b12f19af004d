// Command bookflow runs the book digitization workflow API and its
// maintenance tasks.
//
// Usage:
//
//	bookflow serve
//	bookflow migrate up|down|status
//	bookflow seed --email admin@example.org
//	bookflow hash-password
//	bookflow states
//	bookflow history --limit 20
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
