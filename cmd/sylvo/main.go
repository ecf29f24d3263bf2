// ABOUTME: Entry point for sylvo CLI application.
// ABOUTME: Initializes and executes the root command.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ImFeH2/sylvo/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		stop()
		os.Exit(1)
	}
}
