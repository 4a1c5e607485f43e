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

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errBrokenLinks) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(exitCode(err))
	}
}
