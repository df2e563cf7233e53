// Package main is the entry point for the olsq CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reoring/ols/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run accepts OS dependencies as parameters for testability.
func run(ctx context.Context, getenv func(string) string) error {
	return commands.NewRootCmd(getenv).ExecuteContext(ctx)
}
