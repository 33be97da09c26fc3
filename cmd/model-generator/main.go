// Package main provides the CLI entrypoint for model-generator.
//
// model-generator compiles XML model schemas into Go source:
//   - an entity struct per model
//   - a DTO struct per model with JSON tags
//   - nil-safe mappers converting between both
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"model-generator/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewApp().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
