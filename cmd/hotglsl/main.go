// Package main is the entry point for the hotglsl shader watcher.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/nannou-org/hotglsl/cmd/hotglsl/commands"
	"github.com/nannou-org/hotglsl/internal/app"
	"github.com/nannou-org/hotglsl/internal/core/domain"
	_ "github.com/nannou-org/hotglsl/internal/wiring"
)

// componentProvider resolves the application components.
type componentProvider func(context.Context) (*app.Components, error)

func resolveComponents(ctx context.Context) (*app.Components, error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, err
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, resolveComponents))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider componentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrCompileBatchFailed) {
			// Outcomes were already rendered per shader.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
