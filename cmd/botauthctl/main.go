package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"botauth/config"
	"botauth/internal/errors"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := newApp(&env{
		out:        os.Stdout,
		loadConfig: config.Load,
		prompt:     newPasswordPrompt(os.Stdin).read,
	})
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
