package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/neumodiag/internal/buildinfo"
	"github.com/dmitrijs2005/neumodiag/internal/client/cli"
	"github.com/dmitrijs2005/neumodiag/internal/client/config"
	"github.com/dmitrijs2005/neumodiag/internal/logging"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "starting", buildinfo.LogArgs()...)

	home, err := config.ResolveHome(config.HomeInputsFromOS(cfg.HomeDir))
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	app, err := cli.NewApp(cfg, home, logger)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
