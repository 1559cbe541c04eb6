package main

import (
	"context"

	"github.com/adlabs/adcdk/cmd/adcdk/internal/config"
	"github.com/urfave/cli/v3"
)

func destroyCmd() *cli.Command {
	return &cli.Command{
		Name:   "destroy",
		Usage:  "Destroy the deployed stacks of an environment",
		Flags:  []cli.Flag{envFlag()},
		Action: config.RunWithConfig(runDestroy),
	}
}

func runDestroy(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	return runCDKCommand(ctx, resolveOptions(cmd, cfg), "destroy", "--force")
}
