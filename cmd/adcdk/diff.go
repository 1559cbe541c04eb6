package main

import (
	"context"

	"github.com/adlabs/adcdk/cmd/adcdk/internal/config"
	"github.com/urfave/cli/v3"
)

func diffCmd() *cli.Command {
	return &cli.Command{
		Name:   "diff",
		Usage:  "Diff the CDK app against the deployed stacks",
		Flags:  []cli.Flag{envFlag()},
		Action: config.RunWithConfig(runDiff),
	}
}

func runDiff(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	return runCDKCommand(ctx, resolveOptions(cmd, cfg), "diff")
}
