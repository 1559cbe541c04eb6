package main

import (
	"context"

	"github.com/adlabs/adcdk/cmd/adcdk/internal/config"
	"github.com/urfave/cli/v3"
)

func synthCmd() *cli.Command {
	return &cli.Command{
		Name:   "synth",
		Usage:  "Synthesize the CDK app for an environment",
		Flags:  []cli.Flag{envFlag()},
		Action: config.RunWithConfig(runSynth),
	}
}

func runSynth(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	return runCDKCommand(ctx, resolveOptions(cmd, cfg), "synth")
}
