package main

import (
	"context"

	"github.com/adlabs/adcdk/cmd/adcdk/internal/config"
	"github.com/urfave/cli/v3"
)

func deployCmd() *cli.Command {
	return &cli.Command{
		Name:  "deploy",
		Usage: "Deploy the CDK app for an environment",
		Flags: []cli.Flag{
			envFlag(),
			&cli.BoolFlag{
				Name:  "hotswap",
				Usage: "Enable CDK hotswap for faster iterations",
			},
		},
		Action: config.RunWithConfig(runDeploy),
	}
}

func runDeploy(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	extra := []string{"--require-approval", "never"}
	if cmd.Bool("hotswap") {
		extra = append(extra, "--hotswap")
	}

	return runCDKCommand(ctx, resolveOptions(cmd, cfg), "deploy", extra...)
}
