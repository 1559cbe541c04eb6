package main

import (
	"context"
	"io"
	"os"

	"github.com/adlabs/adcdk/adcdkutil"
	"github.com/adlabs/adcdk/cmd/adcdk/internal/config"
	"github.com/adlabs/adcdk/internal/cmdexec"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

// cdkCommandOptions carries what every cdk subcommand needs.
type cdkCommandOptions struct {
	AppDir string
	Env    string
	Output io.Writer
}

func envFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "env",
		Usage: "Environment to select via the 'config' context key",
	}
}

// resolveOptions reads shared flags, falling back to the project file's
// default environment when --env is not given.
func resolveOptions(cmd *cli.Command, cfg config.Config) cdkCommandOptions {
	env := cmd.String("env")
	if env == "" {
		env = cfg.Inner.DefaultEnv
	}

	return cdkCommandOptions{
		AppDir: cfg.AppDir(),
		Env:    env,
		Output: os.Stdout,
	}
}

func buildCDKArgs(subcommand, env string, extra ...string) []string {
	args := []string{subcommand, "--context", adcdkutil.EnvironmentConfigKey + "=" + env}
	return append(args, extra...)
}

func runCDKCommand(ctx context.Context, opts cdkCommandOptions, subcommand string, extra ...string) error {
	if !cmdexec.Available("cdk") {
		return errors.New("cdk CLI not found on PATH, install it with: npm install -g aws-cdk")
	}

	run := cmdexec.NewWithDir(opts.AppDir).WithOutput(opts.Output, opts.Output)

	return run.Run(ctx, "cdk", buildCDKArgs(subcommand, opts.Env, extra...)...)
}
