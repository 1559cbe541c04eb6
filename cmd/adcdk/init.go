package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/adlabs/adcdk/cmd/adcdk/internal/initwizard"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v3"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Scaffold a new adcdk project",
		ArgsUsage: "[project-directory]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "accessible",
				Usage: "Run the wizard in accessible (non-TUI) mode",
			},
		},
		Action: runInit,
	}
}

func runInit(_ context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return errors.Wrap(err, "failed to get current working directory")
		}
	}

	runner := initwizard.NewRunner(cmd.Bool("accessible"), os.Stdout, os.Stdin)
	wizard := initwizard.New(initwizard.NewFormBuilder(), runner)

	result, err := wizard.Run(filepath.Base(dir))
	if err != nil {
		return errors.Wrap(err, "wizard aborted")
	}

	return scaffoldProject(dir, result, os.Stdout)
}
