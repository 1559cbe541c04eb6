package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    "adcdk",
		Usage:   "Task runner for adcdk CDK projects",
		Version: Version,
		Commands: []*cli.Command{
			initCmd(),
			synthCmd(),
			deployCmd(),
			diffCmd(),
			destroyCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
