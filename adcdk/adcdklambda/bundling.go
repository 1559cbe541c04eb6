package adcdklambda

import (
	"context"
	"os"
	"path/filepath"

	"github.com/adlabs/adcdk/adcdkutil"
	"github.com/adlabs/adcdk/internal/cmdexec"
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/cockroachdb/errors"
)

// localInterpreter is the executable the default install command needs on
// the PATH. When it is absent, local bundling is skipped in favor of
// container bundling.
const localInterpreter = "python"

// DefaultInstallCommand returns the command run in the function source
// directory to install dependencies into outputDir.
func DefaultInstallCommand(outputDir string) []string {
	return []string{localInterpreter, "-m", "pip", "install", "-r", "requirements.txt", "-t", outputDir}
}

// BundleSpec describes a single local bundling run.
type BundleSpec struct {
	// SourceDir is the function's source directory, holding requirements.txt
	// and a src/ directory with the handler code.
	SourceDir string

	// OutputDir receives the staged artifacts.
	OutputDir string

	// Commands overrides the default install-and-copy pipeline. Each element
	// is an argv slice executed in SourceDir; the commands own all staging
	// into OutputDir, including the source copy.
	Commands [][]string
}

// Bundle stages a function's code and dependencies into spec.OutputDir by
// running the install command(s) in spec.SourceDir and copying src/ into
// the output. Failures return an error marked adcdkutil.ErrBundling; the
// output directory contents are undefined after a failure.
func Bundle(ctx context.Context, spec BundleSpec) error {
	if _, err := os.Stat(spec.SourceDir); err != nil {
		return errors.Mark(
			errors.Wrapf(err, "source directory %q", spec.SourceDir), adcdkutil.ErrBundling)
	}

	commands := spec.Commands
	copySources := false
	if commands == nil {
		commands = [][]string{DefaultInstallCommand(spec.OutputDir)}
		copySources = true
	}

	run := cmdexec.NewWithDir(spec.SourceDir).WithOutput(os.Stdout, os.Stderr)
	for _, argv := range commands {
		if len(argv) == 0 {
			continue
		}
		if err := run.Run(ctx, argv[0], argv[1:]...); err != nil {
			return errors.Mark(err, adcdkutil.ErrBundling)
		}
	}

	if !copySources {
		return nil
	}

	srcDir := filepath.Join(spec.SourceDir, "src")
	if _, err := os.Stat(srcDir); err != nil {
		return errors.Mark(
			errors.Wrapf(err, "handler source directory %q", srcDir), adcdkutil.ErrBundling)
	}

	if err := os.CopyFS(spec.OutputDir, os.DirFS(srcDir)); err != nil {
		return errors.Mark(
			errors.Wrap(err, "copying handler sources"), adcdkutil.ErrBundling)
	}

	return nil
}

// NewLocalBundling returns a bundler that stages the function at sourceDir
// without a container. When the local interpreter is not on the PATH,
// TryBundle reports false and the framework falls back to container
// bundling instead.
func NewLocalBundling(sourceDir string) awscdk.ILocalBundling {
	return &localBundling{sourceDir: sourceDir}
}

// NewLocalBundlingWithCommands returns a bundler that runs the given
// commands instead of the default install-and-copy pipeline. See
// BundleSpec.Commands for the staging contract.
func NewLocalBundlingWithCommands(sourceDir string, commands [][]string) awscdk.ILocalBundling {
	return &localBundling{sourceDir: sourceDir, commands: commands}
}

type localBundling struct {
	sourceDir string
	commands  [][]string
}

// TryBundle implements awscdk.ILocalBundling. A command that starts and
// then fails panics with the bundling error: jsii offers no error return
// here, and silently falling back to the container would hide the failure.
func (b *localBundling) TryBundle(outputDir *string, _ *awscdk.BundlingOptions) *bool {
	if !cmdexec.Available(localInterpreter) {
		return jsii.Bool(false)
	}

	if err := Bundle(context.Background(), BundleSpec{
		SourceDir: b.sourceDir,
		OutputDir: *outputDir,
		Commands:  b.commands,
	}); err != nil {
		panic(err)
	}

	return jsii.Bool(true)
}
