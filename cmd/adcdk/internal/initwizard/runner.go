package initwizard

import (
	"io"

	"github.com/charmbracelet/huh"
)

// FormRunner executes the init form. The interactive runner drives the
// TUI; the accessible runner reads line-based answers, which also makes
// scripted runs possible.
type FormRunner interface {
	Run(form *huh.Form) error
}

// NewRunner selects the runner for the init command. The output and input
// writers are only used by the accessible runner.
func NewRunner(accessible bool, output io.Writer, input io.Reader) FormRunner {
	if accessible {
		return NewAccessibleRunner(output, input)
	}

	return NewInteractiveRunner()
}

type InteractiveRunner struct{}

func NewInteractiveRunner() *InteractiveRunner {
	return &InteractiveRunner{}
}

func (r *InteractiveRunner) Run(form *huh.Form) error {
	return form.Run()
}

type AccessibleRunner struct {
	output io.Writer
	input  io.Reader
}

func NewAccessibleRunner(output io.Writer, input io.Reader) *AccessibleRunner {
	return &AccessibleRunner{
		output: output,
		input:  input,
	}
}

func (r *AccessibleRunner) Run(form *huh.Form) error {
	return form.
		WithAccessible(true).
		WithOutput(r.output).
		WithInput(r.input).
		Run()
}
