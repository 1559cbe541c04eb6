package adcdklambda

import (
	"maps"

	"github.com/adlabs/adcdk/adcdkutil"
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdklambdagoalpha/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/cockroachdb/errors"
)

// ReproducibleGoBundling returns bundling options that produce
// byte-identical binaries across machines: trimmed paths, no VCS stamping,
// stripped symbols and build id, and no cgo.
func ReproducibleGoBundling() *awscdklambdagoalpha.BundlingOptions {
	return &awscdklambdagoalpha.BundlingOptions{
		GoBuildFlags: jsii.Strings(
			"-trimpath",
			"-buildvcs=false",
			`-ldflags "-s -w -buildid="`,
		),
		Environment: &map[string]*string{
			"CGO_ENABLED": jsii.String("0"),
		},
	}
}

// GoFunctionProps configures a single GoFunction call. Zero values for
// timeout and memory receive the package defaults before validation.
type GoFunctionProps struct {
	// Entry is the directory of the function's main package.
	Entry string `validate:"required"`

	TimeoutSec int `validate:"min=1,max=900"`
	MemorySize int `validate:"min=128,max=10240"`

	// Description of the function. Empty leaves the function without a
	// description rather than defaulting one.
	Description string

	// Environment variables for this function, merged with the builder's
	// DefaultEnv (which wins on conflicts).
	Environment map[string]*string
}

// GoFunction creates a Go function named name under the given stack, built
// with ReproducibleGoBundling. Out-of-range parameters return an error
// marked adcdkutil.ErrValidation.
func (l *Lambdas) GoFunction(stack awscdk.Stack, name string, props GoFunctionProps) (awscdklambdagoalpha.GoFunction, error) {
	if name == "" {
		return nil, errors.Mark(errors.New("function name is required"), adcdkutil.ErrValidation)
	}

	if props.TimeoutSec == 0 {
		props.TimeoutSec = DefaultTimeoutSec
	}
	if props.MemorySize == 0 {
		props.MemorySize = DefaultMemorySize
	}

	if err := validateStruct(props); err != nil {
		return nil, errors.Wrapf(err, "function %q", name)
	}

	environment := make(map[string]*string, len(props.Environment)+len(l.defaultEnv))
	maps.Copy(environment, props.Environment)
	maps.Copy(environment, l.defaultEnv)

	functionProps := &awscdklambdagoalpha.GoFunctionProps{
		Entry:        jsii.String(props.Entry),
		Bundling:     ReproducibleGoBundling(),
		Timeout:      awscdk.Duration_Seconds(jsii.Number(float64(props.TimeoutSec))),
		MemorySize:   jsii.Number(float64(props.MemorySize)),
		Environment:  &environment,
		LogRetention: l.defaultLogRetention,
	}

	if props.Description != "" {
		functionProps.Description = jsii.String(props.Description)
	}

	return awscdklambdagoalpha.NewGoFunction(stack, jsii.String(name), functionProps), nil
}
