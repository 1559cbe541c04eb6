package adcdklambda

import (
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"github.com/adlabs/adcdk/adcdkutil"
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3assets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awssqs"
	"github.com/aws/jsii-runtime-go"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Defaults applied to functions when the caller leaves the value unset.
const (
	DefaultTimeoutSec = 30
	DefaultMemorySize = 128
)

// containerInstallCommand stages assets when bundling runs inside the
// runtime's container image instead of locally.
const containerInstallCommand = "pip install -r requirements.txt -t /asset-output && cp -r src/. /asset-output"

// Lambdas builds lambda functions that share a set of defaults.
type Lambdas struct {
	defaultRuntime      awslambda.Runtime
	defaultLogRetention awslogs.RetentionDays
	defaultEnv          map[string]*string
}

// Props configures NewLambdas.
type Props struct {
	// DefaultRuntime for functions that don't specify one.
	// Defaults to Python 3.13.
	DefaultRuntime awslambda.Runtime

	// DefaultLogRetention for function log groups. Defaults to one month.
	DefaultLogRetention awslogs.RetentionDays

	// DefaultEnv is merged into every function's environment variables,
	// taking precedence over per-function values.
	DefaultEnv map[string]*string
}

// NewLambdas creates a function builder with the given defaults.
func NewLambdas(props Props) *Lambdas {
	if props.DefaultRuntime == nil {
		props.DefaultRuntime = awslambda.Runtime_PYTHON_3_13()
	}
	if props.DefaultLogRetention == "" {
		props.DefaultLogRetention = awslogs.RetentionDays_ONE_MONTH
	}

	return &Lambdas{
		defaultRuntime:      props.DefaultRuntime,
		defaultLogRetention: props.DefaultLogRetention,
		defaultEnv:          props.DefaultEnv,
	}
}

// FunctionProps configures a single BasicLambda call. Zero values for
// timeout and memory receive the package defaults before validation.
type FunctionProps struct {
	// SrcPath is the parent directory containing one directory per function,
	// named after the function.
	SrcPath string `validate:"required"`

	// BasePath is the project root; together with RelSrcPath and the
	// function name it locates the source directory for local bundling.
	BasePath string

	// RelSrcPath is the path of the function directories relative to BasePath.
	RelSrcPath string

	TimeoutSec int `validate:"min=1,max=900"`
	MemorySize int `validate:"min=128,max=10240"`

	// Description of the function. Empty leaves the function without a
	// description rather than defaulting one.
	Description string

	// RetryAttempts for asynchronous invocations. Defaults to 0.
	RetryAttempts *int

	// Environment variables for this function, merged with the builder's
	// DefaultEnv (which wins on conflicts).
	Environment map[string]*string

	Runtime                      awslambda.Runtime
	LogRetention                 awslogs.RetentionDays
	Layers                       *[]awslambda.ILayerVersion
	ReservedConcurrentExecutions *int
	DeadLetterQueue              awssqs.IQueue
	Role                         awsiam.IRole
}

// BasicLambda creates a function named name under the given stack.
//
// The function's code asset is the directory join(SrcPath, name), bundled
// locally when possible (see NewLocalBundling) and in the runtime's
// container image otherwise. The handler is "<name>.lambda_handler".
// Out-of-range parameters return an error marked adcdkutil.ErrValidation.
func (l *Lambdas) BasicLambda(stack awscdk.Stack, name string, props FunctionProps) (awslambda.Function, error) {
	if name == "" {
		return nil, errors.Mark(errors.New("function name is required"), adcdkutil.ErrValidation)
	}

	props = applyDefaults(props)
	if err := validateStruct(props); err != nil {
		return nil, errors.Wrapf(err, "function %q", name)
	}

	runtime := props.Runtime
	if runtime == nil {
		runtime = l.defaultRuntime
	}

	logRetention := props.LogRetention
	if logRetention == "" {
		logRetention = l.defaultLogRetention
	}

	retryAttempts := 0
	if props.RetryAttempts != nil {
		retryAttempts = *props.RetryAttempts
	}

	environment := make(map[string]*string, len(props.Environment)+len(l.defaultEnv))
	maps.Copy(environment, props.Environment)
	maps.Copy(environment, l.defaultEnv)

	localSourceDir := filepath.Join(props.BasePath, props.RelSrcPath, name)

	code := awslambda.Code_FromAsset(
		jsii.String(filepath.Join(props.SrcPath, name)),
		&awss3assets.AssetOptions{
			Bundling: &awscdk.BundlingOptions{
				Image:   runtime.BundlingImage(),
				Command: jsii.Strings("bash", "-c", containerInstallCommand),
				Local:   NewLocalBundling(localSourceDir),
			},
		})

	functionProps := &awslambda.FunctionProps{
		Code:            code,
		Handler:         jsii.String(name + ".lambda_handler"),
		Runtime:         runtime,
		LogRetention:    logRetention,
		Timeout:         awscdk.Duration_Seconds(jsii.Number(float64(props.TimeoutSec))),
		MemorySize:      jsii.Number(float64(props.MemorySize)),
		RetryAttempts:   jsii.Number(float64(retryAttempts)),
		Environment:     &environment,
		Layers:          props.Layers,
		DeadLetterQueue: props.DeadLetterQueue,
		Role:            props.Role,
	}

	if props.Description != "" {
		functionProps.Description = jsii.String(props.Description)
	}
	if props.ReservedConcurrentExecutions != nil {
		functionProps.ReservedConcurrentExecutions = jsii.Number(float64(*props.ReservedConcurrentExecutions))
	}

	return awslambda.NewFunction(stack, jsii.String(name), functionProps), nil
}

// applyDefaults fills the zero values of the scalar parameters.
func applyDefaults(props FunctionProps) FunctionProps {
	if props.TimeoutSec == 0 {
		props.TimeoutSec = DefaultTimeoutSec
	}
	if props.MemorySize == 0 {
		props.MemorySize = DefaultMemorySize
	}

	return props
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct validates tagged fields and converts violations into a
// single error marked adcdkutil.ErrValidation.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		msgs := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			msgs = append(msgs, formatValidationError(e))
		}

		return errors.Mark(
			errors.Newf("invalid function parameters:\n  - %s", strings.Join(msgs, "\n  - ")),
			adcdkutil.ErrValidation)
	}

	return errors.Mark(errors.Wrap(err, "function parameter validation failed"), adcdkutil.ErrValidation)
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s (got %v)", e.Field(), e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s (got %v)", e.Field(), e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation %q", e.Field(), e.Tag())
	}
}
