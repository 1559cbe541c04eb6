package adcdkutil

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/cockroachdb/errors"
	"github.com/iancoleman/strcase"
)

// Tag keys applied to every stack created through NewStack. Tags added at
// the stack level propagate to all children that support tagging.
const (
	TagApplication = "application"
	TagEnvironment = "environment"
)

// Well-known environment settings consumed by NewStack.
const (
	SettingProject     = "project"
	SettingEnvironment = "environment"
)

// StackProps configures NewStack.
type StackProps struct {
	// ConfigKey overrides the context key naming the active environment.
	// Defaults to EnvironmentConfigKey.
	ConfigKey string

	// Env sets the target account and region, passed through to the stack.
	Env *awscdk.Environment

	// Description overrides the generated stack description.
	Description string
}

// NewStack creates a stack with the active environment's configuration
// snapshot and uniform resource tags.
//
// The environment configuration is read once from CDK context (see
// NewEnvConfig) and returned alongside the stack for the caller to consume.
// The "project" and "environment" settings become the "application" and
// "environment" tags on the stack and, through propagation, on every
// taggable child.
func NewStack(scope constructs.Construct, name string, props *StackProps) (awscdk.Stack, *EnvConfig, error) {
	if props == nil {
		props = &StackProps{}
	}

	cdkEnv, err := NewEnvConfig(scope, props.ConfigKey)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "stack %q", name)
	}

	if name == "" {
		name = strcase.ToCamel(cdkEnv.Get(SettingProject) + "-" + cdkEnv.Name())
	}

	description := props.Description
	if description == "" {
		description = fmt.Sprintf("%s (environment: %s)",
			cdkEnv.GetDefault(SettingProject, name), cdkEnv.Name())
	}

	stack := awscdk.NewStack(scope, jsii.String(name), &awscdk.StackProps{
		Env:         props.Env,
		Description: jsii.String(description),
	})

	if v := cdkEnv.Get(SettingProject); v != "" {
		awscdk.Tags_Of(stack).Add(jsii.String(TagApplication), jsii.String(v), nil)
	}
	if v := cdkEnv.Get(SettingEnvironment); v != "" {
		awscdk.Tags_Of(stack).Add(jsii.String(TagEnvironment), jsii.String(v), nil)
	}

	awscdk.Annotations_Of(stack).AcknowledgeWarning(
		jsii.String("@aws-cdk/aws-lambda-go-alpha:goBuildFlagsSecurityWarning"),
		jsii.String("Build flags are controlled by adcdklambda.ReproducibleGoBundling and are safe"),
	)

	return stack, cdkEnv, nil
}
