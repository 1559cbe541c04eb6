package adcdkutil

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/cockroachdb/errors"
)

// EnvironmentConfigKey is the default context key holding the name of the
// active environment. The context map stored under that name provides the
// environment's settings:
//
//	{
//	  "context": {
//	    "config": "dev",
//	    "dev": {"project": "p1", "environment": "development"}
//	  }
//	}
const EnvironmentConfigKey = "config"

// EnvConfig is an immutable snapshot of the active environment's settings.
// It is read once from CDK context at stack construction time.
type EnvConfig struct {
	name   string
	values map[string]string
}

// NewEnvConfig reads the environment configuration from CDK context.
// The selectorKey (EnvironmentConfigKey when empty) names the context entry
// holding the active environment name; the settings map is stored under the
// environment name itself. Missing or malformed entries return an error
// marked ErrConfiguration.
func NewEnvConfig(scope constructs.Construct, selectorKey string) (*EnvConfig, error) {
	return envConfigFromLookup(func(key string) any {
		return scope.Node().TryGetContext(jsii.String(key))
	}, selectorKey)
}

// envConfigFromLookup implements NewEnvConfig against a plain lookup
// function so the logic is testable without a construct tree.
func envConfigFromLookup(lookup func(key string) any, selectorKey string) (*EnvConfig, error) {
	if selectorKey == "" {
		selectorKey = EnvironmentConfigKey
	}

	val := lookup(selectorKey)
	if val == nil {
		return nil, errors.Mark(
			errors.Newf("context key %q is not set", selectorKey), ErrConfiguration)
	}

	name, ok := val.(string)
	if !ok || name == "" {
		return nil, errors.Mark(
			errors.Newf("context key %q must be a non-empty string, got %T", selectorKey, val),
			ErrConfiguration)
	}

	raw := lookup(name)
	if raw == nil {
		return nil, errors.Mark(
			errors.Newf("no configuration found under context key %q (selected by %q)",
				name, selectorKey), ErrConfiguration)
	}

	settings, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.Mark(
			errors.Newf("context key %q must be an object, got %T", name, raw),
			ErrConfiguration)
	}

	values := make(map[string]string, len(settings))
	for key, v := range settings {
		s, ok := v.(string)
		if !ok {
			return nil, errors.Mark(
				errors.Newf("context key %q.%q must be a string, got %T", name, key, v),
				ErrConfiguration)
		}
		values[key] = s
	}

	return &EnvConfig{name: name, values: values}, nil
}

// Name returns the active environment name, e.g. "dev".
func (c *EnvConfig) Name() string {
	return c.name
}

// Get returns the setting stored under key, or the empty string if absent.
func (c *EnvConfig) Get(key string) string {
	return c.values[key]
}

// GetDefault returns the setting stored under key, or def if absent.
func (c *EnvConfig) GetDefault(key, def string) string {
	if v, ok := c.values[key]; ok {
		return v
	}
	return def
}

// Has reports whether a setting is present under key.
func (c *EnvConfig) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}
