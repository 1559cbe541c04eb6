package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adlabs/adcdk/adcdkutil"
	"github.com/adlabs/adcdk/cmd/adcdk/internal/config"
	"github.com/adlabs/adcdk/cmd/adcdk/internal/initwizard"
	"github.com/cockroachdb/errors"
)

// environmentSetting returns the long-form value of the "environment"
// setting for a wizard environment name.
func environmentSetting(env string) string {
	switch env {
	case "dev":
		return "development"
	case "prod":
		return "production"
	default:
		return env
	}
}

// scaffoldProject writes the project file and a cdk.json whose context
// holds the environment selector and one settings map per environment.
func scaffoldProject(dir string, result initwizard.Result, out io.Writer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create project directory")
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.Newf("project already initialized: %s exists", configPath)
	}

	cfg := config.Default()
	if len(result.Environments) > 0 {
		cfg.DefaultEnv = result.Environments[0]
	}

	configFile, err := os.Create(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to create project file")
	}
	defer configFile.Close()

	if err := config.NewWriter().Write(configFile, cfg); err != nil {
		return err
	}

	cdkContext := map[string]any{
		adcdkutil.EnvironmentConfigKey: cfg.DefaultEnv,
	}
	for _, env := range result.Environments {
		cdkContext[env] = map[string]string{
			adcdkutil.SettingProject:     result.ProjectIdent,
			adcdkutil.SettingEnvironment: environmentSetting(env),
			"region":                     result.PrimaryRegion,
		}
	}

	cdkJSON := map[string]any{
		"app":     "go run .",
		"context": cdkContext,
	}

	data, err := json.MarshalIndent(cdkJSON, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal cdk.json")
	}

	cdkJSONPath := filepath.Join(dir, "cdk.json")
	if err := os.WriteFile(cdkJSONPath, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "failed to write cdk.json")
	}

	fmt.Fprintf(out, "Initialized project %q in %s with environments %v\n",
		result.ProjectIdent, dir, result.Environments)

	return nil
}
