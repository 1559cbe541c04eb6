package adcdkutil

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func lookupFromMap(ctx map[string]any) func(string) any {
	return func(key string) any {
		return ctx[key]
	}
}

func TestEnvConfigFromLookup(t *testing.T) {
	t.Parallel()

	validContext := map[string]any{
		"config": "dev",
		"dev": map[string]any{
			"project":     "p1",
			"environment": "development",
		},
	}

	t.Run("returns settings of the active environment", func(t *testing.T) {
		t.Parallel()

		cfg, err := envConfigFromLookup(lookupFromMap(validContext), "config")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Name() != "dev" {
			t.Errorf("expected environment name 'dev', got %q", cfg.Name())
		}
		if got := cfg.Get("project"); got != "p1" {
			t.Errorf("expected project 'p1', got %q", got)
		}
		if got := cfg.Get("environment"); got != "development" {
			t.Errorf("expected environment 'development', got %q", got)
		}
	})

	t.Run("empty selector key falls back to default", func(t *testing.T) {
		t.Parallel()

		cfg, err := envConfigFromLookup(lookupFromMap(validContext), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Name() != "dev" {
			t.Errorf("expected environment name 'dev', got %q", cfg.Name())
		}
	})

	t.Run("absent setting returns zero value", func(t *testing.T) {
		t.Parallel()

		cfg, err := envConfigFromLookup(lookupFromMap(validContext), "config")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := cfg.Get("missing"); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
		if got := cfg.GetDefault("missing", "fallback"); got != "fallback" {
			t.Errorf("expected 'fallback', got %q", got)
		}
		if cfg.Has("missing") {
			t.Error("expected Has to report false for absent key")
		}
		if !cfg.Has("project") {
			t.Error("expected Has to report true for present key")
		}
	})
}

func TestEnvConfigFromLookupErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		context map[string]any
	}{
		{
			name:    "missing selector",
			context: map[string]any{"dev": map[string]any{"project": "p1"}},
		},
		{
			name: "selector is not a string",
			context: map[string]any{
				"config": 42,
				"dev":    map[string]any{"project": "p1"},
			},
		},
		{
			name:    "selected environment absent",
			context: map[string]any{"config": "dev"},
		},
		{
			name: "environment is not an object",
			context: map[string]any{
				"config": "dev",
				"dev":    "not-a-map",
			},
		},
		{
			name: "setting value is not a string",
			context: map[string]any{
				"config": "dev",
				"dev":    map[string]any{"project": 12},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := envConfigFromLookup(lookupFromMap(tt.context), "config")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("expected error marked ErrConfiguration, got %v", err)
			}
		})
	}
}
