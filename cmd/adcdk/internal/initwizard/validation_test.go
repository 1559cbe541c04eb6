package initwizard_test

import (
	"strings"
	"testing"

	"github.com/adlabs/adcdk/cmd/adcdk/internal/initwizard"
)

func TestValidateProjectIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid lowercase", "myproject", false},
		{"valid with numbers", "project123", false},
		{"valid with hyphen", "my-project", false},
		{"valid single letter", "a", false},
		{"invalid empty", "", true},
		{"invalid uppercase", "MyProject", true},
		{"invalid underscore", "my_project", true},
		{"invalid spaces", "my project", true},
		{"invalid leading hyphen", "-myproject", true},
		{"invalid trailing hyphen", "myproject-", true},
		{"invalid too long", strings.Repeat("a", 21), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := initwizard.ValidateProjectIdent(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectIdent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
