package initwizard

import (
	"github.com/adlabs/adcdk/adcdkutil"
	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
)

type FormBuilder interface {
	Build(defaultIdent string, result *Result) *huh.Form
}

type formBuilder struct{}

func NewFormBuilder() FormBuilder {
	return &formBuilder{}
}

func (b *formBuilder) Build(defaultIdent string, result *Result) *huh.Form {
	*result = DefaultResult(defaultIdent)
	return huh.NewForm(
		huh.NewGroup(
			b.projectIdentInput(&result.ProjectIdent),
			b.primaryRegionSelect(&result.PrimaryRegion),
			b.environmentsSelect(&result.Environments),
		),
	)
}

func (b *formBuilder) projectIdentInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Project identifier").
		Description("Used as the 'project' setting and the application tag").
		Value(value).
		Validate(ValidateProjectIdent)
}

func (b *formBuilder) primaryRegionSelect(value *string) *huh.Select[string] {
	regions := adcdkutil.AllKnownRegions()
	return huh.NewSelect[string]().
		Title("Primary AWS region").
		Description("Region the stacks deploy to").
		Options(huh.NewOptions(regions...)...).
		Value(value)
}

func (b *formBuilder) environmentsSelect(value *[]string) *huh.MultiSelect[string] {
	return huh.NewMultiSelect[string]().
		Title("Environments").
		Description("Each gets its own settings map in the cdk.json context").
		Options(huh.NewOptions("dev", "staging", "prod")...).
		Value(value)
}

func ValidateProjectIdent(s string) error {
	if s == "" {
		return errors.New("project identifier is required")
	}
	if len(s) > 20 {
		return errors.New("project identifier must be 20 characters or less")
	}
	for _, c := range s {
		if !IsValidIdentChar(c) {
			return errors.Newf("invalid character %q: use lowercase letters, numbers, and hyphens only", c)
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return errors.New("project identifier cannot start or end with a hyphen")
	}
	return nil
}

func IsValidIdentChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
}
