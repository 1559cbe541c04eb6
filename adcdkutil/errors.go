package adcdkutil

import "github.com/cockroachdb/errors"

// Error kinds surfaced by this module. Concrete failures are wrapped with
// context and marked with one of these sentinels so callers can classify
// them with errors.Is across wrap chains.
var (
	// ErrConfiguration marks missing or malformed CDK context configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation marks function parameters outside the platform's allowed range.
	ErrValidation = errors.New("validation error")

	// ErrBundling marks external command or filesystem failures during asset bundling.
	ErrBundling = errors.New("bundling error")
)
