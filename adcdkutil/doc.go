// Package adcdkutil provides utilities for AWS CDK applications in Go.
//
// This package includes helpers for:
//   - Per-environment configuration read from CDK context
//   - Stack construction with uniform resource tagging
//   - Error classification for configuration, validation and bundling failures
package adcdkutil
