package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or non-positive timeouts).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
