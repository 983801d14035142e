// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the top-level configuration container for the
// StudyBuddy client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and timeout settings used by the
	// outbound transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound HTTP transport.
type Adapter struct {
	// BaseURL is the StudyBuddy backend base URL
	// (e.g. "http://studybuddy.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single JSON
	// request (e.g. "20s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ResourceTimeout is the maximum duration allowed for image upload
	// and download requests, which move larger payloads (e.g. "30s").
	// Env: ADAPTER_RESOURCE_TIMEOUT
	ResourceTimeout time.Duration `env:"RESOURCE_TIMEOUT"`
}

// Default timeouts applied when neither environment, flags, nor the JSON
// file specify one. They match the transport defaults of the mobile
// client this SDK replaces.
const (
	DefaultRequestTimeout  = 20 * time.Second
	DefaultResourceTimeout = 30 * time.Second
)

// GetStructuredConfig loads, merges, and validates the full configuration
// from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
