package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL (e.g. "http://localhost:5000")
//	-request-timeout request timeout (e.g. "20s", "1m")
//	-resource-timeout image transfer timeout (e.g. "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var requestTimeout time.Duration
	var resourceTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "Backend base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 20s, 1m)")
	flag.DurationVar(&resourceTimeout, "resource-timeout", 0, "Image transfer timeout (e.g. 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:         baseURL,
			RequestTimeout:  requestTimeout,
			ResourceTimeout: resourceTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
