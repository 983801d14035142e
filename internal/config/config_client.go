package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the backend base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound JSON requests.
	RequestTimeout time.Duration
	// ResourceTimeout is the timeout for image transfers.
	ResourceTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backend address and timeouts.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. Missing timeouts fall back to
// [DefaultRequestTimeout] and [DefaultResourceTimeout].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:         cfg.Adapter.BaseURL,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			ResourceTimeout: cfg.Adapter.ResourceTimeout,
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Adapter.ResourceTimeout == 0 {
		clientCfg.Adapter.ResourceTimeout = DefaultResourceTimeout
	}

	return clientCfg, clientCfg.validate()
}
