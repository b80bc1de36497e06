package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line client, assembled
// from the same sources as [StructuredConfig] except command-line flags,
// which the client parses itself.
type ClientConfig struct {
	// HTTPAddress is the base address of the notes API.
	HTTPAddress string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
	// LogLevel is a zerolog level name.
	LogLevel string
	// SessionFile is the path of the saved login session.
	SessionFile string
}

// GetClientConfig builds and validates the client view of the merged
// configuration. Server-only settings such as the token sign key are not
// required here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		LogLevel:       cfg.App.LogLevel,
		SessionFile:    cfg.Adapter.SessionFile,
	}
}
