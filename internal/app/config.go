package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // .hcl file or directory of .hcl files

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
