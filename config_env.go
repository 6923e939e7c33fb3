package proxyip

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is the environment-driven part of the extractor configuration.
type EnvConfig struct {
	// CustomHeaders lists headers checked before the fixed chain, for example
	// PROXYIP_CUSTOM_HEADERS="X-Edge-Client-IP,X-Lb-Client".
	CustomHeaders []string `env:"PROXYIP_CUSTOM_HEADERS" envSeparator:","`
}

// LoadEnvConfig reads EnvConfig from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Options converts cfg into extractor options. Unset fields contribute
// nothing.
func (cfg EnvConfig) Options() []Option {
	var opts []Option
	if len(cfg.CustomHeaders) > 0 {
		opts = append(opts, WithCustomHeaders(cfg.CustomHeaders...))
	}
	return opts
}

// FromEnv applies configuration read from the environment when New runs.
func FromEnv() Option {
	return func(c *config) error {
		cfg, err := LoadEnvConfig()
		if err != nil {
			return err
		}
		return applyOptions(c, cfg.Options()...)
	}
}
