package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const DEFAULT_ANALYZER_URL = "https://backendsentimentanalysis.onrender.com/generate_report"

// Config is the process configuration, read from the environment after
// LoadEnv has applied the env file for APP_ENV.
type Config struct {
	Env      string         `envconfig:"APP_ENV" default:"dev"`
	Theme    string         `envconfig:"THEME" default:"dark"`
	Analyzer AnalyzerConfig `envconfig:"ANALYZER"`
	Log      LogConfig      `envconfig:"LOG"`
	Stub     StubConfig     `envconfig:"STUB"`
}

type AnalyzerConfig struct {
	URL            string        `envconfig:"URL" default:"https://backendsentimentanalysis.onrender.com/generate_report"`
	Timeout        time.Duration `envconfig:"TIMEOUT" default:"60s"`
	HealthURL      string        `envconfig:"HEALTH_URL"`
	HealthInterval time.Duration `envconfig:"HEALTH_INTERVAL" default:"15s"`
}

type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
	File  string `envconfig:"FILE"`
}

type StubConfig struct {
	Addr string `envconfig:"ADDR" default:":8085"`
}

// Load decodes the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validateURL("ANALYZER_URL", c.Analyzer.URL); err != nil {
		return err
	}
	if c.Analyzer.HealthURL != "" {
		if err := validateURL("ANALYZER_HEALTH_URL", c.Analyzer.HealthURL); err != nil {
			return err
		}
	}
	if c.Analyzer.Timeout < 0 {
		return fmt.Errorf("ANALYZER_TIMEOUT must not be negative, got %s", c.Analyzer.Timeout)
	}

	switch strings.ToLower(c.Theme) {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme: %s (must be one of: dark, light)", c.Theme)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.Log.Level)
	}

	return nil
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s: %q must use http or https", key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s: %q has no host", key, raw)
	}
	return nil
}
