package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gravitrone/operadoras/internal/api"
)

// BaseURLEnv overrides the configured API base URL.
const BaseURLEnv = "OPERADORAS_BASE_URL"

// Config holds dashboard configuration stored at ~/.operadoras/config.
type Config struct {
	BaseURL   string `yaml:"base_url"`
	ListLimit int    `yaml:"list_limit"`
	Timeout   string `yaml:"timeout"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		BaseURL:   api.DefaultBaseURL,
		ListLimit: api.DefaultListLimit,
		Timeout:   api.DefaultTimeout.String(),
		LogLevel:  "info",
	}
}

// Dir returns the configuration directory.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".operadoras")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// DefaultLogFile is where the dashboard logs while it owns the terminal.
func DefaultLogFile() string {
	return filepath.Join(Dir(), "operadoras.log")
}

// Load reads the config file on top of the defaults. A missing file is not
// an error. The base URL environment override is applied last.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if env := strings.TrimSpace(os.Getenv(BaseURLEnv)); env != "" {
		cfg.BaseURL = env
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that would otherwise fail later at request time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("config missing base_url")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://: %q", c.BaseURL)
	}
	if c.ListLimit < 0 {
		return fmt.Errorf("list_limit must not be negative: %d", c.ListLimit)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout, defaulting to the API default when empty.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return api.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	return d, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
