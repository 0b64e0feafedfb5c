// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Browser BrowserConfig `mapstructure:"browser" yaml:"browser"`
	Target  TargetConfig  `mapstructure:"target" yaml:"target"`
	Waits   WaitConfig    `mapstructure:"waits" yaml:"waits"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// BrowserConfig holds settings for the browser instance the fixture owns.
// CI is bound to the GITHUB_ACTIONS environment variable: on CI runners the
// fixture forces headless mode, sandbox-off flags, and a throwaway profile
// directory; locally it launches the binary found at ExecPath (or the
// system default when ExecPath is empty).
type BrowserConfig struct {
	Headless     bool     `mapstructure:"headless" yaml:"headless"`
	CI           bool     `mapstructure:"ci" yaml:"ci"`
	ExecPath     string   `mapstructure:"exec_path" yaml:"exec_path"`
	Args         []string `mapstructure:"args" yaml:"args"`
	WindowWidth  int      `mapstructure:"window_width" yaml:"window_width"`
	WindowHeight int      `mapstructure:"window_height" yaml:"window_height"`
}

// TargetConfig identifies the admin application under test.
type TargetConfig struct {
	BaseURL       string `mapstructure:"base_url" yaml:"base_url"`
	AdminEmail    string `mapstructure:"admin_email" yaml:"admin_email"`
	AdminPassword string `mapstructure:"admin_password" yaml:"-"`
}

// WaitConfig tunes the explicit waiting contract. Timeout bounds every
// element/title wait; OptionalField bounds the shorter wait used for form
// fields that may legitimately be absent; PollInterval drives title
// polling; Startup bounds browser launch verification.
type WaitConfig struct {
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout"`
	OptionalField time.Duration `mapstructure:"optional_field" yaml:"optional_field"`
	PollInterval  time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	Startup       time.Duration `mapstructure:"startup" yaml:"startup"`
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "storesuite")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("logger.compress", true)

	// -- Browser --
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.ci", false)
	v.SetDefault("browser.exec_path", "")
	v.SetDefault("browser.window_width", 1920)
	v.SetDefault("browser.window_height", 1080)

	// -- Target --
	v.SetDefault("target.base_url", "https://admin-demo.nopcommerce.com")
	v.SetDefault("target.admin_email", "admin@yourstore.com")
	v.SetDefault("target.admin_password", "admin")

	// -- Waits --
	v.SetDefault("waits.timeout", 10*time.Second)
	v.SetDefault("waits.optional_field", 3*time.Second)
	v.SetDefault("waits.poll_interval", 250*time.Millisecond)
	v.SetDefault("waits.startup", 30*time.Second)
}

// NewDefault creates a configuration populated with default values only.
func NewDefault() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := FromViper(v)
	if err != nil {
		// Defaults must always validate.
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// FromViper unmarshals and validates a configuration from a viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	// The CI switch doubles as the execution-environment signal; bind it to
	// the well-known CI variable so runners need no extra wiring.
	_ = v.BindEnv("browser.ci", "STORESUITE_BROWSER_CI", "GITHUB_ACTIONS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.Target.BaseURL == "" {
		return fmt.Errorf("target.base_url is a required configuration field")
	}
	u, err := url.Parse(c.Target.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("target.base_url must be an absolute http(s) URL, got %q", c.Target.BaseURL)
	}
	if c.Waits.Timeout <= 0 {
		return fmt.Errorf("waits.timeout must be a positive duration")
	}
	if c.Waits.OptionalField <= 0 || c.Waits.OptionalField > c.Waits.Timeout {
		return fmt.Errorf("waits.optional_field must be positive and no longer than waits.timeout")
	}
	if c.Waits.PollInterval <= 0 {
		return fmt.Errorf("waits.poll_interval must be a positive duration")
	}
	if c.Waits.Startup <= 0 {
		return fmt.Errorf("waits.startup must be a positive duration")
	}
	if c.Browser.WindowWidth <= 0 || c.Browser.WindowHeight <= 0 {
		return fmt.Errorf("browser.window_width and browser.window_height must be positive")
	}
	return nil
}
