// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	// Verify a few key defaults to ensure the mechanism works.
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, "https://admin-demo.nopcommerce.com", cfg.Target.BaseURL)
	assert.Equal(t, "admin@yourstore.com", cfg.Target.AdminEmail)
	assert.Equal(t, 10*time.Second, cfg.Waits.Timeout)
	assert.Equal(t, 3*time.Second, cfg.Waits.OptionalField)
	assert.Equal(t, 250*time.Millisecond, cfg.Waits.PollInterval)
	assert.Equal(t, 1920, cfg.Browser.WindowWidth)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("browser.headless", false)
	v.Set("browser.exec_path", "/opt/chromedriver/chrome")
	v.Set("target.base_url", "http://localhost:8080")
	v.Set("waits.timeout", "15s")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, "/opt/chromedriver/chrome", cfg.Browser.ExecPath)
	assert.Equal(t, "http://localhost:8080", cfg.Target.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Waits.Timeout)
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	t.Run("valid defaults pass", func(t *testing.T) {
		cfg := NewDefault()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing base url", func(t *testing.T) {
		cfg := NewDefault()
		cfg.Target.BaseURL = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "target.base_url")
	})

	t.Run("relative base url", func(t *testing.T) {
		cfg := NewDefault()
		cfg.Target.BaseURL = "admin-demo.nopcommerce.com"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "absolute http(s) URL")
	})

	t.Run("non positive timeout", func(t *testing.T) {
		cfg := NewDefault()
		cfg.Waits.Timeout = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "waits.timeout")
	})

	t.Run("optional field wait longer than general timeout", func(t *testing.T) {
		cfg := NewDefault()
		cfg.Waits.OptionalField = cfg.Waits.Timeout + time.Second
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "waits.optional_field")
	})

	t.Run("invalid window size", func(t *testing.T) {
		cfg := NewDefault()
		cfg.Browser.WindowHeight = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "window_width")
	})
}

func TestFromViperRejectsInvalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("waits.poll_interval", "0s")

	_, err := FromViper(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
