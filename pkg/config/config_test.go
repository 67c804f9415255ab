package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("correct config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 9090
  read_timeout: 5s
  write_timeout: 10s
  max_request_size: 4096
  concurrency: 16
stemmer:
  engine: reference
  lower_case: true
  warm_up: false
log:
  file: /tmp/stemmer.log
  json: false
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 4096, cfg.Server.MaxRequestSize)
		assert.Equal(t, 16, cfg.Server.Concurrency)
		assert.Equal(t, "reference", cfg.Stemmer.Engine)
		assert.True(t, cfg.Stemmer.LowerCase)
		assert.False(t, cfg.Stemmer.WarmUp)
		assert.Equal(t, "/tmp/stemmer.log", cfg.Log.File)
		assert.False(t, cfg.Log.JSON)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  port: 7000\n"))
		require.NoError(t, err)

		def := Default()
		assert.Equal(t, 7000, cfg.Server.Port)
		assert.Equal(t, def.Server.ReadTimeout, cfg.Server.ReadTimeout)
		assert.Equal(t, def.Stemmer, cfg.Stemmer)
	})

	t.Run("incorrect config", func(t *testing.T) {
		_, err := Load(writeConfig(t, "1234"))
		assert.EqualError(t, err, "yaml: unmarshal errors:\n  line 1: cannot unmarshal !!int `1234` into config.Config")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "stemmer:\n  engine: snowball\n"))
		assert.ErrorContains(t, err, `unknown stemmer engine "snowball"`)
	})

	t.Run("no file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server port must be between 1 and 65535"},
		{"port too big", func(c *Config) { c.Server.Port = 70000 }, "server port must be between 1 and 65535"},
		{"no timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "server timeouts must be greater than 0"},
		{"no body", func(c *Config) { c.Server.MaxRequestSize = 0 }, "max request size must be greater than 0"},
		{"negative concurrency", func(c *Config) { c.Server.Concurrency = -1 }, "concurrency must not be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.errMsg)
		})
	}
}
