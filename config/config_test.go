// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var cfg ServerConfig

	cfg.SetDefaults()

	assert.Equal(t, "localhost", cfg.Basic.Host)
	assert.Equal(t, "8282", cfg.Basic.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 512, cfg.Cache.Size)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "localhost:8282", cfg.Addr())
}

func TestSetupReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
basic:
  host: 0.0.0.0
  port: "9000"
  refreshToken: yaml-token
cache:
  enabled: false
log:
  level: debug
  format: json
`), 0o600))

	require.NoError(t, Setup(path))

	assert.Equal(t, "0.0.0.0:9000", Global.Addr())
	assert.Equal(t, "yaml-token", Global.Basic.RefreshToken)
	assert.False(t, Global.Cache.Enabled)
	assert.Equal(t, "debug", Global.Log.Level)
	assert.Equal(t, "json", Global.Log.Format)
}

func TestSetupSkipsMissingYAML(t *testing.T) {
	require.NoError(t, Setup(filepath.Join(t.TempDir(), "nonexistent.yaml")))

	assert.Equal(t, "localhost:8282", Global.Addr())
}

func TestEnvOverridesYAML(t *testing.T) {
	t.Setenv("PIXIVGW_PORT", "7000")
	t.Setenv("PIXIVGW_REFRESH_TOKEN", "env-token")
	t.Setenv("PIXIVGW_CACHE", "false")
	t.Setenv("PIXIVGW_CACHE_SIZE", "64")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
basic:
  port: "9000"
  refreshToken: yaml-token
`), 0o600))

	require.NoError(t, Setup(path))

	assert.Equal(t, "7000", Global.Basic.Port)
	assert.Equal(t, "env-token", Global.Basic.RefreshToken)
	assert.False(t, Global.Cache.Enabled)
	assert.Equal(t, 64, Global.Cache.Size)
}

func TestEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PIXIVGW_CACHE", "maybe")
	t.Setenv("PIXIVGW_CACHE_SIZE", "lots")

	require.NoError(t, Setup(""))

	assert.True(t, Global.Cache.Enabled)
	assert.Equal(t, 512, Global.Cache.Size)
}

func TestValidateRejectsBadValues(t *testing.T) {
	var cfg ServerConfig

	cfg.SetDefaults()
	cfg.Cache.Size = 0

	require.Error(t, cfg.validate())

	cfg.SetDefaults()
	cfg.Log.Format = "xml"

	require.Error(t, cfg.validate())
}
