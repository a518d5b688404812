// Copyright 2024 - 2026, the PixivGW contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package config loads the server configuration from defaults, an optional
// YAML file, and PIXIVGW_* environment overrides, in that order.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Basic struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`

		// RefreshToken is the upstream OAuth refresh token. Empty means the
		// gateway runs without a session and sends no Authorization header.
		RefreshToken string `yaml:"refreshToken"`
	} `yaml:"basic"`

	Cache struct {
		Enabled bool `yaml:"enabled"`
		Size    int  `yaml:"cacheSize"`
	} `yaml:"cache"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // "console" or "json"
	} `yaml:"log"`
}

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8282"

	cfg.Cache.Enabled = true
	cfg.Cache.Size = 512

	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
}

// Setup loads Global from defaults, the YAML file at configFilePath (when it
// exists), and environment overrides.
func Setup(configFilePath string) error {
	Global.SetDefaults()

	if err := Global.readYAML(configFilePath); err != nil {
		return err
	}

	Global.readEnv()

	return Global.validate()
}

// Addr returns the listen address.
func (cfg *ServerConfig) Addr() string {
	return net.JoinHostPort(cfg.Basic.Host, cfg.Basic.Port)
}

func (cfg *ServerConfig) readYAML(configFilePath string) error {
	if configFilePath == "" {
		return nil
	}

	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		log.Info().
			Str("path", configFilePath).
			Msg("No YAML configuration file found, skipping")

		return nil
	}

	yamlCfg, err := os.ReadFile(configFilePath) // #nosec G304 -- Only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", configFilePath, err)
	}

	if err := yaml.Unmarshal(yamlCfg, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", configFilePath, err)
	}

	log.Info().
		Str("path", configFilePath).
		Msg("Successfully loaded configuration")

	return nil
}

func (cfg *ServerConfig) readEnv() {
	setString := func(target *string, key string) {
		if value, ok := os.LookupEnv(key); ok {
			*target = value
		}
	}

	setString(&cfg.Basic.Host, "PIXIVGW_HOST")
	setString(&cfg.Basic.Port, "PIXIVGW_PORT")
	setString(&cfg.Basic.RefreshToken, "PIXIVGW_REFRESH_TOKEN")
	setString(&cfg.Log.Level, "PIXIVGW_LOG_LEVEL")
	setString(&cfg.Log.Format, "PIXIVGW_LOG_FORMAT")

	if value, ok := os.LookupEnv("PIXIVGW_CACHE"); ok {
		if enabled, err := strconv.ParseBool(value); err == nil {
			cfg.Cache.Enabled = enabled
		} else {
			log.Warn().Str("value", value).Msg("Ignoring invalid PIXIVGW_CACHE")
		}
	}

	if value, ok := os.LookupEnv("PIXIVGW_CACHE_SIZE"); ok {
		if size, err := strconv.Atoi(value); err == nil {
			cfg.Cache.Size = size
		} else {
			log.Warn().Str("value", value).Msg("Ignoring invalid PIXIVGW_CACHE_SIZE")
		}
	}
}

func (cfg *ServerConfig) validate() error {
	if cfg.Cache.Enabled && cfg.Cache.Size <= 0 {
		return fmt.Errorf("cache size must be positive, got %d", cfg.Cache.Size)
	}

	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return fmt.Errorf("log format must be console or json, got %q", cfg.Log.Format)
	}

	if cfg.Basic.RefreshToken == "" {
		log.Warn().Msg("No refresh token configured; requests are sent without authentication")
	}

	return nil
}
