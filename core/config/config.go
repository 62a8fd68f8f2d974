/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

// Package config loads project configuration from ekfrasi.toml.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the project configuration.
type Config struct {
	Runtime RuntimeConfig `toml:"runtime"`
	Inspect InspectConfig `toml:"inspect"`
}

// RuntimeConfig configures how emitted programs resolve their support code.
type RuntimeConfig struct {
	// AppRoot replaces the leading "$" alias in import paths of the
	// emitted program, e.g. "$/utils/state" -> "<app_root>/utils/state".
	// Empty leaves the alias for the target bundler to resolve.
	AppRoot string `toml:"app_root"`
}

// InspectConfig configures the expression inspector server.
type InspectConfig struct {
	Listen string `toml:"listen"`
}

// DefaultConfig returns the configuration used when no ekfrasi.toml exists.
func DefaultConfig() *Config {
	return &Config{
		Inspect: InspectConfig{
			Listen: "127.0.0.1:8098",
		},
	}
}

// FindAndLoad searches upward from startDir for ekfrasi.toml and loads it.
// Returns the default configuration and an empty path when none is found.
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}
	return config, configPath, nil
}

// FindConfigFile searches upward from startDir for ekfrasi.toml.
func FindConfigFile(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, "ekfrasi.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load loads a configuration file, filling defaults for unset values.
func Load(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}

	if config.Inspect.Listen == "" {
		config.Inspect.Listen = DefaultConfig().Inspect.Listen
	}
	return &config, nil
}
