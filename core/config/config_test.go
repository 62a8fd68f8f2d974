/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Ekfrasi Authors
*/

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ekfrasi.toml")
	content := `
[runtime]
app_root = "./app"

[inspect]
listen = "127.0.0.1:9000"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Runtime.AppRoot != "./app" {
		t.Errorf("AppRoot = %q, want %q", cfg.Runtime.AppRoot, "./app")
	}
	if cfg.Inspect.Listen != "127.0.0.1:9000" {
		t.Errorf("Listen = %q, want %q", cfg.Inspect.Listen, "127.0.0.1:9000")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ekfrasi.toml")
	if err := os.WriteFile(path, []byte("[runtime]\napp_root = \"./x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Inspect.Listen != DefaultConfig().Inspect.Listen {
		t.Errorf("Listen = %q, want default %q", cfg.Inspect.Listen, DefaultConfig().Inspect.Listen)
	}
}

func TestFindConfigFileUpwardSearch(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(root, "ekfrasi.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if found := FindConfigFile(nested); found != path {
		t.Errorf("FindConfigFile = %q, want %q", found, path)
	}
}

func TestFindAndLoadWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, path, err := FindAndLoad(dir)
	if err != nil {
		t.Fatalf("FindAndLoad error: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty for missing config", path)
	}
	if cfg.Inspect.Listen != DefaultConfig().Inspect.Listen {
		t.Errorf("Listen = %q, want default", cfg.Inspect.Listen)
	}
}
