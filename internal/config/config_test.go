package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `{
		"folders": {"images": "./images", "docs": "./docs"},
		"safenames": true
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Folders["images"] != "./images" {
		t.Errorf("Unexpected folders: %v", cfg.Folders)
	}
	if !cfg.SafeNames {
		t.Error("Expected safenames to be true")
	}
	if cfg.Watch != nil {
		t.Error("Expected no watch block")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *ConfigError, got %T", err)
	}
	if cfgErr.Type != FileNotFound {
		t.Errorf("Expected FileNotFound, got %s", cfgErr.Type)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"folders": `)

	_, err := Load(path)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *ConfigError, got %T", err)
	}
	if cfgErr.Type != InvalidJSON {
		t.Errorf("Expected InvalidJSON, got %s", cfgErr.Type)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty folder path", `{"folders": {"images": ""}}`},
		{"watch without drop directory", `{
			"folders": {"images": "./images"},
			"watch": {"folder": "images"}
		}`},
		{"watch without folder", `{
			"folders": {"images": "./images"},
			"watch": {"dropDirectory": "./drop"}
		}`},
		{"watch folder not registered", `{
			"folders": {"images": "./images"},
			"watch": {"dropDirectory": "./drop", "folder": "videos"}
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := Load(path)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected *ConfigError, got %T (%v)", err, err)
			}
			if cfgErr.Type != ValidationError {
				t.Errorf("Expected ValidationError, got %s", cfgErr.Type)
			}
		})
	}
}

func TestLoad_AppliesWatchDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"folders": {"images": "./images"},
		"watch": {"dropDirectory": "./drop", "folder": "images"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Watch.DebounceSeconds != 2 {
		t.Errorf("Expected default debounce 2, got %d", cfg.Watch.DebounceSeconds)
	}
	if cfg.Watch.StableThresholdMs != 1000 {
		t.Errorf("Expected default stable threshold 1000, got %d", cfg.Watch.StableThresholdMs)
	}
}

func TestLoadOrCreate_MissingFile(t *testing.T) {
	cfg, err := LoadOrCreate(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if cfg.Folders == nil || len(cfg.Folders) != 0 {
		t.Errorf("Expected empty folders map, got %v", cfg.Folders)
	}
}

func TestSetFolderAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	cfg.SetFolder("images", "./images")

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}
	if loaded.Folders["images"] != "./images" {
		t.Errorf("Expected saved folder to survive reload, got %v", loaded.Folders)
	}
	if !loaded.HasFolder("images") {
		t.Error("Expected HasFolder to report the saved alias")
	}
}
