package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.Search != "/" {
		t.Errorf("Default Search key = %s, want /", defaults.Search)
	}
	if defaults.NextPage != "]" {
		t.Errorf("Default NextPage key = %s, want ]", defaults.NextPage)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(envBaseURL, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.Table.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", cfg.Table.PageSize, DefaultPageSize)
	}
	if cfg.Table.SearchDebounce != 0 {
		t.Errorf("SearchDebounce = %v, want 0", cfg.Table.SearchDebounce)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(envBaseURL, "")

	configDir := filepath.Join(tempDir, "dressdash")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `api:
  base_url: "https://admin.example.com/api"
  timeout: 5s
table:
  page_size: 50
  search_debounce: 300ms
key_mappings:
  quit: "x"
  search: "f"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.API.BaseURL != "https://admin.example.com/api" {
		t.Errorf("BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.API.Timeout)
	}
	if cfg.Table.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", cfg.Table.PageSize)
	}
	if cfg.Table.SearchDebounce != 300*time.Millisecond {
		t.Errorf("SearchDebounce = %v, want 300ms", cfg.Table.SearchDebounce)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.Search != "f" {
		t.Errorf("Loaded Search key = %s, want f", cfg.KeyMappings.Search)
	}
	// Unset keys fall back to defaults
	if cfg.KeyMappings.Export != "x" {
		t.Errorf("Loaded Export key = %s, want x (default)", cfg.KeyMappings.Export)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Expected accent to have a default value")
	}
}

func TestLoadConfigEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(envBaseURL, "https://staging.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.BaseURL != "https://staging.example.com" {
		t.Errorf("BaseURL = %s, want env value", cfg.API.BaseURL)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "dressdash")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("table: [oops"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(envBaseURL, "")

	cfg := Default()
	cfg.Table.PageSize = 35
	cfg.ColorScheme.Preset = "wave"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Table.PageSize != 35 {
		t.Errorf("PageSize = %d, want 35", loaded.Table.PageSize)
	}
	if loaded.ColorScheme.Preset != "wave" {
		t.Errorf("Preset = %s, want wave", loaded.ColorScheme.Preset)
	}
}
