package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the local development backend
	DefaultBaseURL = "http://localhost:8000"

	DefaultTimeout  = 15 * time.Second
	DefaultPageSize = 20

	envBaseURL   = "DRESSDASH_API_URL"
	envThemeFile = "DRESSDASH_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	API         APIConfig    `yaml:"api"`
	Table       TableConfig  `yaml:"table"`
	Export      ExportConfig `yaml:"export"`
	Log         LogConfig    `yaml:"log"`
	Database    DBConfig     `yaml:"database"`
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`
}

// APIConfig locates the admin backend
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// TableConfig tunes every data table
type TableConfig struct {
	PageSize int `yaml:"page_size"`
	// SearchDebounce of zero reports every keystroke
	SearchDebounce time.Duration `yaml:"search_debounce"`
}

// ExportConfig controls where exported files are written
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

// LogConfig controls the log file
type LogConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// DBConfig locates the local session database
type DBConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from DRESSDASH_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(envThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadEnv applies environment overrides
func loadEnv(config *Config) {
	if base := strings.TrimSpace(os.Getenv(envBaseURL)); base != "" {
		config.API.BaseURL = base
	}
	loadThemeFile(config)
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadEnv(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadEnv(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns where Load reads the config file from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "dressdash", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "dressdash", "config.yaml"), nil
}

// dataDir is ~/.dressdash, falling back to the working directory
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".dressdash"
	}
	return filepath.Join(homeDir, ".dressdash")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.Table.PageSize <= 0 {
		c.Table.PageSize = DefaultPageSize
	}
	if c.Table.SearchDebounce < 0 {
		c.Table.SearchDebounce = 0
	}
	if c.Export.Dir == "" {
		c.Export.Dir = filepath.Join(dataDir(), "exports")
	}
	if c.Export.Format == "" {
		c.Export.Format = "csv"
	}
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(dataDir(), "dressdash.db")
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
