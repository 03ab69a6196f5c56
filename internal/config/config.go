package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds catalog service configuration
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`       // Empty selects the public API
	ImageBaseURL string `mapstructure:"image_base_url"` // Prefix for poster/backdrop paths
}

// StorageConfig holds local persistence configuration
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"` // Directory for the favorites database
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme      string `mapstructure:"theme"`
	DefaultTab string `mapstructure:"default_tab"` // "home", "search" or "favorites"
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			APIKey:       "",
			BaseURL:      "",
			ImageBaseURL: "https://image.tmdb.org/t/p/w500",
		},
		Storage: StorageConfig{
			DataDir: defaultDataPath(),
		},
		UI: UIConfig{
			Theme:      "default",
			DefaultTab: "home",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee", "marquee.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee", "marquee.log")
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "marquee")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "marquee")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "marquee")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides, e.g. MARQUEE_TMDB_API_KEY
	viper.SetEnvPrefix("MARQUEE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if key := viper.GetString("tmdb_api_key"); key != "" && cfg.TMDB.APIKey == "" {
		cfg.TMDB.APIKey = key
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("tmdb.api_key", cfg.TMDB.APIKey)
	viper.Set("tmdb.base_url", cfg.TMDB.BaseURL)
	viper.Set("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("ui.theme", cfg.UI.Theme)
	viper.Set("ui.default_tab", cfg.UI.DefaultTab)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if a TMDB API key is set
func (c *Config) IsConfigured() bool {
	return c.TMDB.APIKey != ""
}
