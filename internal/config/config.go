package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/balkashynov/swatch/internal/colorapi"
)

// Config holds application configuration.
type Config struct {
	API    APIConfig
	Export ExportConfig
	Log    LogConfig
	UI     UIConfig
}

// APIConfig holds color api settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Mode    string
	Count   int
	Timeout time.Duration
}

// ExportConfig holds export settings.
type ExportConfig struct {
	Dir string
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Dark bool
}

// Load reads configuration from file and env. Env var overrides use prefix SWATCH_.
// An explicit path wins over SWATCH_CONFIG, which wins over the user config dir.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", colorapi.DefaultBaseURL)
	v.SetDefault("api.mode", colorapi.DefaultMode)
	v.SetDefault("api.count", colorapi.DefaultCount)
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("export.dir", ".")
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("log.level", "warn")
	v.SetDefault("ui.dark", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SWATCH_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "swatch"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, c.Validate()
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	var errs []string

	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		errs = append(errs, "api.base_url must start with http:// or https://")
	}
	if c.API.Count <= 0 {
		errs = append(errs, "api.count must be positive")
	}
	if c.API.Timeout < 0 {
		errs = append(errs, "api.timeout must not be negative")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}

// defaultLogFile returns <user cache dir>/swatch/swatch.log
func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "swatch", "swatch.log")
}
