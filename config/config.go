package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorageDriverSQLite = "sqlite"
	StorageDriverFile   = "file"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig `yaml:"environment"`

	// Server
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Logger     LoggerConfig     `yaml:"logger"`

	// Journal
	Storage  StorageConfig  `yaml:"storage"`
	Clock    ClockConfig    `yaml:"clock"`
	Security SecurityConfig `yaml:"security"`
}

type EnvironmentConfig struct {
	Name string `yaml:"name"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"`
}

type LoggerConfig struct {
	Level        string `yaml:"level"`
	Mode         string `yaml:"mode"`
	Encoding     string `yaml:"encoding"`
	ColorEnabled bool   `yaml:"color_enabled"`
}

// StorageConfig selects where the encrypted journal lives. An empty Path
// means the OS data directory.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type ClockConfig struct {
	// Timezone decides which calendar day a task belongs to.
	Timezone string `yaml:"timezone"`
}

type SecurityConfig struct {
	UnlockRatePerMin int `yaml:"unlock_rate_per_min"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/timetracker/
// unless file is given. Environment variables use the TIMETRACKER_ prefix,
// e.g. TIMETRACKER_STORAGE_DRIVER.
func Load(file string) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/timetracker/")
	}

	v.SetEnvPrefix("timetracker")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Journal
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Clock.Timezone = v.GetString("clock.timezone")
	cfg.Security.UnlockRatePerMin = v.GetInt("security.unlock_rate_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.host", "127.0.0.1")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("storage.driver", StorageDriverSQLite)
	v.SetDefault("storage.path", "")
	v.SetDefault("clock.timezone", "Local")
	v.SetDefault("security.unlock_rate_per_min", 10)
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverSQLite, StorageDriverFile:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", StorageDriverSQLite, StorageDriverFile, c.Storage.Driver)
	}
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", c.HTTPServer.Port)
	}
	if c.Security.UnlockRatePerMin <= 0 {
		return fmt.Errorf("security.unlock_rate_per_min must be positive")
	}
	return nil
}
