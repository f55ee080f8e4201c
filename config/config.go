package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingEndpoint is returned when no collector endpoint was configured.
var ErrMissingEndpoint = errors.New("endpoint_url is required")

const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StorageDatabase = "database"
	StorageRedis    = "redis"
)

type Configuration struct {
	ApiPort  string `mapstructure:"api_port"`
	LogPath  string `mapstructure:"log_path"`
	LogLevel string `mapstructure:"log_level"`

	// EndpointURL receives one fire-and-forget POST per submission.
	EndpointURL string `mapstructure:"endpoint_url"`

	Database string `mapstructure:"database"` // "sqlite3" or "postgres"
	DbHost   string `mapstructure:"db_host"`
	DbPort   string `mapstructure:"db_port"`
	DbUser   string `mapstructure:"db_user"`
	DbName   string `mapstructure:"db_name"`
	DbPass   string `mapstructure:"db_pass"`
	DbPath   string `mapstructure:"db_path"`

	RedisURL string `mapstructure:"redis_url"`

	Storage struct {
		Backend string `mapstructure:"backend"`
		Path    string `mapstructure:"path"`
		Key     string `mapstructure:"key"`
	} `mapstructure:"storage"`

	Report struct {
		RefreshIntervalSec int `mapstructure:"refresh_interval_sec"`
		DebounceMs         int `mapstructure:"debounce_ms"`
	} `mapstructure:"report"`
}

// RefreshInterval returns the report ticker period.
func (c Configuration) RefreshInterval() time.Duration {
	return time.Duration(c.Report.RefreshIntervalSec) * time.Second
}

// DebounceWindow returns the window used to coalesce refreshes after appends.
func (c Configuration) DebounceWindow() time.Duration {
	return time.Duration(c.Report.DebounceMs) * time.Millisecond
}

// Validate checks the settings that have no sensible default.
func (c Configuration) Validate() error {
	if strings.TrimSpace(c.EndpointURL) == "" {
		return ErrMissingEndpoint
	}
	u, err := url.Parse(c.EndpointURL)
	if err != nil {
		return fmt.Errorf("invalid endpoint_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint_url: %q", c.EndpointURL)
	}

	switch c.Storage.Backend {
	case StorageFile, StorageMemory, StorageDatabase:
	case StorageRedis:
		if c.RedisURL == "" {
			return errors.New("redis_url is required for storage.backend=redis")
		}
	default:
		return fmt.Errorf("unknown storage.backend: %q", c.Storage.Backend)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_port", "8080")
	v.SetDefault("log_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("endpoint_url", "")

	v.SetDefault("database", "sqlite3")
	v.SetDefault("db_host", "")
	v.SetDefault("db_port", "")
	v.SetDefault("db_user", "")
	v.SetDefault("db_name", "")
	v.SetDefault("db_pass", "")
	v.SetDefault("db_path", "db/database.db")

	v.SetDefault("redis_url", "")

	v.SetDefault("storage.backend", StorageFile)
	v.SetDefault("storage.path", "data")
	v.SetDefault("storage.key", "kuesioner_responses")

	v.SetDefault("report.refresh_interval_sec", 60)
	v.SetDefault("report.debounce_ms", 100)
}

// Load reads the JSON configuration at path (optional) and applies
// KUESIONER_* environment overrides, e.g. KUESIONER_ENDPOINT_URL or
// KUESIONER_STORAGE_BACKEND.
func Load(path string) (Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("KUESIONER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return Configuration{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return Configuration{}, fmt.Errorf("decode config: %w", err)
	}

	// defaults (the file may carry explicit empty values)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.Storage.Key == "" {
		c.Storage.Key = "kuesioner_responses"
	}
	if c.Report.RefreshIntervalSec <= 0 {
		c.Report.RefreshIntervalSec = 60
	}
	if c.Report.DebounceMs <= 0 {
		c.Report.DebounceMs = 100
	}

	if err := c.Validate(); err != nil {
		return Configuration{}, err
	}
	return c, nil
}
