package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration of the service.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	AuditAPI AuditAPIConfig `mapstructure:"audit_api"`
	Activity ActivityConfig `mapstructure:"activity"`
	Audits   AuditsConfig   `mapstructure:"audits"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address for fiber.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AuditAPIConfig describes the backend audit API this service reads from.
type AuditAPIConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	ReportPath string        `mapstructure:"report_path"`
	ListPath   string        `mapstructure:"list_path"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// ActivityConfig holds the daily activity aggregation knobs.
type ActivityConfig struct {
	WindowDays         int    `mapstructure:"window_days"`
	MaxWindowDays      int    `mapstructure:"max_window_days"`
	DayQueryLimit      int    `mapstructure:"day_query_limit"`
	MaxParallelQueries int    `mapstructure:"max_parallel_queries"` // 0 = one per day
	Timezone           string `mapstructure:"timezone"`
}

// Location resolves Timezone. An empty value or "Local" is the process zone.
func (a ActivityConfig) Location() (*time.Location, error) {
	if a.Timezone == "" || a.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid activity.timezone %q: %w", a.Timezone, err)
	}
	return loc, nil
}

type AuditsConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// LoadConfig reads config.yaml (optional) and overlays environment variables,
// e.g. AUDIT_API_BASE_URL overrides audit_api.base_url.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the aggregator cannot run with.
func (c *Config) Validate() error {
	if c.AuditAPI.BaseURL == "" {
		return errors.New("audit_api.base_url is required")
	}
	if c.Activity.WindowDays <= 0 {
		return errors.New("activity.window_days must be positive")
	}
	if c.Activity.MaxWindowDays < c.Activity.WindowDays {
		return errors.New("activity.max_window_days must be >= activity.window_days")
	}
	if c.Activity.DayQueryLimit <= 0 {
		return errors.New("activity.day_query_limit must be positive")
	}
	if c.Activity.MaxParallelQueries < 0 {
		return errors.New("activity.max_parallel_queries must not be negative")
	}
	if _, err := c.Activity.Location(); err != nil {
		return err
	}
	if c.Audits.DefaultLimit <= 0 || c.Audits.MaxLimit < c.Audits.DefaultLimit {
		return errors.New("audits.default_limit must be positive and <= audits.max_limit")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("audit_api.base_url", "http://localhost:8081")
	v.SetDefault("audit_api.report_path", "/api/audit/report")
	v.SetDefault("audit_api.list_path", "/api/audit/list")
	v.SetDefault("audit_api.timeout", 30*time.Second)

	v.SetDefault("activity.window_days", 7)
	v.SetDefault("activity.max_window_days", 90)
	v.SetDefault("activity.day_query_limit", 1000)
	v.SetDefault("activity.max_parallel_queries", 0)
	v.SetDefault("activity.timezone", "Local")

	v.SetDefault("audits.default_limit", 20)
	v.SetDefault("audits.max_limit", 1000)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
}
