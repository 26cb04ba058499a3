// Package config reads dashboard settings from the environment.
// An optional .env file in the working directory is loaded first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "DASHBOARD"

type Config struct {
	Addr               string   `mapstructure:"addr"`
	DatasetPath        string   `mapstructure:"dataset_path"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
	TrustedProxies     []string `mapstructure:"trusted_proxies"`
	RateLimitPerSecond float64  `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int      `mapstructure:"rate_limit_burst"`
	LogLevel           string   `mapstructure:"log_level"`
	LogFormat          string   `mapstructure:"log_format"`
	TraceStdout        bool     `mapstructure:"trace_stdout"`
	GinMode            string   `mapstructure:"gin_mode"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8050")
	v.SetDefault("dataset_path", "spacex_launch_dash.csv")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("trusted_proxies", []string{})
	v.SetDefault("rate_limit_per_second", 20.0)
	v.SetDefault("rate_limit_burst", 40)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("trace_stdout", false)
	v.SetDefault("gin_mode", "release")
}

// Load reads .env (if present) and the DASHBOARD_* environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env : %w", err)
	}
	return FromViper(viper.New())
}

// FromViper resolves the configuration from v, which Load binds to the
// environment. Tests pass a viper instance with explicit values.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config to struct : %w", err)
	}
	cfg.AllowedOrigins = splitList(cfg.AllowedOrigins)
	cfg.TrustedProxies = splitList(cfg.TrustedProxies)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("config: addr must not be empty")
	case c.DatasetPath == "":
		return errors.New("config: dataset_path must not be empty")
	case c.RateLimitPerSecond <= 0:
		return fmt.Errorf("config: rate_limit_per_second must be positive, got %v", c.RateLimitPerSecond)
	case c.RateLimitBurst <= 0:
		return fmt.Errorf("config: rate_limit_burst must be positive, got %d", c.RateLimitBurst)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: unknown gin_mode %q", c.GinMode)
	}
	return nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	return len(c.AllowedOrigins) == 0 || (len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*")
}

// splitList accepts both a list and a single comma separated env value.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
