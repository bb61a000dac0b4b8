// Package config loads runtime configuration from defaults, an optional config
// file, .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Oracle   OracleConfig   `mapstructure:"oracle"`
	Search   SearchConfig   `mapstructure:"search"`
	FX       FXConfig       `mapstructure:"fx"`
	Page     PageConfig     `mapstructure:"page"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	AllowOrigins    []string      `mapstructure:"allow_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// OracleConfig points at the OpenAI-compatible gateway serving both chat
// completions and search.
type OracleConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SearchConfig struct {
	MaxResults    int     `mapstructure:"max_results"`
	SnippetChars  int     `mapstructure:"snippet_chars"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	Burst         int     `mapstructure:"burst"`
}

type FXConfig struct {
	URL           string             `mapstructure:"url"`
	Timeout       time.Duration      `mapstructure:"timeout"`
	FallbackRates map[string]float64 `mapstructure:"fallback_rates"`
}

// PageConfig controls fetching of product pages during identification.
type PageConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries uint64        `mapstructure:"max_retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type AuthConfig struct {
	JWTKey      string        `mapstructure:"jwt_key"`
	AdminSecret string        `mapstructure:"admin_secret"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Dev   bool   `mapstructure:"dev"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("oracle.base_url", "https://space.ai-builders.com/backend/v1")
	v.SetDefault("oracle.token", "")
	v.SetDefault("oracle.model", "grok-4-fast")
	v.SetDefault("oracle.timeout", 90*time.Second)

	v.SetDefault("search.max_results", 5)
	v.SetDefault("search.snippet_chars", 300)
	v.SetDefault("search.rate_per_second", 8.0)
	v.SetDefault("search.burst", 8)

	v.SetDefault("fx.url", "https://api.exchangerate-api.com/v4/latest/USD")
	v.SetDefault("fx.timeout", 10*time.Second)
	v.SetDefault("fx.fallback_rates", map[string]float64{})

	v.SetDefault("page.timeout", 10*time.Second)
	v.SetDefault("page.max_retries", 2)
	v.SetDefault("page.retry_delay", 200*time.Millisecond)

	v.SetDefault("database.dsn", "")

	v.SetDefault("auth.jwt_key", "change-me")
	v.SetDefault("auth.admin_secret", "")
	v.SetDefault("auth.session_ttl", 30*24*time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dev", false)
}

// Load reads configuration. path may be empty, in which case only defaults,
// .env files and the environment are used.
func Load(path string) (*Config, error) {
	// .env files are optional
	_ = godotenv.Load(".env.local", ".env")

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("oracle.token", "AI_BUILDER_TOKEN", "ORACLE_TOKEN"); err != nil {
		return nil, fmt.Errorf("viper.BindEnv: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
			}
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("search.max_results must be positive, got %d", c.Search.MaxResults)
	}
	if c.Search.Burst <= 0 {
		return fmt.Errorf("search.burst must be positive, got %d", c.Search.Burst)
	}
	for currency, rate := range c.FX.FallbackRates {
		if rate <= 0 {
			return fmt.Errorf("fx.fallback_rates.%s must be positive", currency)
		}
	}
	return nil
}
