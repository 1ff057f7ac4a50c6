package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	DatabaseURL string   `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Doctor session tokens.
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	TokenTTLMin int    `mapstructure:"TOKEN_TTL_MIN"`

	// Chat-completions endpoint used by the consultation agent. The chat
	// surface is disabled when LLM_API_KEY is empty.
	LLMBaseURL string `mapstructure:"LLM_BASE_URL"`
	LLMAPIKey  string `mapstructure:"LLM_API_KEY"`
	LLMModel   string `mapstructure:"LLM_MODEL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("TOKEN_TTL_MIN", 120)
	v.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("TOKEN_TTL_MIN")
	v.BindEnv("LLM_BASE_URL")
	v.BindEnv("LLM_API_KEY")
	v.BindEnv("LLM_MODEL")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ChatEnabled reports whether the agent chat endpoints should be mounted.
func (c *Config) ChatEnabled() bool {
	return c.LLMAPIKey != ""
}

// Validate checks that the configuration is safe to run. Outside development
// a JWT secret is mandatory so that the API cannot start unauthenticated.
func (c *Config) Validate() error {
	if !c.IsDev() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENV=%q", c.Env)
	}
	if c.TokenTTLMin <= 0 {
		return fmt.Errorf("TOKEN_TTL_MIN must be positive, got %d", c.TokenTTLMin)
	}
	return nil
}
