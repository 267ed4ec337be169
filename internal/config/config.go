package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the process configuration, read from flowershop.yaml and
// FLOWERSHOP_* environment variables (environment wins).
type Config struct {
	Addr         string
	Backend      string // postgres | bolt | memory
	DatabaseURL  string
	BoltPath     string
	RedisAddr    string // empty disables the product-list cache
	JWTSecret    string
	OperatorHash string // bcrypt hash of the operator password
	RateLimit    float64
	RateBurst    int
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("flowershop")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/flowershop")
	v.SetEnvPrefix("flowershop")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("backend", "memory")
	v.SetDefault("bolt_path", "flowershop.db")
	v.SetDefault("rate_limit", 5.0)
	v.SetDefault("rate_burst", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Addr:         v.GetString("addr"),
		Backend:      v.GetString("backend"),
		DatabaseURL:  v.GetString("database_url"),
		BoltPath:     v.GetString("bolt_path"),
		RedisAddr:    v.GetString("redis_addr"),
		JWTSecret:    v.GetString("jwt_secret"),
		OperatorHash: v.GetString("operator_hash"),
		RateLimit:    v.GetFloat64("rate_limit"),
		RateBurst:    v.GetInt("rate_burst"),
	}

	switch cfg.Backend {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("backend postgres requires database_url")
		}
	case "bolt", "memory":
	default:
		return Config{}, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("jwt_secret is required")
	}
	if cfg.OperatorHash == "" {
		return Config{}, errors.New("operator_hash is required")
	}
	return cfg, nil
}
