package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a configuration
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks the configuration and reports all problems at once
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if cfg.Server.Port == "" {
		add("server.port", "is required")
	}

	switch cfg.Database.Driver {
	case "postgres":
		if cfg.Database.Host == "" {
			add("database.host", "is required for postgres")
		}
		if cfg.Database.Name == "" {
			add("database.name", "is required for postgres")
		}
		if cfg.Database.User == "" {
			add("database.user", "is required for postgres")
		}
		if cfg.Env.IsProduction() && cfg.Database.Password == "" {
			add("database.password", "db_password secret is required in production")
		}
	case "sqlite":
		if cfg.Database.SQLitePath == "" {
			add("database.sqlite_path", "is required for sqlite")
		}
	default:
		add("database.driver", fmt.Sprintf("unsupported driver %q", cfg.Database.Driver))
	}

	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		add("database.max_open_conns", "pool sizes must not be negative")
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Requests <= 0 {
			add("rate_limit.requests", "must be positive")
		}
		if cfg.RateLimit.Window <= 0 {
			add("rate_limit.window", "must be positive")
		}
		if !cfg.Redis.Enabled() {
			add("redis.url", "rate limiting requires redis")
		}
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		add("log_level", fmt.Sprintf("unknown level %q", cfg.LogLevel))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
