package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env Environment `mapstructure:"-"`

	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Search    SearchConfig    `mapstructure:"search"`

	LogLevel       string `mapstructure:"log_level"`
	LogDevelopment bool   `mapstructure:"log_development"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	MigrationsDir   string        `mapstructure:"migrations_dir"`
}

// DSN returns the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether any redis endpoint is configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Host != ""
}

type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type SearchConfig struct {
	// StrictRanges rejects malformed range parameters instead of dropping them.
	StrictRanges bool `mapstructure:"strict_ranges"`
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"server.host":                "SERVER_HOST",
	"server.port":                "SERVER_PORT",
	"server.read_timeout":        "SERVER_READ_TIMEOUT",
	"server.write_timeout":       "SERVER_WRITE_TIMEOUT",
	"server.shutdown_timeout":    "SERVER_SHUTDOWN_TIMEOUT",
	"database.driver":            "DB_DRIVER",
	"database.host":              "DB_HOST",
	"database.port":              "DB_PORT",
	"database.user":              "DB_USER",
	"database.password":          "DB_PASSWORD",
	"database.name":              "DB_NAME",
	"database.ssl_mode":          "DB_SSL_MODE",
	"database.sqlite_path":       "DB_SQLITE_PATH",
	"database.max_open_conns":    "DB_MAX_OPEN_CONNS",
	"database.max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"database.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
	"database.auto_migrate":      "DB_AUTO_MIGRATE",
	"database.migrations_dir":    "DB_MIGRATIONS_DIR",
	"redis.url":                  "REDIS_URL",
	"redis.host":                 "REDIS_HOST",
	"redis.port":                 "REDIS_PORT",
	"redis.password":             "REDIS_PASSWORD",
	"redis.db":                   "REDIS_DB",
	"rate_limit.enabled":         "RATE_LIMIT_ENABLED",
	"rate_limit.requests":        "RATE_LIMIT_REQUESTS",
	"rate_limit.window":          "RATE_LIMIT_WINDOW",
	"cors.allow_origins":         "CORS_ALLOW_ORIGINS",
	"search.strict_ranges":       "SEARCH_STRICT_RANGES",
	"log_level":                  "LOG_LEVEL",
	"log_development":            "LOG_DEVELOPMENT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "brewfinder")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.sqlite_path", "brewfinder.db")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.migrations_dir", "migrations")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests", 120)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000"})
	v.SetDefault("search.strict_ranges", false)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_development", false)
}

// LoadConfig reads configuration from defaults, an optional .env file,
// environment variables and Docker secrets, then validates it.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Env = GetEnvironment()

	// Passwords fall back to Docker secrets when not set in the environment.
	if cfg.Database.Password == "" {
		cfg.Database.Password = readSecret("db_password")
	}
	if cfg.Redis.Password == "" {
		cfg.Redis.Password = readSecret("redis_password")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
