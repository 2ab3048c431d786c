package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env       string        `env:"ENV, default=development"`
	Port      string        `env:"PORT, default=3001"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL, default=168h"`

	// DatabaseURL wins over the discrete fields when set (managed hosting).
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST, default=localhost"`
	DBPort      string `env:"DB_PORT, default=5432"`
	DBName      string `env:"DB_NAME, default=service_orders"`
	DBUser      string `env:"DB_USER, default=postgres"`
	DBPassword  string `env:"DB_PASSWORD"`

	RedisAddr string `env:"REDIS_ADDR, default=localhost:6379"`
	RedisDB   int    `env:"REDIS_DB, default=0"`

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW, default=1m"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX, default=1000"`
}

// devJWTSecret só existe para o profile de desenvolvimento. Qualquer
// outro profile recusa subir sem JWT_SECRET explícito.
const devJWTSecret = "dev-only-insecure-secret"

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("config: JWT_SECRET is required when ENV=%s", cfg.Env)
		}
		cfg.JWTSecret = devJWTSecret
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == devJWTSecret
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

// DSN builds the Postgres connection string. A DATABASE_URL coming from
// a managed host must go over TLS, so sslmode=require is appended
// unless the URL already pins one.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		if strings.Contains(c.DatabaseURL, "sslmode=") {
			return c.DatabaseURL
		}
		sep := "?"
		if strings.Contains(c.DatabaseURL, "?") {
			sep = "&"
		}
		return c.DatabaseURL + sep + "sslmode=require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

// Redacted returns a loggable description of the target database.
func (c *Config) Redacted() string {
	if c.DatabaseURL == "" {
		return fmt.Sprintf("host=%s port=%s dbname=%s", c.DBHost, c.DBPort, c.DBName)
	}
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "database_url"
	}
	if u.User != nil {
		u.User = url.User(u.User.Username())
	}
	return u.String()
}
