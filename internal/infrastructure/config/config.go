package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session cookie; sessions cannot be trusted
	// without it, so it has no default.
	SessionSecret string        `env:"SESSION_SECRET, required"`
	SessionTTL    time.Duration `env:"SESSION_TTL,    default=24h"`

	// PublicDomain is used only to build the login link inside the
	// approval email, e.g. "cases.example.com".
	PublicDomain string `env:"PUBLIC_DOMAIN, default=localhost:8080"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
	Boss  BossSeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=case_tracker"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Account  string `env:"SMTP_ACCOUNT"`
	Password string `env:"SMTP_PASSWORD"`
}

// BossSeedConfig optionally bootstraps the boss account at startup. Boss
// accounts have no registration path; without a seed one must be created
// directly in storage.
type BossSeedConfig struct {
	Email    string `env:"BOSS_EMAIL"`
	Password string `env:"BOSS_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
