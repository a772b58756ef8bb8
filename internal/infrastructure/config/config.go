package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	SessionKey string `env:"SESSION_KEY, default=apollo_auth"`

	// SessionBackend selects where the session slot persists: "memory" or "redis".
	SessionBackend string `env:"SESSION_BACKEND, default=memory"`

	// SeedFile optionally points at a YAML bootstrap file; empty means the
	// built-in Apollo demo seed.
	SeedFile string `env:"SEED_FILE"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
