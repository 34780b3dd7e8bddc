package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every externally supplied setting. It is loaded once at
// startup and passed by value into constructors; nothing reads the
// environment after that.
type Config struct {
	Port     string `env:"PORT,       default=5050"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	// JWTSecret signs access tokens; RefreshSecret signs refresh tokens.
	// They must differ so that one kind of token never verifies as the other.
	JWTSecret     string `env:"JWT_SECRET,     required"`
	RefreshSecret string `env:"REFRESH_SECRET, required"`

	// Admin is the single username granted the admin role at registration.
	Admin string `env:"ADMIN, required"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=adminpanel"`
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
