package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Cache CacheConfig
	Fare  FareConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type JWTConfig struct {
	// Secret has no default on purpose: a missing signing secret is a
	// startup-time fatal, never a per-request error.
	Secret   string        `env:"JWT_SECRET"`
	Issuer   string        `env:"JWT_ISSUER,   default=ridehail-admin"`
	Audience string        `env:"JWT_AUDIENCE, default=ridehail-portal"`
	TTL      time.Duration `env:"JWT_TTL,      default=24h"`
}

type CacheConfig struct {
	// TTL bounds the staleness of the active-trips listing.
	TTL time.Duration `env:"CACHE_TTL, default=1m"`
}

type FareConfig struct {
	Base    float64 `env:"FARE_BASE,     default=2.5"`
	PerUnit float64 `env:"FARE_PER_UNIT, default=1.25"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ridehail_admin"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
