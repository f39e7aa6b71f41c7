package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the service settings, sourced from the environment. A
// .env file in the working directory is loaded first when present.
type Config struct {
	Addr      string `env:"FINCALC_ADDR" envDefault:":8080"`
	RedisAddr string `env:"FINCALC_REDIS_ADDR"` // empty selects the in-memory cache

	RateLimitRequests int           `env:"FINCALC_RATE_LIMIT_REQUESTS" envDefault:"30"`
	RateLimitWindow   time.Duration `env:"FINCALC_RATE_LIMIT_WINDOW" envDefault:"1m"`

	ReadTimeout     time.Duration `env:"FINCALC_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"FINCALC_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"FINCALC_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"FINCALC_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (Config, error) {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
