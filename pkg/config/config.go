package config

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the CLI and service embedders need to build a
// registry client. All values have working defaults; a bare environment
// yields a usable configuration.
type Config struct {
	// Endpoint is the VIES checkVat service URL.
	Endpoint string `env:"VIES_ENDPOINT" envDefault:"https://ec.europa.eu/taxation_customs/vies/services/checkVatService"`
	// Timeout is the per-call request timeout.
	Timeout time.Duration `env:"VIES_TIMEOUT" envDefault:"15s"`

	// CacheSize and CacheTTL size the in-process result cache.
	// CacheSize 0 disables caching.
	CacheSize int           `env:"VIES_CACHE_SIZE" envDefault:"1024"`
	CacheTTL  time.Duration `env:"VIES_CACHE_TTL" envDefault:"1h"`

	// RedisURL, when set, switches the result cache to Redis so confirmed
	// lookups are shared across instances. Format: "redis://:pass@host:6379/0".
	RedisURL string `env:"VIES_REDIS_URL"`

	// LogLevel is one of debug, info, warn, error. LogFormat is text or json.
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

var defaultEnvLoaded sync.Once

// Load reads configuration from the environment, loading a .env file first
// if one exists. Unlike a required-field config, Load never fails on an
// empty environment; it fails only on unparsable values.
func Load() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure, for use during startup
// where a broken environment should prevent the process from running.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
