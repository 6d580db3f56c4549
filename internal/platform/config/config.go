package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "ROLLCALL_"

// Server captures process level configuration.
type Server struct {
	Addr      string `env:"ADDR"       envDefault:":8080"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// MetadataDir holds one <abbr>.yaml file per jurisdiction.
	MetadataDir string `env:"METADATA_DIR" envDefault:"./metadata"`
	// FixturesDir seeds the in-memory document store when DatabaseURL is empty.
	FixturesDir string `env:"FIXTURES_DIR"`
	DatabaseURL string `env:"DATABASE_URL"`

	MetadataCacheTTL time.Duration `env:"METADATA_CACHE_TTL" envDefault:"10m"`
	OTelEndpoint     string        `env:"OTEL_ENDPOINT"`

	Redis RedisConfig `envPrefix:"REDIS_"`
}

// RedisConfig configures the optional metadata cache. An empty URL disables it.
type RedisConfig struct {
	URL          string        `env:"URL"`
	PoolSize     int           `env:"POOL_SIZE"      envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT"   envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT"   envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"  envDefault:"3s"`
}

// FromEnv builds a Server config from ROLLCALL_* environment variables.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (s Server) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid %sLOG_LEVEL %q", envPrefix, s.LogLevel)
	}
	switch s.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("invalid %sLOG_FORMAT %q", envPrefix, s.LogFormat)
	}
	if s.MetadataDir == "" {
		return fmt.Errorf("%sMETADATA_DIR is required", envPrefix)
	}
	if s.MetadataCacheTTL <= 0 {
		return fmt.Errorf("%sMETADATA_CACHE_TTL must be positive", envPrefix)
	}
	return nil
}
