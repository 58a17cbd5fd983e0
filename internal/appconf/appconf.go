package appconf

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Environment is the operating environment of the site (development, test, production).
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps a command line / environment value onto an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(value string) Environment {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the site. Values are read from
// TECHEXPO_* environment variables first and may then be overridden by flags.
type Config struct {
	Port           int           `env:"PORT" envDefault:"4000"`
	EnvName        string        `env:"ENV" envDefault:"development"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	MongoURI       string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/techexpo"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	RateLimit      int           `env:"RATE_LIMIT" envDefault:"50"`
	SignUpPath     string        `env:"SIGN_UP_PATH" envDefault:"/sign-up"`
	ShutdownGrace  time.Duration `env:"SHUTDOWN_GRACE" envDefault:"15s"`
}

// Env returns the parsed operating environment.
func (c Config) Env() Environment {
	return EnvFlagToEnvironment(c.EnvName)
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads the configuration from the given environment map, or from the
// process environment when environ is nil.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: "TECHEXPO_"}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
