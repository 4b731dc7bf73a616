package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration, read from LAUNCHDECK_* variables
type Config struct {
	LaunchesURL string        `env:"LAUNCHDECK_LAUNCHES_URL" envDefault:"https://api.spacexdata.com/v5/launches/upcoming"`
	DBPath      string        `env:"LAUNCHDECK_DB"           envDefault:"launchdeck.db"`
	LaunchFile  string        `env:"LAUNCHDECK_FILE"`
	StaleTime   time.Duration `env:"LAUNCHDECK_STALE_TIME"   envDefault:"5m"`
	HTTPTimeout time.Duration `env:"LAUNCHDECK_HTTP_TIMEOUT" envDefault:"30s"`
	LogLevel    string        `env:"LAUNCHDECK_LOG_LEVEL"    envDefault:"info"`
	LogFile     string        `env:"LAUNCHDECK_LOG_FILE"`
}

// Load reads .env (if present) and then the environment
func Load() (Config, error) {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
	return parse(nil)
}

// parse reads environ, or the process environment when environ is nil
func parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LogPath returns the log file location: LogFile if set, otherwise
// launchdeck.log in the same directory as the database
func (c Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(filepath.Dir(c.DBPath), "launchdeck.log")
}

// ParseLevel maps a level name to a log.Level, defaulting to info
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// NewFileLogger opens (or creates) the log file and returns a logger writing
// to it, plus a close func. The TUI owns the terminal, so logs never go to
// stdout. If the file cannot be opened the logger discards everything.
func NewFileLogger(c Config, prefix string) (*log.Logger, func() error) {
	f, err := os.OpenFile(c.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger := log.New(discard{})
		return logger, func() error { return nil }
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
		Level:           ParseLevel(c.LogLevel),
	})
	return logger, f.Close
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
