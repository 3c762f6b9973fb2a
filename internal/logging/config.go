// Package logging configures the process-wide zerolog logger.
//
// Diagnostics go to stderr so they never mix with generated output or the
// progress lines printed on stdout.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

const (
	EnvLogLevel     = "EMBEDGEN_LOG_LEVEL"
	EnvLogTimestamp = "EMBEDGEN_LOG_TIMESTAMP"
	EnvLogNoColor   = "EMBEDGEN_LOG_NOCOLOR"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger configuration.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime, os.Stderr)
}

func ConfigureTests() {
	Configure(ProfileTest, os.Stderr)
}

// Configure installs the global logger once per process. Later calls are no-ops.
func Configure(profile Profile, out io.Writer) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)
		log.Logger = New(cfg, out)
		zerolog.SetGlobalLevel(cfg.Level)
	})
}

// New builds a console logger writing to out.
func New(cfg Config, out io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	return zerolog.New(output).Level(cfg.Level).With().Timestamp().Str("app", "embedgen").Logger()
}

func defaultConfig(profile Profile) Config {
	cfg := Config{NoColor: !isTerminal(os.Stderr)}
	switch profile {
	case ProfileTest:
		cfg.Level = zerolog.DebugLevel
		cfg.Timestamp = false
	default:
		cfg.Level = zerolog.WarnLevel
		cfg.Timestamp = true
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
