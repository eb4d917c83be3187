// Package config resolves where data lives and which backend and variant to use.
// Environment variables set the defaults; command-line flags override them.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"actlog/internal/app"
	"actlog/internal/kv"
)

const (
	EnvDir     = "ACTLOG_DIR"
	EnvBackend = "ACTLOG_BACKEND"
	EnvVariant = "ACTLOG_VARIANT"
	EnvDebug   = "ACTLOG_DEBUG"
)

type Config struct {
	Dir     string
	Backend kv.Backend
	Variant app.Variant
	Debug   bool
}

// DefaultDir is os.UserConfigDir()/actlog, falling back to ./.actlog when the OS has no
// config directory.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		return ".actlog"
	}
	return filepath.Join(base, "actlog")
}

// Load reads the environment.
func Load() (Config, error) {
	return Resolve(
		envOr(EnvDir, DefaultDir()),
		os.Getenv(EnvBackend),
		os.Getenv(EnvVariant),
		strings.TrimSpace(os.Getenv(EnvDebug)) != "",
	)
}

// Resolve validates raw settings, typically flag values layered over Load's defaults.
func Resolve(dir, backend, variant string, debug bool) (Config, error) {
	cfg := Config{Dir: strings.TrimSpace(dir), Debug: debug}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir()
	}
	var err error
	if cfg.Backend, err = kv.ParseBackend(backend); err != nil {
		return Config{}, err
	}
	if cfg.Variant, err = app.ParseVariant(variant); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Open opens the configured backend and builds the App on it.
func (c Config) Open() (*app.App, error) {
	s, err := kv.Open(c.Backend, c.Dir)
	if err != nil {
		return nil, err
	}
	return app.New(s, c.Variant), nil
}

// DebugLogPath is where the TUI writes its log when Debug is set.
func (c Config) DebugLogPath() string {
	return filepath.Join(c.Dir, "debug.log")
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
