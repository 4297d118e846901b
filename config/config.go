// Package config reads settings from an optional .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/folio/engine"
	"github.com/zucenko/folio/store"
)

type Config struct {
	Port         string
	Store        string
	StorePath    string
	LogLevel     string
	LogFormat    string
	WriteTimeout time.Duration
	Layout       string
}

// Load reads the given env files (".env" when none) and then the process
// environment. Missing files are skipped; variables already set win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debugf("no env file %s", f)
				continue
			}
			return Config{}, fmt.Errorf("read %s: %w", f, err)
		}
	}

	c := Config{
		Port:      env("PORT", "8080"),
		Store:     strings.ToLower(env("STORE", store.KindSQLite)),
		LogLevel:  env("LOG_LEVEL", "info"),
		LogFormat: env("LOG_FORMAT", "text"),
		Layout:    os.Getenv("LAYOUT"),
	}
	switch c.Store {
	case store.KindSQLite:
		c.StorePath = env("STORE_PATH", "folio.db")
	case store.KindINI:
		c.StorePath = env("STORE_PATH", "folio.ini")
	default:
		c.StorePath = os.Getenv("STORE_PATH")
	}
	timeout, err := time.ParseDuration(env("WRITE_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("WRITE_TIMEOUT: %w", err)
	}
	c.WriteTimeout = timeout
	return c, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SetupLogging applies level and format to the standard logrus logger.
func (c Config) SetupLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	switch c.LogFormat {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

func (c Config) OpenStore() (store.Store, error) {
	return store.Open(c.Store, c.StorePath)
}

// EngineOptions turns the engine related settings into options.
func (c Config) EngineOptions() ([]engine.Option, error) {
	opts := []engine.Option{engine.WithStoreTimeout(c.WriteTimeout)}
	if c.Layout != "" {
		l, err := engine.LoadLayout(c.Layout)
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", c.Layout, err)
		}
		opts = append(opts, engine.WithLayout(l))
	}
	return opts, nil
}
