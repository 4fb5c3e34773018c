package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

const (
	// CommandPrefix is the single character every command starts with.
	CommandPrefix = "&"

	// MainTimezone anchors the now and timeuntil commands.
	MainTimezone = "America/Sao_Paulo"

	// DefaultStoreFile is where the JSON document lives unless overridden.
	DefaultStoreFile = "data/store.json"
)

// DisplayTimezones are the zones shown by the now command, main one first.
// The now command caps the list at 20.
var DisplayTimezones = []string{
	MainTimezone,
	"UTC",
	"America/New_York",
	"Europe/London",
}

// Config holds everything sourced from the environment.
type Config struct {
	BotToken  string
	AppID     string
	LogLevel  string
	LogFile   string
	StoreFile string
}

// loadConfig reads the environment. Only the token is mandatory.
func loadConfig() (*Config, error) {
	cfg := &Config{
		BotToken:  os.Getenv("BOT_TOKEN"),
		AppID:     os.Getenv("APP_ID"),
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFile:   os.Getenv("LOG_FILE"),
		StoreFile: os.Getenv("STORE_FILE"),
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set in the environment")
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize fills defaults and logs any fallback it applies.
func (c *Config) sanitize() {
	if c.StoreFile == "" {
		c.StoreFile = DefaultStoreFile
	}
	switch c.LogLevel {
	case "", "DEBUG", "INFO", "WARN", "ERROR":
	default:
		slog.Warn("Unknown LOG_LEVEL, using INFO", "value", c.LogLevel)
		c.LogLevel = "INFO"
	}
}

// mainLocation loads the primary timezone, falling back to UTC when the
// zone database is unavailable.
func mainLocation() *time.Location {
	loc, err := time.LoadLocation(MainTimezone)
	if err != nil {
		slog.Error("Failed to load main timezone, using UTC", "zone", MainTimezone, "err", err)
		return time.UTC
	}
	return loc
}
