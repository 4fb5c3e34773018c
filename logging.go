package main

import (
	"io"
	"log/slog"
	"os"
)

var persistentLogFile *os.File

// setupLogger initializes the structured logger: console always, plus a
// file when LOG_FILE is set.
func setupLogger(cfg *Config) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			persistentLogFile = logFile
			out = io.MultiWriter(os.Stdout, logFile)
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("app", "oficys"))

	if cfg.LogFile != "" {
		if persistentLogFile != nil {
			slog.Info("Persistent logging enabled", "file", cfg.LogFile)
		} else {
			slog.Error("Persistent logging disabled: failed to open log file", "file", cfg.LogFile)
		}
	}
}

func closeLogger() {
	if persistentLogFile == nil {
		return
	}
	_ = persistentLogFile.Sync()
	_ = persistentLogFile.Close()
	persistentLogFile = nil
}
