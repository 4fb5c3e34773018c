package main

import (
	"log"
	"log/slog"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("PANIC", "recovered", r, "stack", string(debug.Stack()))
		}
	}()
	defer closeLogger()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	setupLogger(cfg)

	ctx, err := InitApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize app", "err", err)
		return
	}
	registry := SetupCommandRegistry()

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("Failed to start bot", "err", err)
		return
	}
	slog.Info("Oficys started", "account", bot.Self.UserName, "prefix", CommandPrefix, "commands", len(registry.Names()))
	if cfg.AppID != "" {
		slog.Info("Application id configured", "app_id", cfg.AppID)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		msg := update.Message
		go handleMessage(ctx, registry, bot, msg)
	}
}
