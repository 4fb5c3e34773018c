package main

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleMessage routes one inbound message through the registry. Messages
// that are not commands are dropped without a reply.
func handleMessage(ctx *AppContext, registry *CommandRegistry, bot BotAPI, msg *tgbotapi.Message) {
	if ctx == nil {
		slog.Error("App context is nil in handleMessage")
		return
	}
	if msg == nil || msg.Text == "" {
		return
	}
	registry.Execute(ctx, bot, msg)
}
