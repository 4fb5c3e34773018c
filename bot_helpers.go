package main

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"oficys/internal/reply"
)

// safeSend sends a Telegram message and logs any error.
func safeSend(bot BotAPI, msg tgbotapi.Chattable) {
	if bot == nil {
		return
	}
	if _, err := bot.Send(msg); err != nil {
		slog.Error("Telegram send failed", "err", err)
	}
}

// sendReply renders a reply payload and sends it as Markdown, retrying as
// plain text when Telegram rejects the markup.
func sendReply(bot BotAPI, chatID int64, r *reply.Reply) tgbotapi.Message {
	if bot == nil {
		return tgbotapi.Message{}
	}
	msg := tgbotapi.NewMessage(chatID, r.Render())
	msg.ParseMode = "Markdown"
	sent, err := bot.Send(msg)
	if err != nil {
		slog.Error("Error sending Markdown reply. Retrying as plain text", "err", err)
		msg.ParseMode = ""
		sent, _ = bot.Send(msg)
	}
	return sent
}

// editReply rewrites a previously sent reply in place. The error is
// returned so edit loops can notice the message is gone and stop.
func editReply(bot BotAPI, chatID int64, msgID int, r *reply.Reply) error {
	if bot == nil {
		return nil
	}
	edit := tgbotapi.NewEditMessageText(chatID, msgID, r.Render())
	edit.ParseMode = "Markdown"
	_, err := bot.Send(edit)
	return err
}
