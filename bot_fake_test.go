package main

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"oficys/internal/store"
)

type fakeBot struct {
	sent      []tgbotapi.Chattable
	requests  []tgbotapi.Chattable
	nextID    int
	failEdits bool
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if _, isEdit := c.(tgbotapi.EditMessageTextConfig); isEdit && b.failEdits {
		return tgbotapi.Message{}, errors.New("message to edit not found")
	}
	b.sent = append(b.sent, c)
	b.nextID++
	return tgbotapi.Message{MessageID: b.nextID, Chat: &tgbotapi.Chat{ID: 1}}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{}, nil
}

// textOf extracts the text of a captured chattable.
func textOf(t *testing.T, c tgbotapi.Chattable) string {
	t.Helper()
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		return m.Text
	case tgbotapi.EditMessageTextConfig:
		return m.Text
	default:
		t.Fatalf("unexpected chattable type %T", c)
		return ""
	}
}

func (b *fakeBot) lastText(t *testing.T) string {
	t.Helper()
	if len(b.sent) == 0 {
		t.Fatalf("no messages sent")
	}
	return textOf(t, b.sent[len(b.sent)-1])
}

func newTestAppContext(t *testing.T) *AppContext {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return &AppContext{
		Config:    &Config{BotToken: "test", StoreFile: "unused"},
		Store:     st,
		Location:  time.UTC,
		StartTime: time.Now().Add(-10 * time.Minute),
	}
}

func newTestMessage(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 1},
		From: &tgbotapi.User{ID: userID, UserName: "tester"},
	}
}
