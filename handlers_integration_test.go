package main

import (
	"strings"
	"testing"
)

// Full path: inbound message text through the registry to a reply, using the
// real command set.
func TestHandleMessageEndToEnd(t *testing.T) {
	ctx := newTestAppContext(t)
	registry := SetupCommandRegistry()
	bot := &fakeBot{}

	handleMessage(ctx, registry, bot, newTestMessage(1, "&gamedump Hades 9"))
	if got := bot.lastText(t); !strings.Contains(got, "Game saved!") {
		t.Fatalf("gamedump reply = %q", got)
	}

	handleMessage(ctx, registry, bot, newTestMessage(1, "&gameshow"))
	if got := bot.lastText(t); !strings.Contains(got, "*Hades*") {
		t.Fatalf("gameshow reply = %q", got)
	}

	handleMessage(ctx, registry, bot, newTestMessage(1, "&roll abc"))
	if got := bot.lastText(t); !strings.Contains(got, "Try like this") {
		t.Fatalf("bad argument reply = %q", got)
	}

	handleMessage(ctx, registry, bot, newTestMessage(1, "&stats"))
	if got := bot.lastText(t); !strings.Contains(got, "gamedump") {
		t.Fatalf("stats reply = %q", got)
	}
}

func TestHandleMessageIgnoresChatter(t *testing.T) {
	ctx := newTestAppContext(t)
	registry := SetupCommandRegistry()
	bot := &fakeBot{}

	handleMessage(ctx, registry, bot, newTestMessage(1, "hello there"))
	handleMessage(ctx, registry, bot, newTestMessage(1, "&nosuchcommand"))
	handleMessage(ctx, registry, bot, nil)
	handleMessage(nil, registry, bot, newTestMessage(1, "&coin"))

	if len(bot.sent) != 0 {
		t.Fatalf("non-commands produced replies: %d", len(bot.sent))
	}
}
