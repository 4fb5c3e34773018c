package main

import (
	"strconv"
	"strings"
	"testing"
)

func statsOf(t *testing.T, ctx *AppContext, userID int64) map[string]int {
	t.Helper()
	stats, err := ctx.Store.Stats(userID)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	return stats
}

func TestFlipNeedsTwoOptions(t *testing.T) {
	ctx := newTestAppContext(t)
	bot := &fakeBot{}

	if err := (&FlipCmd{}).Execute(ctx, bot, newTestMessage(1, "&flip onlyone"), "onlyone"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := bot.lastText(t); !strings.Contains(got, "at least 2") {
		t.Fatalf("reply = %q", got)
	}
	if n := statsOf(t, ctx, 1)["flip"]; n != 0 {
		t.Fatalf("rejected flip incremented stat: %d", n)
	}
}

func TestFlipPicksAnOption(t *testing.T) {
	ctx := newTestAppContext(t)
	bot := &fakeBot{}
	options := []string{"play", "sleep", "eat"}

	if err := (&FlipCmd{}).Execute(ctx, bot, newTestMessage(1, "&flip"), strings.Join(options, " ")); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := bot.lastText(t)
	picked := false
	for _, opt := range options {
		if strings.Contains(got, "*"+opt+"*") {
			picked = true
		}
	}
	if !picked {
		t.Fatalf("no option highlighted in reply: %q", got)
	}
	if n := statsOf(t, ctx, 1)["flip"]; n != 1 {
		t.Fatalf("flip stat = %d, want 1", n)
	}
}

func TestCoin(t *testing.T) {
	ctx := newTestAppContext(t)
	bot := &fakeBot{}

	if err := (&CoinCmd{}).Execute(ctx, bot, newTestMessage(1, "&coin"), ""); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := bot.lastText(t)
	if !strings.Contains(got, "HEADS") && !strings.Contains(got, "TAILS") {
		t.Fatalf("coin reply = %q", got)
	}
	if n := statsOf(t, ctx, 1)["coin"]; n != 1 {
		t.Fatalf("coin stat = %d, want 1", n)
	}
}

func TestRollValidations(t *testing.T) {
	ctx := newTestAppContext(t)
	bot := &fakeBot{}
	cmd := &RollCmd{}

	if err := cmd.Execute(ctx, bot, newTestMessage(1, "&roll"), ""); err == nil {
		t.Fatalf("missing argument not reported")
	} else if cmdErr, ok := err.(*CommandError); !ok || cmdErr.Kind != KindMissingArgument {
		t.Fatalf("err = %v, want missing argument", err)
	}

	if err := cmd.Execute(ctx, bot, newTestMessage(1, "&roll abc"), "abc"); err == nil {
		t.Fatalf("bad argument not reported")
	} else if cmdErr, ok := err.(*CommandError); !ok || cmdErr.Kind != KindBadArgument {
		t.Fatalf("err = %v, want bad argument", err)
	}

	// roll 0 is rejected in the handler with no stat increment.
	if err := cmd.Execute(ctx, bot, newTestMessage(1, "&roll 0"), "0"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := bot.lastText(t); !strings.Contains(got, "Invalid number") {
		t.Fatalf("reply = %q", got)
	}
	if n := statsOf(t, ctx, 1)["roll"]; n != 0 {
		t.Fatalf("rejected roll incremented stat: %d", n)
	}
}

func TestRollInRange(t *testing.T) {
	ctx := newTestAppContext(t)
	bot := &fakeBot{}

	for i := 0; i < 20; i++ {
		if err := (&RollCmd{}).Execute(ctx, bot, newTestMessage(1, "&roll 6"), "6"); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		got := bot.lastText(t)
		start := strings.Index(got, "🎲 *")
		if start < 0 {
			t.Fatalf("no value in reply: %q", got)
		}
		rest := got[start+len("🎲 *"):]
		end := strings.Index(rest, "*")
		value, err := strconv.Atoi(rest[:end])
		if err != nil || value < 1 || value > 6 {
			t.Fatalf("rolled %q, want 1..6", rest[:end])
		}
	}
	if n := statsOf(t, ctx, 1)["roll"]; n != 20 {
		t.Fatalf("roll stat = %d, want 20", n)
	}
}

func TestEightBall(t *testing.T) {
	ctx := newTestAppContext(t)
	bot := &fakeBot{}
	cmd := &EightBallCmd{}

	if err := cmd.Execute(ctx, bot, newTestMessage(1, "&8ball"), ""); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := bot.lastText(t); !strings.Contains(got, "Where's the question?") {
		t.Fatalf("reply = %q", got)
	}
	if n := statsOf(t, ctx, 1)["8ball"]; n != 0 {
		t.Fatalf("rejected 8ball incremented stat: %d", n)
	}

	if err := cmd.Execute(ctx, bot, newTestMessage(1, "&8ball will it rain?"), "will it rain?"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := bot.lastText(t)
	if !strings.Contains(got, "will it rain?") {
		t.Fatalf("question missing from reply: %q", got)
	}
	answered := false
	for _, a := range eightBallResponses {
		if strings.Contains(got, strings.ToUpper(a)) {
			answered = true
		}
	}
	if !answered {
		t.Fatalf("no known answer in reply: %q", got)
	}
}
