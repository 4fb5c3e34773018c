package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"oficys/internal/format"
	"oficys/internal/reply"
)

// dayIndicator renders the week with the current day bolded, Monday first.
func dayIndicator(now time.Time) string {
	symbols := []string{"M", "T", "W", "T", "F", "S", "S"}
	today := (int(now.Weekday()) + 6) % 7
	parts := make([]string, len(symbols))
	for i, sym := range symbols {
		if i == today {
			parts[i] = "*" + sym + "*"
		} else {
			parts[i] = sym
		}
	}
	return strings.Join(parts, "  ")
}

type NowCmd struct{}

func (c *NowCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	if err := bumpStat(ctx, msg, "now"); err != nil {
		return err
	}
	main := time.Now().In(ctx.Location)
	dayOfYear := main.YearDay()
	totalDays := 365
	if time.Date(main.Year(), 12, 31, 0, 0, 0, 0, main.Location()).YearDay() == 366 {
		totalDays = 366
	}
	endOfDay := time.Date(main.Year(), main.Month(), main.Day(), 23, 59, 59, 0, main.Location())
	hoursLeft := int(endOfDay.Sub(main).Seconds()) / 3600
	if hoursLeft < 0 {
		hoursLeft = 0
	}

	r := reply.Info("Now", "⏱️ Times and info for today.", "now")
	zones := DisplayTimezones
	if len(zones) > 20 {
		zones = zones[:20]
	}
	for _, zone := range zones {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			slog.Warn("Skipping unknown timezone", "zone", zone, "err", err)
			continue
		}
		current := time.Now().In(loc)
		r.AddField("🕒 "+zone, current.Format("`15:04:05`  •  `02/01/2006`"), true)
	}
	r.AddField("📅 Today", fmt.Sprintf("%s  (%s)", main.Weekday(), dayIndicator(main)), false)
	r.AddField("📌 Day of the year", fmt.Sprintf("%d/%d", dayOfYear, totalDays), true)
	r.AddField("🌙 Hours left", strconv.Itoa(hoursLeft), true)
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *NowCmd) Description() string { return "Show the time in several zones plus day info" }
func (c *NowCmd) Usage() string       { return "" }

// countdownPhase is the state of a running countdown edit loop.
type countdownPhase int

const (
	countdownRunning countdownPhase = iota
	countdownDone                   // reached zero, completion edit sent
	countdownStopped                // an edit failed, loop abandoned
)

// countdownStep is how much simulated time elapses between edits.
const countdownStep = 15 // seconds

type CountdownCmd struct {
	// Tick is the wall-clock wait between edits; 15s when zero. Tests
	// shrink it.
	Tick time.Duration
}

func (c *CountdownCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	if args == "" {
		return missingArgument("minutes")
	}
	minutes, err := strconv.Atoi(args)
	if err != nil {
		return badArgument("minutes")
	}
	if minutes <= 0 {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply(
			"Invalid minutes",
			"Use a number *greater than 0*.\nE.g.: `"+CommandPrefix+"countdown 7`"))
		return nil
	}
	if minutes > 240 {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply("Too long", "Maximum allowed: *240* minutes."))
		return nil
	}
	if err := bumpStat(ctx, msg, "countdown"); err != nil {
		return err
	}

	total := minutes * 60
	r := reply.Info("Countdown", fmt.Sprintf("⏳ Starting: *%d* minute(s).", minutes), fmt.Sprintf("countdown:%d", minutes))
	r.AddField("Progress", format.ProgressBar(0, total, 12), false)
	r.AddField("Remaining", fmt.Sprintf("`%dm 0s`", minutes), true)
	r.AddField("Updates", "every `15s`", true)

	sent := sendReply(bot, msg.Chat.ID, r)
	if sent.MessageID == 0 {
		return nil
	}
	c.runLoop(bot, msg.Chat.ID, sent.MessageID, r, total)
	return nil
}

// runLoop drives the Running → Done/Stopped edit machine. No lock is held
// between waits, so other commands keep flowing while a countdown runs.
func (c *CountdownCmd) runLoop(bot BotAPI, chatID int64, msgID int, r *reply.Reply, total int) countdownPhase {
	tick := c.Tick
	if tick <= 0 {
		tick = countdownStep * time.Second
	}

	remaining := total
	for remaining > 0 {
		time.Sleep(tick)
		remaining -= countdownStep
		if remaining < 0 {
			remaining = 0
		}
		r.Description = "⏳ In progress..."
		r.SetField(0, "Progress", format.ProgressBar(total-remaining, total, 12), false)
		r.SetField(1, "Remaining", fmt.Sprintf("`%dm %ds`", remaining/60, remaining%60), true)
		if err := editReply(bot, chatID, msgID, r); err != nil {
			// The message is gone or no longer editable. Stop quietly.
			slog.Debug("Countdown edit failed, stopping", "err", err)
			return countdownStopped
		}
	}

	end := reply.SuccessReply("Time's up!", "⏰ Go! (Want another one: `"+CommandPrefix+"countdown 5`)")
	if err := editReply(bot, chatID, msgID, end); err != nil {
		slog.Debug("Countdown completion edit failed", "err", err)
		return countdownStopped
	}
	return countdownDone
}

func (c *CountdownCmd) Description() string { return "Countdown that edits its own message" }
func (c *CountdownCmd) Usage() string       { return "<minutes 1-240>" }

// Cooldown keeps one user from stacking countdown edit loops back to back.
func (c *CountdownCmd) Cooldown() time.Duration { return 10 * time.Second }

// Fixed-length units: a year is 365 days and a month 30, not calendar-aware.
const (
	secondsPerDay   = 24 * 3600
	secondsPerMonth = 30 * secondsPerDay
	secondsPerYear  = 365 * secondsPerDay
)

type TimeUntilCmd struct{}

func (c *TimeUntilCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	dateStr := strings.TrimSpace(args)
	if dateStr == "" {
		return missingArgument("date")
	}
	parsed, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply(
			"Invalid format",
			"Use `dd/mm/yyyy`.\nE.g.: `"+CommandPrefix+"timeuntil 31/12/2026`"))
		return nil
	}
	now := time.Now().In(ctx.Location)
	target := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, ctx.Location)
	delta := target.Sub(now)
	if delta < 0 {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply(
			"That date has already passed",
			fmt.Sprintf("Try a future date. E.g.: `%stimeuntil 31/12/%d`", CommandPrefix, now.Year())))
		return nil
	}
	if err := bumpStat(ctx, msg, "timeuntil"); err != nil {
		return err
	}

	totalSeconds := int(delta.Seconds())
	years := totalSeconds / secondsPerYear
	rem := totalSeconds % secondsPerYear
	months := rem / secondsPerMonth
	rem %= secondsPerMonth
	days := rem / secondsPerDay
	rem %= secondsPerDay
	hours := rem / 3600
	rem %= 3600
	minutes := rem / 60
	seconds := rem % 60

	r := reply.Info("Time until the date", fmt.Sprintf("📍 Target: *%s*", dateStr), "timeuntil:"+dateStr)
	r.AddField("Years", strconv.Itoa(years), true)
	r.AddField("Months", strconv.Itoa(months), true)
	r.AddField("Days", strconv.Itoa(days), true)
	r.AddField("Hours", strconv.Itoa(hours), true)
	r.AddField("Minutes", strconv.Itoa(minutes), true)
	r.AddField("Seconds", strconv.Itoa(seconds), true)
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *TimeUntilCmd) Description() string { return "How long until a dd/mm/yyyy date" }
func (c *TimeUntilCmd) Usage() string       { return "<dd/mm/yyyy>" }
