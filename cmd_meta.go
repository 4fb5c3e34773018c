package main

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"oficys/internal/format"
	"oficys/internal/reply"
)

type HelpCmd struct {
	Registry *CommandRegistry
}

func (c *HelpCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	if err := bumpStat(ctx, msg, "help"); err != nil {
		return err
	}
	r := reply.Info(
		"Oficys — Help",
		"Available commands (prefix `"+CommandPrefix+"`).\nTip: you can click and copy the examples.",
		"help")
	for _, name := range c.Registry.Names() {
		cmd, ok := c.Registry.Lookup(name)
		if !ok {
			continue
		}
		label := CommandPrefix + name
		if sig := cmd.Usage(); sig != "" {
			label += " " + sig
		}
		r.AddField("`"+label+"`", cmd.Description(), false)
	}
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *HelpCmd) Description() string { return "Show this help" }
func (c *HelpCmd) Usage() string       { return "" }

type StatsCmd struct{}

func (c *StatsCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	stats, err := ctx.Store.Stats(messageUserID(msg))
	if err != nil {
		return err
	}
	if err := bumpStat(ctx, msg, "stats"); err != nil {
		return err
	}

	if len(stats) == 0 {
		sendReply(bot, msg.Chat.ID, reply.Info(
			"Stats",
			"You haven't used any command yet.\n\nStart with `"+CommandPrefix+"help` 😉",
			"stats-empty"))
		return nil
	}

	type entry struct {
		name  string
		count int
	}
	ordered := make([]entry, 0, len(stats))
	total := 0
	for name, count := range stats {
		ordered = append(ordered, entry{name, count})
		total += count
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].name < ordered[j].name
	})
	if len(ordered) > 12 {
		ordered = ordered[:12]
	}

	r := reply.Info("Stats", fmt.Sprintf("📈 Total commands used: *%d*", total), fmt.Sprintf("stats:%d", messageUserID(msg)))
	for _, e := range ordered {
		r.AddField("• "+e.name, strconv.Itoa(e.count), true)
	}
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *StatsCmd) Description() string { return "Your command usage statistics" }
func (c *StatsCmd) Usage() string       { return "" }

type UptimeCmd struct{}

func (c *UptimeCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	if err := bumpStat(ctx, msg, "uptime"); err != nil {
		return err
	}

	r := reply.Info("Uptime", "🤖 Bot and host health at a glance.", "uptime")
	r.AddField("Bot", format.FormatDuration(time.Since(ctx.StartTime)), true)

	if secs, err := host.Uptime(); err == nil {
		r.AddField("Host", format.FormatUptime(secs), true)
	}
	if avg, err := load.Avg(); err == nil {
		r.AddField("Load", fmt.Sprintf("%.2f / %.2f / %.2f", avg.Load1, avg.Load5, avg.Load15), true)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		r.AddField("RAM", fmt.Sprintf("%.0f%% used", vm.UsedPercent), true)
	}
	if pct, err := cpu.Percent(0, false); err == nil {
		r.AddField("CPU", fmt.Sprintf("%.0f%%", format.SafeFloat(pct, 0)), true)
	}
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *UptimeCmd) Description() string { return "Bot and host uptime" }
func (c *UptimeCmd) Usage() string       { return "" }
