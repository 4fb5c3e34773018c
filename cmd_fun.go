package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"oficys/internal/reply"
)

func messageUserID(msg *tgbotapi.Message) int64 {
	if msg.From == nil {
		return 0
	}
	return msg.From.ID
}

// bumpStat records one use of a command. Called only after validation, so a
// rejected invocation never counts.
func bumpStat(ctx *AppContext, msg *tgbotapi.Message, name string) error {
	return ctx.Store.IncrementStat(messageUserID(msg), name)
}

type FlipCmd struct{}

func (c *FlipCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	options := strings.Fields(args)
	if len(options) < 2 {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply(
			"Not enough options",
			"Give me *at least 2* options.\n\nExample:\n`"+CommandPrefix+"flip play sleep eat movie`"))
		return nil
	}
	if err := bumpStat(ctx, msg, "flip"); err != nil {
		return err
	}
	choice := options[rand.Intn(len(options))]
	r := reply.Info("Random pick", "I spun the wheel and it landed on:\n\n*"+choice+"*", "flip")
	shown := options
	if len(shown) > 20 {
		shown = shown[:20]
	}
	r.AddField("Options", "• "+strings.Join(shown, " • "), false)
	if len(options) > 20 {
		r.AddField("Note", fmt.Sprintf("Showing 20/%d options.", len(options)), false)
	}
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *FlipCmd) Description() string { return "Pick one random option out of 2+" }
func (c *FlipCmd) Usage() string       { return "<option> <option> [more...]" }

type CoinCmd struct{}

func (c *CoinCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	if err := bumpStat(ctx, msg, "coin"); err != nil {
		return err
	}
	result := "heads"
	icon := "🪙"
	if rand.Intn(2) == 1 {
		result = "tails"
		icon = "🟤"
	}
	r := reply.Info("Heads or tails", fmt.Sprintf("%s It's *%s*!", icon, strings.ToUpper(result)), "coin")
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *CoinCmd) Description() string { return "Simple heads or tails" }
func (c *CoinCmd) Usage() string       { return "" }

type RollCmd struct{}

func (c *RollCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	if args == "" {
		return missingArgument("sides")
	}
	sides, err := strconv.Atoi(args)
	if err != nil {
		return badArgument("sides")
	}
	if sides < 1 {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply(
			"Invalid number",
			"Use a number *greater than 0*.\nE.g.: `"+CommandPrefix+"roll 20`"))
		return nil
	}
	if err := bumpStat(ctx, msg, "roll"); err != nil {
		return err
	}
	value := rand.Intn(sides) + 1
	r := reply.Info("Dice rolled", fmt.Sprintf("🎲 *%d* (1–%d)", value, sides), fmt.Sprintf("roll:%d", sides))
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *RollCmd) Description() string { return "Random number from 1 to N" }
func (c *RollCmd) Usage() string       { return "<sides>" }

var eightBallResponses = []string{
	"yes",
	"no",
	"maybe",
	"probably",
	"no chance",
	"ask again",
	"looks good",
	"better not tell you now",
}

type EightBallCmd struct{}

func (c *EightBallCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	question := strings.TrimSpace(args)
	if question == "" {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply(
			"Where's the question?",
			"Example:\n`"+CommandPrefix+"8ball will I work out today?`"))
		return nil
	}
	if err := bumpStat(ctx, msg, "8ball"); err != nil {
		return err
	}
	answer := eightBallResponses[rand.Intn(len(eightBallResponses))]
	r := reply.Info(
		"The 8-ball says",
		fmt.Sprintf("*Question:* %s\n*Answer:* *%s*", question, strings.ToUpper(answer)),
		question)
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *EightBallCmd) Description() string { return "Magic 8-ball style answers" }
func (c *EightBallCmd) Usage() string       { return "<question>" }
