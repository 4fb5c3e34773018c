package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"oficys/internal/reply"
)

// parseFilter parses a rating filter token of the form ">N" or "<N" with N
// all digits. Anything else means no filter.
func parseFilter(arg string) (comparator string, threshold int, ok bool) {
	if len(arg) < 2 {
		return "", 0, false
	}
	comparator, number := arg[:1], arg[1:]
	if comparator != ">" && comparator != "<" {
		return "", 0, false
	}
	if !isDigits(number) {
		return "", 0, false
	}
	threshold, _ = strconv.Atoi(number)
	return comparator, threshold, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func gameLine(g GameRecord) string {
	return fmt.Sprintf("*%s* — `%d/10`", g.GameName, g.Rating)
}

func stars(rating int) string {
	n := rating
	if n < 1 {
		n = 1
	}
	if n > 10 {
		n = 10
	}
	return strings.Repeat("⭐", n)
}

type GameDumpCmd struct{}

func (c *GameDumpCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	if strings.TrimSpace(args) == "" {
		return missingArgument("game")
	}
	parts := strings.Fields(args)
	if len(parts) < 2 || !isDigits(parts[len(parts)-1]) {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply(
			"Invalid format",
			"Use:\n`"+CommandPrefix+"gamedump <game name> <0-10>`\n\nExamples:\n`"+
				CommandPrefix+"gamedump Minecraft 8`\n`"+CommandPrefix+"gamedump The Witcher 3 10`"))
		return nil
	}
	rating, _ := strconv.Atoi(parts[len(parts)-1])
	if rating < 0 || rating > 10 {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply("Invalid rating", "The rating has to be between *0* and *10*."))
		return nil
	}
	gameName := strings.TrimSpace(strings.Join(parts[:len(parts)-1], " "))
	if gameName == "" {
		sendReply(bot, msg.Chat.ID, reply.ErrorReply("No game name", "Write the game name before the rating."))
		return nil
	}

	if err := ctx.Store.AddOrUpdateGame(messageUserID(msg), gameName, rating); err != nil {
		return err
	}
	if err := bumpStat(ctx, msg, "gamedump"); err != nil {
		return err
	}

	r := reply.SuccessReply("Game saved!", fmt.Sprintf("*%s*\nRating: *%d/10*  %s", gameName, rating, stars(rating)))
	r.AddField("Next step",
		"See your list with `"+CommandPrefix+"gameshow` or ask for a random one with `"+CommandPrefix+"randomgame`.",
		false)
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *GameDumpCmd) Description() string { return "Save or update a game with a rating (0-10)" }
func (c *GameDumpCmd) Usage() string       { return "<game name> <0-10>" }

type GameShowCmd struct{}

func (c *GameShowCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	filterBy := firstToken(args)
	comparator, threshold, _ := parseFilter(filterBy)

	games, err := ctx.Store.ListGames(messageUserID(msg), comparator, threshold)
	if err != nil {
		return err
	}
	if err := bumpStat(ctx, msg, "gameshow"); err != nil {
		return err
	}

	if len(games) == 0 {
		sendReply(bot, msg.Chat.ID, reply.Info(
			"Your list is empty",
			fmt.Sprintf("No games found (%s).\n\nTip: save one with `%sgamedump`.", reply.FormatFilter(filterBy), CommandPrefix),
			"gameshow-empty"))
		return nil
	}

	sort.SliceStable(games, func(i, j int) bool {
		if games[i].Rating != games[j].Rating {
			return games[i].Rating > games[j].Rating
		}
		return games[i].GameName > games[j].GameName
	})

	shown := games
	if len(shown) > 20 {
		shown = shown[:20]
	}
	lines := make([]string, len(shown))
	for i, g := range shown {
		lines[i] = gameLine(g)
	}

	desc := reply.FormatFilter(filterBy) + "\n\n" + reply.PrettyList(lines, 20)
	if rest := len(games) - len(shown); rest > 0 {
		desc += fmt.Sprintf("\n\n… and *%d* more game(s).", rest)
	}

	r := reply.Info("🎮 Your saved games", desc, "gameshow:"+filterBy)
	r.AddField("Total", strconv.Itoa(len(games)), true)
	r.AddField("Tip", "Use `"+CommandPrefix+"randomgame >7` to get only the well rated ones.", true)
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *GameShowCmd) Description() string { return "List your saved games, optionally filtered (>7 / <7)" }
func (c *GameShowCmd) Usage() string       { return "[>N | <N]" }

type RandomGameCmd struct{}

func (c *RandomGameCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error {
	filterBy := firstToken(args)
	comparator, threshold, _ := parseFilter(filterBy)

	game, err := ctx.Store.RandomGame(messageUserID(msg), comparator, threshold)
	if err != nil {
		return err
	}
	if err := bumpStat(ctx, msg, "randomgame"); err != nil {
		return err
	}

	if game == nil {
		sendReply(bot, msg.Chat.ID, reply.Info(
			"Nothing found",
			fmt.Sprintf("I couldn't find any game to pick (%s).\n\nTip: try `%sgameshow`.", reply.FormatFilter(filterBy), CommandPrefix),
			"randomgame-empty"))
		return nil
	}

	r := reply.Info(
		"Random suggestion",
		fmt.Sprintf("Today's recommendation is:\n\n*%s*\nSaved rating: *%d/10*  %s", game.GameName, game.Rating, stars(game.Rating)),
		"random:"+game.GameName)
	r.AddField("Filter", reply.FormatFilter(filterBy), true)
	r.AddField("Want another?", "Run it again: `"+CommandPrefix+"randomgame`", true)
	sendReply(bot, msg.Chat.ID, r)
	return nil
}
func (c *RandomGameCmd) Description() string { return "Pick a random game from your saved list" }
func (c *RandomGameCmd) Usage() string       { return "[>N | <N]" }

func firstToken(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
