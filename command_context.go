package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"oficys/internal/reply"
)

// Command is the interface that all bot commands must implement.
type Command interface {
	// Execute runs the command. Validation and domain failures that already
	// answered the user return nil; tagged CommandErrors are rendered by the
	// registry.
	Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) error
	Description() string
	// Usage is the argument signature, e.g. "<game name> <0-10>"; empty for
	// commands without arguments.
	Usage() string
}

// Throttled commands are rate limited per user by the registry.
type Throttled interface {
	Cooldown() time.Duration
}

// Restricted commands run an authorization check before executing.
type Restricted interface {
	Allowed(msg *tgbotapi.Message) bool
}

// CommandRegistry holds the map of commands and the per-user cooldown
// bookkeeping.
type CommandRegistry struct {
	commands map[string]Command
	order    []string

	mu       sync.Mutex
	lastUsed map[string]time.Time // "userID:command"
}

// NewCommandRegistry creates a new registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]Command),
		lastUsed: make(map[string]time.Time),
	}
}

// Register adds a command to the registry.
func (r *CommandRegistry) Register(name string, cmd Command) {
	if _, dup := r.commands[name]; !dup {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
}

// Alias routes an extra name to an already registered command without
// listing it separately in help.
func (r *CommandRegistry) Alias(alias, name string) {
	if cmd, ok := r.commands[name]; ok {
		r.commands[alias] = cmd
	}
}

// Names returns the registered command names in registration order.
func (r *CommandRegistry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the command registered under name.
func (r *CommandRegistry) Lookup(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Execute parses the prefix, routes to the matching command and converts
// failures into user-facing replies. Returns false when the message is not
// a known command; such messages are dropped without a reply.
func (r *CommandRegistry) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message) bool {
	if msg == nil || !strings.HasPrefix(msg.Text, CommandPrefix) {
		return false
	}
	rest := strings.TrimPrefix(msg.Text, CommandPrefix)
	name, args, _ := strings.Cut(rest, " ")
	name = strings.ToLower(strings.TrimSpace(name))
	args = strings.TrimSpace(args)
	if name == "" {
		return false
	}

	cmd, ok := r.commands[name]
	if !ok {
		slog.Debug("Unknown command", "name", name)
		return false
	}

	var userID int64
	var userName string
	if msg.From != nil {
		userID = msg.From.ID
		userName = msg.From.UserName
	}
	slog.Info("Command", "name", name, "user", userName, "user_id", userID, "chat_id", msg.Chat.ID)

	if rc, restricted := cmd.(Restricted); restricted && !rc.Allowed(msg) {
		r.sendFailure(bot, msg, name, cmd, permissionDenied())
		return true
	}
	if err := r.checkCooldown(cmd, name, userID); err != nil {
		r.sendFailure(bot, msg, name, cmd, err)
		return true
	}

	if err := r.run(ctx, bot, msg, cmd, args); err != nil {
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) {
			cmdErr = unexpectedError(err)
		}
		r.sendFailure(bot, msg, name, cmd, cmdErr)
	}
	return true
}

// run executes the command, converting panics into unexpected errors so a
// broken handler never takes the update loop down.
func (r *CommandRegistry) run(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, cmd Command, args string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = unexpectedError(fmt.Errorf("panic: %v", rec))
		}
	}()
	return cmd.Execute(ctx, bot, msg, args)
}

// checkCooldown enforces the per-user cooldown of Throttled commands and
// records the invocation time.
func (r *CommandRegistry) checkCooldown(cmd Command, name string, userID int64) *CommandError {
	t, ok := cmd.(Throttled)
	if !ok {
		return nil
	}
	key := fmt.Sprintf("%d:%s", userID, name)
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	if last, seen := r.lastUsed[key]; seen {
		if wait := t.Cooldown() - now.Sub(last); wait > 0 {
			return cooldownError(wait)
		}
	}
	r.lastUsed[key] = now
	return nil
}

// sendFailure renders one reply per error kind. Unexpected causes are logged
// in full and the user only sees a generic apology.
func (r *CommandRegistry) sendFailure(bot BotAPI, msg *tgbotapi.Message, name string, cmd Command, cmdErr *CommandError) {
	usage := fmt.Sprintf("`%s%s`", CommandPrefix, name)
	if sig := cmd.Usage(); sig != "" {
		usage = fmt.Sprintf("`%s%s %s`", CommandPrefix, name, sig)
	}

	switch cmdErr.Kind {
	case KindMissingArgument:
		sendReply(bot, msg.Chat.ID, reply.WarnReply(
			"Missing an argument",
			fmt.Sprintf("Correct usage:\n%s\n\nTip: `%shelp` shows examples.", usage, CommandPrefix)))
	case KindBadArgument:
		sendReply(bot, msg.Chat.ID, reply.WarnReply("Invalid argument", "Try like this:\n"+usage))
	case KindCooldown:
		sendReply(bot, msg.Chat.ID, reply.WarnReply(
			"Easy there 😅",
			fmt.Sprintf("Try again in *%.1fs*.", cmdErr.RetryAfter.Seconds())))
	case KindPermissionDenied:
		sendReply(bot, msg.Chat.ID, reply.ErrorReply("No permission", "You can't use that command here."))
	default:
		sendReply(bot, msg.Chat.ID, reply.ErrorReply(
			"Oops, something went wrong",
			"The error has been logged.\nTry again in a few seconds."))
		var userID int64
		if msg.From != nil {
			userID = msg.From.ID
		}
		slog.Error("Command error", "name", name, "user_id", userID, "text", msg.Text, "err", cmdErr.Err)
	}
}
