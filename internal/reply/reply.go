// Package reply builds the structured payloads the bot answers with and
// renders them to Telegram Markdown. Everything here is pure; the only
// randomness is the seeded decorative icon, which is deterministic per seed.
package reply

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
)

// Color is the reply's color category. Telegram has no embed colors, so the
// renderer maps each category to a leading glyph.
type Color int

const (
	Primary Color = iota
	Success
	Warning
	Error
)

const (
	maxFields     = 25
	maxFieldName  = 256
	maxFieldValue = 1024

	// DefaultFooter is appended to most replies.
	DefaultFooter = "Oficys • &help shows everything"
)

// Field is a named section of a reply. Inline fields share a line with
// their neighbors when rendered.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Reply is one outbound payload: title, description, color category,
// optional fields and footer.
type Reply struct {
	Title       string
	Description string
	Color       Color
	Fields      []Field
	Footer      string
}

var icons = []string{"✨", "🌟", "💫", "🎯", "🧠", "⚡", "🪄", "🎲", "🧩"}

// Icon deterministically picks a decorative icon from the seed string. Same
// seed, same icon. Not a randomness source for anything else.
func Icon(seed string) string {
	h := fnv.New64a()
	h.Write([]byte(seed))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return icons[rng.Intn(len(icons))]
}

// New builds a plain primary-colored reply with the default footer.
func New(title, description string) *Reply {
	return &Reply{Title: title, Description: description, Color: Primary, Footer: DefaultFooter}
}

// Info builds a primary reply whose title carries a seed-picked icon.
func Info(title, description, seed string) *Reply {
	if seed == "" {
		seed = title
	}
	r := New(Icon(seed)+" "+title, description)
	return r
}

// SuccessReply builds a green checkmark reply.
func SuccessReply(title, description string) *Reply {
	r := New("✅ "+title, description)
	r.Color = Success
	return r
}

// WarnReply builds an orange warning reply.
func WarnReply(title, description string) *Reply {
	r := New("⚠️ "+title, description)
	r.Color = Warning
	return r
}

// ErrorReply builds a red error reply.
func ErrorReply(title, description string) *Reply {
	r := New("❌ "+title, description)
	r.Color = Error
	return r
}

// AddField appends a field, clamping name and value and capping the total
// field count.
func (r *Reply) AddField(name, value string, inline bool) *Reply {
	if len(r.Fields) >= maxFields {
		return r
	}
	if value == "" {
		value = "—"
	}
	r.Fields = append(r.Fields, Field{
		Name:   clamp(name, maxFieldName),
		Value:  clamp(value, maxFieldValue),
		Inline: inline,
	})
	return r
}

// SetField overwrites the field at index i, keeping the clamping rules.
// Out-of-range indexes are ignored.
func (r *Reply) SetField(i int, name, value string, inline bool) *Reply {
	if i < 0 || i >= len(r.Fields) {
		return r
	}
	if value == "" {
		value = "—"
	}
	r.Fields[i] = Field{Name: clamp(name, maxFieldName), Value: clamp(value, maxFieldValue), Inline: inline}
	return r
}

func clamp(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Render produces the Telegram Markdown text for the payload. Inline fields
// are joined on one line with a separator; block fields get their own
// paragraph.
func (r *Reply) Render() string {
	var b strings.Builder
	b.WriteString("*" + r.Title + "*")
	if r.Description != "" {
		b.WriteString("\n\n" + r.Description)
	}

	var inlineRun []string
	flush := func() {
		if len(inlineRun) > 0 {
			b.WriteString("\n" + strings.Join(inlineRun, "  •  "))
			inlineRun = nil
		}
	}
	for _, f := range r.Fields {
		if f.Inline {
			inlineRun = append(inlineRun, fmt.Sprintf("*%s:* %s", f.Name, f.Value))
			continue
		}
		flush()
		b.WriteString(fmt.Sprintf("\n\n*%s*\n%s", f.Name, f.Value))
	}
	flush()

	if r.Footer != "" {
		b.WriteString("\n\n_" + r.Footer + "_")
	}
	return b.String()
}

// PrettyList bullets up to max items and reports how many were left out.
func PrettyList(items []string, max int) string {
	if len(items) == 0 {
		return "—"
	}
	shown := items
	if len(shown) > max {
		shown = shown[:max]
	}
	var b strings.Builder
	for i, item := range shown {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + item)
	}
	if rest := len(items) - len(shown); rest > 0 {
		b.WriteString(fmt.Sprintf("\n… and %d more.", rest))
	}
	return b.String()
}

// FormatFilter echoes the filter token a games command was invoked with.
func FormatFilter(token string) string {
	if token == "" {
		return "no filter"
	}
	return "filter: `" + token + "`"
}
