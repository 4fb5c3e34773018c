// Package format holds small text-formatting helpers shared by commands.
package format

import (
	"fmt"
	"strings"
	"time"
)

// FormatUptime formats uptime in a readable format.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd%dh", days, hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// FormatDuration formats a duration readably.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		if s > 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}

// Truncate truncates a string to max length.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

// SafeFloat safely gets a float from an array.
func SafeFloat(arr []float64, def float64) float64 {
	if len(arr) > 0 {
		return arr[0]
	}
	return def
}

// ProgressBar renders done out of total as a bar of blocks squares.
func ProgressBar(done, total, blocks int) string {
	filled := 0
	if total > 0 {
		filled = done * blocks / total
	}
	if filled < 0 {
		filled = 0
	}
	if filled > blocks {
		filled = blocks
	}
	return strings.Repeat("🟩", filled) + strings.Repeat("⬛", blocks-filled)
}
