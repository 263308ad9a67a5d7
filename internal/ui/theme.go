package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Studytime theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconBook    = "📚"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconClock   = "⏱️"
	IconTomato  = "🍅"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconFire    = "🔥"
	IconChart   = "📊"
	IconTrash   = "🗑️"
	IconBulb    = "💡"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	BigClock    = lipgloss.NewStyle().Bold(true).Foreground(cAccent).Padding(0, 2)
)

// Dark variants swap the panel border and muted text for dark terminals.
var (
	PanelDark = Panel.BorderForeground(lipgloss.Color("240"))
	MutedDark = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Swatch renders a colored block for a "#rrggbb" color.
func Swatch(hex string) string {
	if hex == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}

// Colored renders s in a "#rrggbb" color.
func Colored(hex, s string) string {
	if hex == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

// Duration renders seconds as "1h 5m", "12m" or "40s".
func Duration(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// Clock renders seconds as MM:SS, or H:MM:SS past an hour.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FocusScore colors a focus percentage: >=75 good, >=40 warn, else bad.
func FocusScore(score int) string {
	text := fmt.Sprintf("%d%%", score)
	switch {
	case score >= 75:
		return Good.Render(text)
	case score >= 40:
		return Warn.Render(text)
	default:
		return Bad.Render(text)
	}
}

func TaskStatus(completed, overdue bool) string {
	switch {
	case completed:
		return Good.Render("done")
	case overdue:
		return Bad.Render("overdue")
	default:
		return Warn.Render("pending")
	}
}

// Bar renders a horizontal bar of width cells filled to value/max.
func Bar(value, max int64, width int, hex string) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if max > 0 {
		filled = int(float64(width) * float64(value) / float64(max))
	}
	if filled > width {
		filled = width
	}
	if value > 0 && filled == 0 {
		filled = 1
	}
	return Colored(hex, strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
