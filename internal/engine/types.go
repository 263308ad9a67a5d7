package engine

import "time"

type Mode string

const (
	ModePomodoro  Mode = "POMODORO"
	ModeStopwatch Mode = "STOPWATCH"
)

// PomodoroSeconds is the fixed length of a Pomodoro countdown.
const PomodoroSeconds = 25 * 60

// TickInterval is how often a running timer advances.
const TickInterval = time.Second

func (m Mode) IsValid() bool {
	return m == ModePomodoro || m == ModeStopwatch
}

// InitialSeconds is the value the timer display resets to for the mode.
func (m Mode) InitialSeconds() int {
	if m == ModePomodoro {
		return PomodoroSeconds
	}
	return 0
}

func (m Mode) Label() string {
	if m == ModePomodoro {
		return "Pomodoro"
	}
	return "Stopwatch"
}

// CategoryOther is used for subjects without a category.
const CategoryOther = "Other"

// Categories lists the subject categories in display order.
var Categories = []string{
	"STEM",
	"Humanities",
	"Arts",
	"Languages",
	"Social Sciences",
	"Health",
	"Business",
	CategoryOther,
}

var categoryColors = map[string]string{
	"STEM":            "#3b82f6",
	"Humanities":      "#d97706",
	"Arts":            "#a855f7",
	"Languages":       "#ef4444",
	"Social Sciences": "#10b981",
	"Health":          "#f43f5e",
	"Business":        "#6366f1",
	CategoryOther:     "#78716c",
}

// SubjectColors is the palette new subjects cycle through.
var SubjectColors = []string{
	"#38bdf8",
	"#818cf8",
	"#c084fc",
	"#fb7185",
	"#4ade80",
	"#facc15",
	"#2dd4bf",
	"#f87171",
}

func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return categoryColors[CategoryOther]
}

const UnknownSubjectName = "Unknown Subject"
