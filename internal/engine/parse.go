package engine

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format of task due dates.
const DateLayout = "2006-01-02"

// ParseMode parses user input to a Mode.
// Supported: pomodoro, pomo, p, stopwatch, sw, s (any case).
func ParseMode(input string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "pomodoro", "pomo", "p":
		return ModePomodoro, nil
	case "stopwatch", "sw", "s":
		return ModeStopwatch, nil
	default:
		if m := Mode(strings.ToUpper(strings.TrimSpace(input))); m.IsValid() {
			return m, nil
		}
		return "", fmt.Errorf("%w %q (want pomodoro or stopwatch)", ErrInvalidMode, input)
	}
}

// ParseCategory matches input against Categories case-insensitively.
// Empty input means "no category".
func ParseCategory(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", nil
	}
	for _, c := range Categories {
		if strings.EqualFold(c, s) {
			return c, nil
		}
	}
	return "", InvalidCategoryError{Category: s}
}

// ParseDueDate validates a YYYY-MM-DD date and returns it normalized.
func ParseDueDate(input string) (string, error) {
	s := strings.TrimSpace(input)
	d, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: due date %q (want YYYY-MM-DD)", ErrInvalidInput, input)
	}
	return d.Format(DateLayout), nil
}

func normalizeColor(input string) (string, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if len(s) != 7 || s[0] != '#' {
		return "", fmt.Errorf("%w: color %q (want #rrggbb)", ErrInvalidInput, input)
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", fmt.Errorf("%w: color %q (want #rrggbb)", ErrInvalidInput, input)
		}
	}
	return s, nil
}
