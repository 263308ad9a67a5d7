// Package notify delivers timer completion notices to the user.
package notify

import (
	"fmt"
	"time"
)

type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionDefault Permission = "default"
)

// AlertMessage is shown instead of a notification when permission was denied.
const AlertMessage = "Timer Complete! 🍅"

const CompletionTag = "timer-complete"

type Notification struct {
	Title              string
	Body               string
	Tag                string
	RequireInteraction bool
	AutoClose          time.Duration
}

// Notifier is the user-visible notification capability.
//
// RequestPermission may block (it can prompt the user); callers run it off the
// event loop and post the result back.
type Notifier interface {
	Permission() Permission
	RequestPermission() (Permission, error)
	Notify(n Notification) error
	// Alert shows a message the user has to acknowledge.
	Alert(message string) error
}

// PomodoroComplete builds the notice for a finished countdown.
func PomodoroComplete(subject string) Notification {
	return Notification{
		Title:              "🍅 Pomodoro Complete!",
		Body:               fmt.Sprintf("Great work on %s! Time for a 5-minute break.", subject),
		Tag:                CompletionTag,
		RequireInteraction: true,
		AutoClose:          10 * time.Second,
	}
}

// StopwatchComplete builds the notice for a finished count-up interval.
func StopwatchComplete(subject string, seconds int) Notification {
	return Notification{
		Title:              "⏱️ Study Session Complete!",
		Body:               fmt.Sprintf("You studied %s for %s. Well done!", subject, FormatElapsed(seconds)),
		Tag:                CompletionTag,
		RequireInteraction: true,
		AutoClose:          10 * time.Second,
	}
}

// FormatElapsed renders seconds as "Ns", "Nm" or "Hh Mm".
func FormatElapsed(seconds int) string {
	mins := seconds / 60
	secs := seconds % 60
	if mins == 0 && secs > 0 {
		return fmt.Sprintf("%ds", secs)
	}
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

// Nop drops every notification and reports PermissionDefault.
type Nop struct{}

func (Nop) Permission() Permission                 { return PermissionDefault }
func (Nop) RequestPermission() (Permission, error) { return PermissionDefault, nil }
func (Nop) Notify(Notification) error              { return nil }
func (Nop) Alert(string) error                     { return nil }
