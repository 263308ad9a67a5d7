package notify

import (
	"fmt"
	"io"
	"sync"

	"studytime/internal/ui"
)

// Terminal prints notifications to a writer and rings the terminal bell.
// When disabled it reports PermissionDenied so completions fall back to Alert.
type Terminal struct {
	out     io.Writer
	enabled bool

	mu   sync.Mutex
	perm Permission
}

func NewTerminal(out io.Writer, enabled bool) *Terminal {
	return &Terminal{out: out, enabled: enabled, perm: PermissionDefault}
}

func (t *Terminal) Permission() Permission {
	if !t.enabled {
		return PermissionDenied
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.perm
}

func (t *Terminal) RequestPermission() (Permission, error) {
	p := PermissionDenied
	if t.enabled {
		p = PermissionGranted
	}
	t.mu.Lock()
	t.perm = p
	t.mu.Unlock()
	return p, nil
}

func (t *Terminal) Notify(n Notification) error {
	box := ui.Panel.Render(ui.Title.Render(n.Title) + "\n" + n.Body)
	_, err := fmt.Fprintf(t.out, "\a%s\n", box)
	return err
}

func (t *Terminal) Alert(message string) error {
	_, err := fmt.Fprintf(t.out, "\a%s\n", ui.Warn.Render(message))
	return err
}
