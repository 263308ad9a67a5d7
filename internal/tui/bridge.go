package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"studytime/internal/notify"
)

// postedMsg carries work queued by the engine (ticks, permission answers)
// into Update, so the Service is only touched from the program's loop.
type postedMsg func()

type toastMsg struct {
	title string
	body  string
	alert bool
}

// Bridge is the engine.Poster of the board. It is created before the
// program so the Service can be built with it, then attached.
type Bridge struct {
	mu sync.Mutex
	p  *tea.Program
}

func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	b.p = p
	b.mu.Unlock()
}

func (b *Bridge) program() *tea.Program {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.p
}

// Post blocks until the program accepts fn. It must not be called from
// Update; use send for that.
func (b *Bridge) Post(fn func()) bool {
	p := b.program()
	if p == nil {
		return false
	}
	p.Send(postedMsg(fn))
	return true
}

// send delivers msg without blocking the caller.
func (b *Bridge) send(msg tea.Msg) {
	p := b.program()
	if p == nil {
		return
	}
	go p.Send(msg)
}

// Notifier shows timer notifications as a toast on the board. Permission
// starts undecided and RequestPermission answers according to enabled.
type Notifier struct {
	bridge  *Bridge
	enabled bool

	mu   sync.Mutex
	perm notify.Permission
}

func NewNotifier(b *Bridge, enabled bool) *Notifier {
	return &Notifier{bridge: b, enabled: enabled, perm: notify.PermissionDefault}
}

func (n *Notifier) Permission() notify.Permission {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.perm
}

func (n *Notifier) RequestPermission() (notify.Permission, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.perm == notify.PermissionDefault {
		n.perm = notify.PermissionDenied
		if n.enabled {
			n.perm = notify.PermissionGranted
		}
	}
	return n.perm, nil
}

func (n *Notifier) Notify(msg notify.Notification) error {
	n.bridge.send(toastMsg{title: msg.Title, body: msg.Body})
	return nil
}

func (n *Notifier) Alert(message string) error {
	n.bridge.send(toastMsg{title: message, alert: true})
	return nil
}
