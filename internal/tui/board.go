package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"studytime/internal/engine"
)

// RunBoard runs the board until the user quits. svc must have been built
// with bridge as its scheduler's poster and n as its notifier.
func RunBoard(ctx context.Context, svc *engine.Service, bridge *Bridge, n *Notifier, lang string, out io.Writer) error {
	m := newBoardModel(ctx, svc, bridge, lang)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))
	bridge.Attach(p)
	svc.RequestNotificationPermission(n, bridge)
	_, err := p.Run()
	return err
}
