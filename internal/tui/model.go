package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studytime/internal/engine"
	"studytime/internal/storage"
	"studytime/internal/ui"
	"studytime/pkg/apierrors"
)

type completedMsg struct {
	session *storage.StudySession
}

type boardModel struct {
	ctx    context.Context
	svc    *engine.Service
	bridge *Bridge
	lang   string

	width  int
	height int

	toast   *toastMsg
	lastLog string
}

func newBoardModel(ctx context.Context, svc *engine.Service, bridge *Bridge, lang string) boardModel {
	svc.Timer().OnComplete(func(s *storage.StudySession) {
		bridge.send(completedMsg{session: s})
	})
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		bridge:  bridge,
		lang:    lang,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.SetWindowTitle("Studytime")
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case postedMsg:
		msg()
		return m, nil
	case toastMsg:
		m.toast = &msg
		return m, nil
	case completedMsg:
		if msg.session != nil {
			m.lastLog = fmt.Sprintf("Session complete: %s of %s saved.", ui.Duration(msg.session.Duration), m.svc.SubjectName(msg.session.SubjectID))
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.svc.Timer()
	switch msg.String() {
	case "ctrl+c", "q":
		if t.Running() {
			// Keep the study time instead of dropping it.
			if _, err := t.StopAndSave(m.ctx); err != nil {
				m.lastLog = m.errorText(err)
			}
		}
		m.svc.Close()
		return m, tea.Quit
	case " ", "s":
		wasRunning := t.Running()
		if err := t.Start(m.ctx); err != nil {
			m.lastLog = m.errorText(err)
			return m, nil
		}
		if wasRunning {
			m.lastLog = "Paused."
		} else {
			m.lastLog = fmt.Sprintf("Studying %s.", m.svc.SubjectName(t.ActiveSubjectID()))
		}
		m.toast = nil
		return m, nil
	case "x":
		s, err := t.StopAndSave(m.ctx)
		switch {
		case err != nil:
			m.lastLog = m.errorText(err)
		case s == nil:
			m.lastLog = "Too short to save."
		default:
			m.lastLog = fmt.Sprintf("Saved %s of %s.", ui.Duration(s.Duration), m.svc.SubjectName(s.SubjectID))
		}
		return m, nil
	case "m":
		next := engine.ModeStopwatch
		if t.Mode() == engine.ModeStopwatch {
			next = engine.ModePomodoro
		}
		if err := t.SetMode(next); err != nil {
			m.lastLog = m.errorText(err)
			return m, nil
		}
		m.lastLog = next.Label() + " mode."
		return m, nil
	case "tab":
		subjects := m.svc.Subjects()
		if len(subjects) == 0 {
			m.lastLog = m.errorText(engine.ErrNoSubjects)
			return m, nil
		}
		next := subjects[0].ID
		for i, s := range subjects {
			if s.ID == t.ActiveSubjectID() {
				next = subjects[(i+1)%len(subjects)].ID
				break
			}
		}
		if err := t.SetActiveSubject(next); err != nil {
			m.lastLog = m.errorText(err)
			return m, nil
		}
		m.lastLog = "Subject: " + m.svc.SubjectName(next)
		return m, nil
	case "b":
		m.svc.ToggleSidebar(m.ctx)
		return m, nil
	case "t":
		m.lastLog = fmt.Sprintf("Theme: %s.", m.svc.ToggleTheme(m.ctx))
		return m, nil
	case "esc":
		m.toast = nil
		return m, nil
	case "r":
		m.lastLog = fmt.Sprintf("Refreshed at %s.", m.svc.Clock().Now().Format("15:04:05"))
		return m, nil
	}
	return m, nil
}

func (m boardModel) errorText(err error) string {
	return ui.Bad.Render(ui.IconError + " " + apierrors.Message(err, m.lang))
}

func (m boardModel) dark() bool { return m.svc.Theme() == storage.ThemeDark }

func (m boardModel) panel() lipgloss.Style {
	if m.dark() {
		return ui.PanelDark
	}
	return ui.Panel
}

func (m boardModel) muted() lipgloss.Style {
	if m.dark() {
		return ui.MutedDark
	}
	return ui.Muted
}

func (m boardModel) View() string {
	d := m.svc.Dashboard()

	main := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderTimer(), m.renderToday(d)),
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderWeek(d), m.renderUpcoming(d)),
		m.renderAchievements(d),
	)
	body := main
	if !m.svc.SidebarCollapsed() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(d), main)
	}
	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	p := m.svc.Profile()
	return fmt.Sprintf("%s %s",
		ui.Heading(ui.IconBook, "Studytime"),
		m.muted().Render(fmt.Sprintf("| %s, %s | %s theme", p.Name, p.Title, m.svc.Theme())),
	)
}

func (m boardModel) renderSidebar(d engine.Dashboard) string {
	active := m.svc.Timer().ActiveSubjectID()
	lines := []string{ui.PanelTitle.Render("Subjects")}
	subjects := m.svc.Subjects()
	if len(subjects) == 0 {
		lines = append(lines, m.muted().Render("(none yet)"))
	}
	for _, s := range subjects {
		cursor := "  "
		name := s.Name
		if s.ID == active {
			cursor = "▶ "
			name = ui.Key.Render(name)
		}
		lines = append(lines, cursor+ui.Swatch(s.Color)+" "+name)
	}
	lines = append(lines,
		"",
		ui.PanelTitle.Render("Keys"),
		"space start/pause",
		"x     stop & save",
		"m     mode",
		"tab   next subject",
		"b     sidebar",
		"t     theme",
		"r     refresh",
		"q     quit",
	)
	return m.panel().Width(24).Render(strings.Join(lines, "\n"))
}

func (m boardModel) renderTimer() string {
	t := m.svc.Timer().Snapshot()
	icon := ui.IconTomato
	if t.Mode == engine.ModeStopwatch {
		icon = ui.IconClock
	}
	state := m.muted().Render(string(t.State))
	if t.Running {
		state = ui.Good.Render(string(t.State))
	}
	lines := []string{
		ui.PanelTitle.Render(icon + " " + t.Mode.Label()),
		ui.BigClock.Render(ui.Clock(t.Seconds)),
		ui.LabelValue("Subject", m.svc.SubjectName(t.ActiveSubjectID)),
		ui.LabelValue("State", state),
	}
	return m.panel().Width(30).Render(strings.Join(lines, "\n"))
}

func (m boardModel) renderToday(d engine.Dashboard) string {
	lines := []string{
		ui.PanelTitle.Render(ui.IconChart + " Today"),
		ui.LabelValue("Studied", ui.Duration(d.TodaySeconds)),
		ui.LabelValue("Sessions", d.TodaySessions),
		ui.LabelValue("Pending tasks", d.PendingTasks),
		ui.LabelValue("Focus", ui.FocusScore(d.FocusScore)),
		ui.LabelValue("Streak", fmt.Sprintf("%s %d days (best %d)", ui.IconFire, d.CurrentStreak, d.LongestStreak)),
	}
	return m.panel().Width(34).Render(strings.Join(lines, "\n"))
}

func (m boardModel) renderWeek(d engine.Dashboard) string {
	lines := []string{ui.PanelTitle.Render("Last 7 days")}
	var max int64
	for _, st := range d.LastSevenDays {
		if st.Seconds > max {
			max = st.Seconds
		}
	}
	if len(d.LastSevenDays) == 0 {
		lines = append(lines, m.muted().Render("(no sessions)"))
	}
	for _, st := range d.LastSevenDays {
		lines = append(lines, fmt.Sprintf("%-12s %s %dm", truncate(st.Name, 12), ui.Bar(st.Seconds, max, 12, st.Color), st.Minutes()))
	}
	return m.panel().Width(34).Render(strings.Join(lines, "\n"))
}

func (m boardModel) renderUpcoming(d engine.Dashboard) string {
	now := m.svc.Clock().Now()
	lines := []string{ui.PanelTitle.Render("Upcoming")}
	if len(d.Upcoming) == 0 {
		lines = append(lines, m.muted().Render("(nothing due)"))
	}
	for _, t := range d.Upcoming {
		lines = append(lines, fmt.Sprintf("%s %s %s", t.DueDate, truncate(t.Title, 16), ui.TaskStatus(t.Completed, engine.IsOverdue(t, now))))
	}
	return m.panel().Width(30).Render(strings.Join(lines, "\n"))
}

func (m boardModel) renderAchievements(d engine.Dashboard) string {
	var icons []string
	for _, a := range d.Achievements {
		if a.Earned {
			icons = append(icons, a.Icon+" "+a.Name)
		}
	}
	line := m.muted().Render("(none yet)")
	if len(icons) > 0 {
		line = strings.Join(icons, "  ")
	}
	title := ui.PanelTitle.Render(fmt.Sprintf("%s Achievements %d/%d", ui.IconTrophy, d.EarnedCount, len(d.Achievements)))
	return m.panel().Render(title + "\n" + line)
}

func (m boardModel) renderFooter() string {
	var b strings.Builder
	if m.toast != nil {
		style := ui.Gold
		if m.toast.alert {
			style = ui.Warn
		}
		b.WriteString(style.Render(m.toast.title))
		if m.toast.body != "" {
			b.WriteString(" " + m.toast.body)
		}
		b.WriteString(m.muted().Render("  (esc to dismiss)"))
		b.WriteString("\n")
	}
	b.WriteString(m.lastLog)
	return b.String()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
