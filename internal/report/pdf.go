// Package report renders a printable study report.
package report

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"studytime/internal/engine"
	"studytime/internal/storage"
	"studytime/internal/ui"
)

// Input is everything a report shows. Days limits the session list and the
// per-subject table; 0 means all time.
type Input struct {
	Profile  storage.UserProfile
	Subjects []storage.Subject
	Tasks    []storage.Task
	Sessions []storage.StudySession
	Now      time.Time
	Days     int
}

var stripe = &color.Color{Red: 240, Green: 240, Blue: 240}

func nameFor(byID map[string]string, id string) string {
	if n, ok := byID[id]; ok {
		return n
	}
	return engine.UnknownSubjectName
}

func (in Input) window() engine.Window {
	if in.Days > 0 {
		return engine.LastDays(in.Now, in.Days)
	}
	return engine.AllTime()
}

func (in Input) period() string {
	if in.Days > 0 {
		from := in.Now.AddDate(0, 0, -in.Days)
		return fmt.Sprintf("%s - %s", from.Format(engine.DateLayout), in.Now.Format(engine.DateLayout))
	}
	return "All time"
}

// Build lays out the report.
func Build(in Input) pdf.Maroto {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Study Report", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("%s (%s) - %s", in.Profile.Name, in.Profile.Title, in.period()), props.Text{
					Top:   3,
					Align: consts.Center,
					Size:  12,
				})
			})
		})
	})

	d := engine.BuildDashboard(in.Sessions, in.Tasks, in.Subjects, in.Now)
	windowed := in.window().Filter(in.Sessions)

	section(m, "Summary")
	table(m, []string{"Metric", "Value"}, [][]string{
		{"Study time", ui.Duration(engine.TotalDuration(windowed))},
		{"Sessions", fmt.Sprintf("%d", len(windowed))},
		{"Focus score", fmt.Sprintf("%d%%", d.FocusScore)},
		{"Tasks completed", fmt.Sprintf("%d / %d", d.CompletedTasks, len(in.Tasks))},
		{"Current streak", fmt.Sprintf("%d days", d.CurrentStreak)},
		{"Longest streak", fmt.Sprintf("%d days", d.LongestStreak)},
		{"Achievements", fmt.Sprintf("%d / %d", d.EarnedCount, len(d.Achievements))},
	}, []uint{6, 6})

	section(m, "Time by subject")
	var bySubject [][]string
	for _, st := range engine.TimeBySubject(in.Sessions, in.Subjects, in.window()) {
		bySubject = append(bySubject, []string{st.Name, fmt.Sprintf("%d min", st.Minutes())})
	}
	table(m, []string{"Subject", "Time"}, bySubject, []uint{8, 4})

	names := make(map[string]string, len(in.Subjects))
	for _, s := range in.Subjects {
		names[s.ID] = s.Name
	}

	section(m, "Sessions")
	var sessions [][]string
	for _, s := range engine.RecentSessions(windowed, len(windowed)) {
		sessions = append(sessions, []string{
			s.Start().In(in.Now.Location()).Format("2006-01-02 15:04"),
			nameFor(names, s.SubjectID),
			ui.Duration(s.Duration),
		})
	}
	table(m, []string{"Started", "Subject", "Duration"}, sessions, []uint{4, 5, 3})

	section(m, "Tasks")
	var tasks [][]string
	for _, t := range engine.SortTasks(in.Tasks) {
		status := "Pending"
		switch {
		case t.Completed:
			status = "Completed"
		case engine.IsOverdue(t, in.Now):
			status = "Overdue"
		}
		tasks = append(tasks, []string{t.Title, nameFor(names, t.SubjectID), t.DueDate, status})
	}
	table(m, []string{"Task", "Subject", "Due", "Status"}, tasks, []uint{5, 3, 2, 2})

	section(m, "Achievements")
	var earned [][]string
	for _, a := range d.Achievements {
		state := "Locked"
		if a.Earned {
			state = "Earned"
		}
		earned = append(earned, []string{a.Name, a.Description, state})
	}
	table(m, []string{"Achievement", "Description", "State"}, earned, []uint{3, 7, 2})

	return m
}

// Generate writes the report to path.
func Generate(path string, in Input) error {
	if err := Build(in).OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func section(m pdf.Maroto, title string) {
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Top:   5,
				Style: consts.Bold,
				Size:  14,
			})
		})
	})
}

func table(m pdf.Maroto, headers []string, rows [][]string, grid []uint) {
	if len(rows) == 0 {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text("Nothing recorded yet.", props.Text{Size: 10, Style: consts.Italic})
			})
		})
		return
	}
	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: grid,
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: grid,
		},
		Align:                consts.Left,
		AlternatedBackground: stripe,
		HeaderContentSpace:   1,
		Line:                 false,
	})
}
