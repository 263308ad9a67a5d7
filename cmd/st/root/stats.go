package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytime/internal/engine"
	"studytime/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"status", "dashboard"},
		Short:   "Show today's progress, time by subject and upcoming tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d := svc.Dashboard()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Today"))
			fmt.Fprintln(out, ui.LabelValue("Studied", fmt.Sprintf("%s in %d sessions", ui.Duration(d.TodaySeconds), d.TodaySessions)))
			fmt.Fprintln(out, ui.LabelValue("Pending tasks", d.PendingTasks))
			fmt.Fprintln(out, ui.LabelValue("Focus score", ui.FocusScore(d.FocusScore)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days %s", ui.IconFire, d.CurrentStreak, ui.Muted.Render(fmt.Sprintf("(best %d)", d.LongestStreak)))))
			fmt.Fprintln(out, "")

			printSubjectTimes(cmd, "Last 7 days", d.LastSevenDays)
			printSubjectTimes(cmd, "All time", d.AllTime)

			fmt.Fprintln(out, ui.H2.Render("By category"))
			var max int64
			for _, c := range d.ByCategory {
				if c.Seconds > max {
					max = c.Seconds
				}
			}
			if len(d.ByCategory) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no sessions)"))
			}
			for _, c := range d.ByCategory {
				fmt.Fprintf(out, "%-16s %s %d min\n", c.Category, ui.Bar(c.Seconds, max, 20, c.Color), c.Minutes())
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Recent sessions"))
			if len(d.Recent) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
			}
			for _, s := range d.Recent {
				fmt.Fprintf(out, "- %s %-20s %s\n", s.Start().Format(sessionTimeLayout), svc.SubjectName(s.SubjectID), ui.Duration(s.Duration))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Upcoming tasks"))
			if len(d.Upcoming) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing due)"))
			}
			printTasks(cmd, svc, d.Upcoming)
			return nil
		},
	}

	return cmd
}

func printSubjectTimes(cmd *cobra.Command, title string, times []engine.SubjectTime) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.H2.Render(title))
	if len(times) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("(no sessions)"))
	}
	var max int64
	for _, st := range times {
		if st.Seconds > max {
			max = st.Seconds
		}
	}
	for _, st := range times {
		fmt.Fprintf(out, "%-16s %s %d min\n", st.Name, ui.Bar(st.Seconds, max, 20, st.Color), st.Minutes())
	}
	fmt.Fprintln(out, "")
}
