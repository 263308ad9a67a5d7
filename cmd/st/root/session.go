package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"studytime/internal/engine"
	"studytime/internal/ui"
)

const sessionTimeLayout = "2006-01-02 15:04"

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Aliases: []string{"sessions"},
		Short:   "Browse or record study sessions",
	}
	cmd.AddCommand(newSessionListCmd(), newSessionAddCmd())
	return cmd
}

func newSessionListCmd() *cobra.Command {
	var subject string
	var days, limit int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List sessions, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sessions := svc.Ledger().All()
			if subject != "" {
				s, err := resolveSubject(svc, subject)
				if err != nil {
					return err
				}
				sessions = svc.Ledger().SessionsForSubject(s.ID)
			}
			if days > 0 {
				sessions = engine.LastDays(svc.Clock().Now(), days).Filter(sessions)
			}
			total := engine.TotalDuration(sessions)
			if limit <= 0 {
				limit = len(sessions)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Sessions"))
			for _, s := range engine.RecentSessions(sessions, limit) {
				fmt.Fprintf(out, "%s %s %-20s %s\n",
					ui.Muted.Render(shortID(s.ID)),
					s.Start().Format(sessionTimeLayout),
					svc.SubjectName(s.SubjectID),
					ui.Duration(s.Duration),
				)
			}
			fmt.Fprintln(out, ui.LabelValue("Total", fmt.Sprintf("%s in %d sessions", ui.Duration(total), len(sessions))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only sessions of this subject")
	cmd.Flags().IntVar(&days, "days", 0, "Only sessions started in the last N days")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show at most N sessions (0 = all)")
	return cmd
}

func newSessionAddCmd() *cobra.Command {
	var subject, start string
	var minutes int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a study session that was not timed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := resolveSubject(svc, subject)
			if err != nil {
				return err
			}
			end := svc.Clock().Now()
			begin := end.Add(-time.Duration(minutes) * time.Minute)
			if start != "" {
				if begin, err = time.ParseInLocation(sessionTimeLayout, start, time.Local); err != nil {
					return fmt.Errorf("%w: start %q (want %s)", engine.ErrInvalidInput, start, sessionTimeLayout)
				}
				end = begin.Add(time.Duration(minutes) * time.Minute)
			}
			sess, err := svc.AddSession(ctx, engine.AddSessionInput{SubjectID: s.ID, Start: begin, End: end})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Recorded %s of %s\n", ui.IconPlus, ui.Duration(sess.Duration), ui.Key.Render(s.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject name or id")
	cmd.Flags().IntVarP(&minutes, "minutes", "m", 25, "Length in minutes")
	cmd.Flags().StringVar(&start, "start", "", "Start time (YYYY-MM-DD HH:MM, default: ends now)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
