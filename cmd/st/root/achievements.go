package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytime/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "Show earned and locked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d := svc.Dashboard()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements %d/%d", d.EarnedCount, len(d.Achievements))))
			for _, a := range d.Achievements {
				if a.Earned {
					fmt.Fprintf(out, "%s %s %s\n", a.Icon, ui.Gold.Render(a.Name), a.Description)
					continue
				}
				fmt.Fprintf(out, "%s %s\n", "🔒", ui.Muted.Render(a.Name+" "+a.Description))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Current streak", fmt.Sprintf("%d days", d.CurrentStreak)))
			fmt.Fprintln(out, ui.LabelValue("Longest streak", fmt.Sprintf("%d days", d.LongestStreak)))
			return nil
		},
	}
}
