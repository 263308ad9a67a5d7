package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytime/internal/report"
	"studytime/internal/ui"
)

func newReportCmd() *cobra.Command {
	var out string
	var days int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF study report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			err = report.Generate(out, report.Input{
				Profile:  svc.Profile(),
				Subjects: svc.Subjects(),
				Tasks:    svc.Tasks(),
				Sessions: svc.Sessions(),
				Now:      svc.Clock().Now(),
				Days:     days,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Report written to %s\n", ui.IconDone, ui.Key.Render(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "studytime-report.pdf", "Output file")
	cmd.Flags().IntVar(&days, "days", 0, "Only the last N days (0 = all time)")
	return cmd
}
