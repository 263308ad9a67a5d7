package root

import (
	"context"

	"github.com/spf13/cobra"

	"studytime/internal/engine"
	"studytime/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI with the study timer and dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			bridge := &tui.Bridge{}
			notifier := tui.NewNotifier(bridge, cfg.NotificationsEnabled)
			svc, cleanup, err := openService(ctx,
				engine.WithScheduler(engine.NewTickerScheduler(bridge)),
				engine.WithNotifier(notifier),
			)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, bridge, notifier, errorsLang, cmd.OutOrStdout())
		},
	}

	return cmd
}
