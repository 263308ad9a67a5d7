package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytime/internal/storage"
	"studytime/internal/ui"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle|light|dark]",
		Short:     "Show or change the board theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"toggle", string(storage.ThemeLight), string(storage.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			switch {
			case len(args) == 0:
			case args[0] == "toggle":
				svc.ToggleTheme(ctx)
			default:
				if err := svc.SetTheme(ctx, storage.Theme(args[0])); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", svc.Theme()))
			return nil
		},
	}
}
