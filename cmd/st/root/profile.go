package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytime/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the user profile",
	}
	cmd.AddCommand(newProfileShowCmd(), newProfileSetCmd())
	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := svc.Profile()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, p.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Title", p.Title))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", svc.Theme()))
			return nil
		},
	}
}

func newProfileSetCmd() *cobra.Command {
	var name, title string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the profile name or title",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := svc.Profile()
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("title") {
				p.Title = title
			}
			p, err = svc.UpdateProfile(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Profile: %s, %s\n", ui.IconDone, ui.Key.Render(p.Name), p.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Title shown under the name")
	return cmd
}
