package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studytime/internal/engine"
	"studytime/internal/ui"
)

func newSubjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subject",
		Aliases: []string{"subjects", "sub"},
		Short:   "Manage study subjects",
	}
	cmd.AddCommand(newSubjectAddCmd(), newSubjectListCmd(), newSubjectEditCmd(), newSubjectRmCmd())
	return cmd
}

func newSubjectAddCmd() *cobra.Command {
	var color, category string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := svc.AddSubject(ctx, engine.AddSubjectInput{Name: args[0], Color: color, Category: category})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s %s\n", ui.IconPlus, ui.Swatch(s.Color), ui.Key.Render(s.Name), ui.Muted.Render("("+shortID(s.ID)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&color, "color", "c", "", "Color as #rrggbb (default: next palette color)")
	cmd.Flags().StringVarP(&category, "category", "k", "", "Category (STEM|Humanities|Arts|Languages|Social Sciences|Health|Business|Other)")
	return cmd
}

func newSubjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List subjects with their total study time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBook, "Subjects"))
			subjects := svc.Subjects()
			if len(subjects) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No subjects yet. Add one with `st subject add <name>`."))
				return nil
			}
			totals := map[string]int64{}
			for _, st := range engine.TimeBySubject(svc.Sessions(), subjects, engine.AllTime()) {
				totals[st.SubjectID] = st.Seconds
			}
			active := svc.Timer().ActiveSubjectID()
			for _, s := range subjects {
				marker := " "
				if s.ID == active {
					marker = "▶"
				}
				category := s.Category
				if category == "" {
					category = "-"
				}
				fmt.Fprintf(out, "%s %s %s %-20s %-16s %s\n", marker, ui.Muted.Render(shortID(s.ID)), ui.Swatch(s.Color), s.Name, category, ui.Duration(totals[s.ID]))
			}
			return nil
		},
	}
}

func newSubjectEditCmd() *cobra.Command {
	var name, color, category string

	cmd := &cobra.Command{
		Use:   "edit <subject>",
		Short: "Rename a subject or change its color or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := resolveSubject(svc, args[0])
			if err != nil {
				return err
			}
			var in engine.UpdateSubjectInput
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("color") {
				in.Color = &color
			}
			if cmd.Flags().Changed("category") {
				in.Category = &category
			}
			updated, err := svc.UpdateSubject(ctx, s.ID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s %s\n", ui.IconDone, ui.Swatch(updated.Color), ui.Key.Render(updated.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&color, "color", "c", "", "New color as #rrggbb")
	cmd.Flags().StringVarP(&category, "category", "k", "", "New category (empty clears it)")
	return cmd
}

func newSubjectRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <subject>",
		Aliases: []string{"delete"},
		Short:   "Delete a subject with its tasks and sessions",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s, err := resolveSubject(svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteSubject(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s and its tasks and sessions\n", ui.IconTrash, ui.Key.Render(s.Name))
			return nil
		},
	}
}
