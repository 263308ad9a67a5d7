package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studytime/internal/engine"
	"studytime/internal/storage"
	"studytime/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Manage tasks",
	}
	cmd.AddCommand(newTaskAddCmd(), newTaskListCmd(), newTaskDoneCmd(), newTaskEditCmd(), newTaskRmCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var subject, due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to a subject",
		Args:  cobra.ExactArgs(1),
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
			t, err := svc.AddTask(ctx, engine.AddTaskInput{Title: args[0], SubjectID: s.ID, DueDate: due})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s due %s\n", ui.IconPlus, ui.Key.Render(t.Title), ui.Muted.Render("("+shortID(t.ID)+")"), t.DueDate)
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject name or id")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("due")
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, pending first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := svc.Tasks()
			if subject != "" {
				s, err := resolveSubject(svc, subject)
				if err != nil {
					return err
				}
				tasks = svc.TasksForSubject(s.ID)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDone, "Tasks"))
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks."))
				return nil
			}
			printTasks(cmd, svc, engine.SortTasks(tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only tasks of this subject")
	return cmd
}

func printTasks(cmd *cobra.Command, svc *engine.Service, tasks []storage.Task) {
	now := svc.Clock().Now()
	for _, t := range tasks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %-32s %-16s %s\n",
			ui.Muted.Render(shortID(t.ID)),
			t.DueDate,
			t.Title,
			svc.SubjectName(t.SubjectID),
			ui.TaskStatus(t.Completed, engine.IsOverdue(t, now)),
		)
	}
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done <task>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a task between pending and completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := resolveTask(svc, args[0])
			if err != nil {
				return err
			}
			updated, err := svc.ToggleTaskCompletion(ctx, t.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", ui.IconDone, ui.Key.Render(updated.Title), ui.TaskStatus(updated.Completed, false))
			return nil
		},
	}
}

func newTaskEditCmd() *cobra.Command {
	var title, subject, due string

	cmd := &cobra.Command{
		Use:   "edit <task>",
		Short: "Change a task's title, subject or due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := resolveTask(svc, args[0])
			if err != nil {
				return err
			}
			var in engine.UpdateTaskInput
			if cmd.Flags().Changed("title") {
				in.Title = &title
			}
			if cmd.Flags().Changed("subject") {
				s, err := resolveSubject(svc, subject)
				if err != nil {
					return err
				}
				in.SubjectID = &s.ID
			}
			if cmd.Flags().Changed("due") {
				in.DueDate = &due
			}
			updated, err := svc.UpdateTask(ctx, t.ID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s\n", ui.IconDone, ui.Key.Render(updated.Title))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "New subject name or id")
	cmd.Flags().StringVarP(&due, "due", "d", "", "New due date (YYYY-MM-DD)")
	return cmd
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := resolveTask(svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteTask(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s\n", ui.IconTrash, ui.Key.Render(t.Title))
			return nil
		},
	}
}
