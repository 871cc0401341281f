package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"timetracker/internal/journal"
	"timetracker/internal/model"
)

func (a *app) addCmd() *cobra.Command {
	var estimate int
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.unlock(ctx); err != nil {
				return err
			}
			t, err := a.uc.AddTask(ctx, journal.AddTaskInput{Name: args[0], EstimatedMinutes: estimate})
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Added %d: %s (%dm)\n", t.ID, t.Name, t.EstimatedMinutes)
			return nil
		}),
	}
	cmd.Flags().IntVarP(&estimate, "estimate", "e", 0, "estimated minutes")
	return cmd
}

func (a *app) listCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "Lists tasks. --day accepts today, yesterday, \"N days ago\", \"N weeks ago\" or YYYY-MM-DD; --all lists every day.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.unlock(ctx); err != nil {
				return err
			}
			if all, _ := cmd.Flags().GetBool("all"); all {
				day = ""
			}
			res, err := a.uc.ListTasks(ctx, journal.ListTasksInput{Day: day})
			if err != nil {
				return err
			}
			printTasks(cmd, res.Tasks)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&day, "day", "d", "today", "day to list")
	cmd.Flags().Bool("all", false, "list tasks of every day")
	return cmd
}

func printTasks(cmd *cobra.Command, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(out(cmd), "No tasks.")
		return
	}
	w := tabwriter.NewWriter(out(cmd), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tESTIMATE\tACTUAL\tNAME")
	for _, t := range tasks {
		done := " "
		if t.Completed {
			done = "x"
		}
		name := t.Name
		if t.SuggestedBy == model.SuggestedByAI {
			name += " *"
		}
		fmt.Fprintf(w, "%d\t[%s]\t%dm\t%dm\t%s\n", t.ID, done, t.EstimatedMinutes, t.ActualMinutes(), name)
	}
	w.Flush()
}

func (a *app) completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.unlock(ctx); err != nil {
				return err
			}
			t, err := a.uc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Completed %d: %s\n", t.ID, t.Name)
			return nil
		}),
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.unlock(ctx); err != nil {
				return err
			}
			if err := a.uc.DeleteTask(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Deleted %d\n", id)
			return nil
		}),
	}
}

func (a *app) logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log ID DURATION",
		Short: "Add a finished timer session to a task",
		Long:  "Adds worked time to a task. DURATION is a Go duration such as 25m, 1h30m or 90s.",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := time.ParseDuration(args[1])
			if err != nil {
				return fmt.Errorf("%w: %v", journal.ErrValidation, err)
			}
			if err := a.unlock(ctx); err != nil {
				return err
			}
			t, err := a.uc.FoldElapsedSeconds(ctx, journal.FoldElapsedInput{TaskID: id, Seconds: int(d / time.Second)})
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "%s: %dm worked of %dm\n", t.Name, t.ActualMinutes(), t.EstimatedMinutes)
			return nil
		}),
	}
}

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show completed count and total tracked time",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.unlock(ctx); err != nil {
				return err
			}
			sum, err := a.uc.Summary(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Completed: %d/%d\nTracked: %dm\n", sum.CompletedCount, sum.TaskCount, sum.TotalMinutes)
			return nil
		}),
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: task id must be a positive integer", journal.ErrValidation)
	}
	return id, nil
}
