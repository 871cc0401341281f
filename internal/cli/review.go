package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timetracker/internal/journal"
	"timetracker/internal/model"
)

func (a *app) reviewCmd() *cobra.Command {
	var (
		in     journal.RecordReviewInput
		draft  bool
		accept string
	)
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Record today's review and pick tomorrow's tasks",
		Long: "Records today's review, prints up to five suggestions and turns the accepted ones into tasks.\n" +
			"--draft only prints the pre-filled text. --accept takes \"1,3\", \"all\" or \"none\"; without it you are asked.",
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.unlock(ctx); err != nil {
				return err
			}

			d, err := a.uc.DraftReview(ctx)
			if err != nil {
				return err
			}
			if draft {
				fmt.Fprintf(out(cmd), "Accomplishments:\n%s\n\nIncomplete:\n%s\n", d.Accomplishments, d.Incomplete)
				return nil
			}
			if !cmd.Flags().Changed("accomplishments") {
				in.Accomplishments = d.Accomplishments
			}
			if !cmd.Flags().Changed("incomplete") {
				in.Incomplete = d.Incomplete
			}

			res, err := a.uc.RecordReview(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Review saved for %s: %d/%d tasks completed.\n",
				res.Review.Date, res.Review.TasksCompleted, res.Review.TasksTotal)
			printSuggestions(cmd, res.Suggestions)

			if !cmd.Flags().Changed("accept") {
				if accept, err = a.prompt(cmd, "Accept which suggestions (e.g. 1,3, all, or blank for none)? "); err != nil {
					return err
				}
			}
			idx, err := parseSelection(accept, len(res.Suggestions))
			if err != nil {
				return err
			}
			if len(idx) == 0 {
				return nil
			}

			selected := make([]model.Suggestion, len(idx))
			for i, k := range idx {
				selected[i] = res.Suggestions[k]
			}
			acc, err := a.uc.AcceptSuggestions(ctx, journal.AcceptSuggestionsInput{Suggestions: selected})
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Added %d tasks.\n", len(acc.Tasks))
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.Accomplishments, "accomplishments", "", "what went well (default: drafted from completed tasks)")
	cmd.Flags().StringVar(&in.Incomplete, "incomplete", "", "what is left (default: drafted from open tasks)")
	cmd.Flags().StringVar(&in.Insights, "insights", "", "reflection; drives the time, focus and planning suggestions")
	cmd.Flags().BoolVar(&draft, "draft", false, "print the drafted review and exit")
	cmd.Flags().StringVar(&accept, "accept", "", "suggestions to accept")
	return cmd
}

func printSuggestions(cmd *cobra.Command, sugs []model.Suggestion) {
	fmt.Fprintln(out(cmd), "Suggestions for tomorrow:")
	for i, s := range sugs {
		fmt.Fprintf(out(cmd), "  %d. [%s] %s (%dm) - %s\n", i+1, s.Priority, s.Task, s.EstimatedMinutes, s.Reason)
	}
}
