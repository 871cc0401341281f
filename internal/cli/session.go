package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"timetracker/internal/journal"
)

func (a *app) initCmd() *cobra.Command {
	var confirm string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up the journal passphrase",
		Long:  "Sets the passphrase that encrypts the journal. It must be at least 8 characters.\nWithout --confirm the passphrase is asked for again on stdin.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(); err != nil {
				return err
			}
			pass := a.resolvePassphrase()
			if pass == "" {
				return journal.ErrEmptyPassphrase
			}
			if confirm == "" {
				var err error
				if confirm, err = a.prompt(cmd, "Confirm passphrase: "); err != nil {
					return err
				}
			}

			res, err := a.uc.Setup(ctx, journal.SetupInput{Passphrase: pass, Confirm: confirm})
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Journal ready (%s).\n", res.Load)
			return nil
		}),
	}
	cmd.Flags().StringVar(&confirm, "confirm", "", "passphrase confirmation")
	return cmd
}

func (a *app) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the journal so a new passphrase can be set up",
		Long:  "Deletes the stored journal and its passphrase set-up. This cannot be undone.\nWithout --yes you are asked to confirm.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.open(); err != nil {
				return err
			}
			if !yes {
				answer, err := a.prompt(cmd, "Delete the journal and all its tasks? Type \"yes\" to confirm: ")
				if err != nil {
					return err
				}
				if answer != "yes" {
					return errCancelled
				}
			}
			if err := a.uc.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), "Journal deleted. Run `timetracker init` to start again.")
			return nil
		}),
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation")
	return cmd
}

func (a *app) unlockCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock-check",
		Short: "Check that the passphrase opens the journal",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.unlock(ctx); err != nil {
				return err
			}
			st, err := a.uc.Status(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "OK: %d tasks, %d reviews\n", st.TaskCount, st.ReviewCount)
			return nil
		}),
	}
}
