package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"timetracker/internal/journal"
)

func (a *app) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the journal as an encrypted blob",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.unlock(ctx); err != nil {
				return err
			}
			blob, err := a.uc.ExportBlob(ctx)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				fmt.Fprintln(out(cmd), blob)
				return nil
			}
			return os.WriteFile(output, []byte(blob+"\n"), 0o600)
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "import [FILE|-]",
		Short: "Import an exported blob",
		Long:  "Imports a blob from FILE or stdin. --from-passphrase opens blobs sealed with another passphrase.",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mode, err := modeFromFlags(cmd)
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if err := a.unlockFor(ctx, mode == journal.ModeReplace); err != nil {
				return err
			}

			res, err := a.reconcileWithPrompt(cmd, mode, func(m journal.Mode) (journal.ImportOutput, error) {
				return a.uc.ImportBlob(ctx, journal.ImportInput{Blob: strings.TrimSpace(string(raw)), Passphrase: from, Mode: m})
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Imported %d tasks and %d reviews.\n", res.TaskCount, res.ReviewCount)
			return nil
		}),
	}
	cmd.Flags().StringVar(&from, "from-passphrase", "", "passphrase the blob was sealed with (default: the journal's)")
	addModeFlags(cmd)
	return cmd
}

func (a *app) backupCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a backup file",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.unlock(ctx); err != nil {
				return err
			}
			b, err := a.uc.CreateBackup(ctx)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, b.FileName)
			if err := os.WriteFile(path, b.Content, 0o600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Fprintf(out(cmd), "Backup written to %s\n", path)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory for the backup file")
	return cmd
}

func (a *app) restoreCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "restore FILE",
		Short: "Restore a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mode, err := modeFromFlags(cmd)
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if err := a.unlockFor(ctx, mode == journal.ModeReplace); err != nil {
				return err
			}

			res, err := a.reconcileWithPrompt(cmd, mode, func(m journal.Mode) (journal.ImportOutput, error) {
				return a.uc.RestoreBackup(ctx, journal.RestoreInput{Backup: raw, Passphrase: from, Mode: m})
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Restored %d tasks and %d reviews.\n", res.TaskCount, res.ReviewCount)
			return nil
		}),
	}
	cmd.Flags().StringVar(&from, "from-passphrase", "", "passphrase the backup was sealed with (default: the journal's)")
	addModeFlags(cmd)
	return cmd
}

// reconcileWithPrompt runs fn and, if the journal is not empty and no mode
// was given, asks for one and runs fn again.
func (a *app) reconcileWithPrompt(cmd *cobra.Command, mode journal.Mode, fn func(journal.Mode) (journal.ImportOutput, error)) (journal.ImportOutput, error) {
	res, err := fn(mode)
	if !errors.Is(err, journal.ErrModeRequired) {
		return res, err
	}
	mode, err = a.askMode(cmd)
	if err != nil {
		return journal.ImportOutput{}, err
	}
	return fn(mode)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
