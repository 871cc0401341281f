// Package cli is the timetracker command line. Every command opens the
// journal, runs one use-case operation and closes it again.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"timetracker/config"
	"timetracker/internal/journal"
	"timetracker/internal/journal/repository"
	"timetracker/internal/journal/usecase"
	"timetracker/internal/storage"
	"timetracker/pkg/datemath"
	"timetracker/pkg/log"
)

// EnvPassphrase is read when --passphrase is not given.
const EnvPassphrase = "TIMETRACKER_PASSPHRASE"

type app struct {
	in *bufio.Reader

	cfgFile    string
	passphrase string
	verbose    bool

	cfg    *config.Config
	logger log.Logger
	clock  *datemath.Clock
	repo   repository.BlobRepository
	uc     journal.UseCase
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "timetracker",
		Short:         "Encrypted task and time journal",
		Long:          "timetracker keeps an encrypted local journal of tasks, timer sessions and daily reviews,\nand suggests tomorrow's tasks from today's review.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./config/config.yaml)")
	root.PersistentFlags().StringVarP(&a.passphrase, "passphrase", "p", "", "journal passphrase (default: $"+EnvPassphrase+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at info level")

	root.AddCommand(
		a.initCmd(),
		a.unlockCheckCmd(),
		a.resetCmd(),
		a.addCmd(),
		a.listCmd(),
		a.completeCmd(),
		a.deleteCmd(),
		a.logCmd(),
		a.summaryCmd(),
		a.reviewCmd(),
		a.exportCmd(),
		a.importCmd(),
		a.backupCmd(),
		a.restoreCmd(),
		a.serveCmd(),
		a.configCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute(version string) error {
	root := NewRootCmd(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadConfig reads config and builds the logger. CLI commands log at warn
// unless --verbose is set.
func (a *app) loadConfig() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Logger.Level
	if !a.verbose {
		level = "warn"
	}
	a.logger = log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	clock, err := datemath.NewClock(cfg.Clock.Timezone)
	if err != nil {
		return err
	}
	a.clock = clock
	return nil
}

// open loads config and storage and builds the use case, still locked.
func (a *app) open() error {
	if a.uc != nil {
		return nil
	}
	if err := a.loadConfig(); err != nil {
		return err
	}
	repo, err := storage.Open(a.cfg.Storage, a.logger)
	if err != nil {
		return err
	}
	a.repo = repo
	a.uc = usecase.New(a.logger, repo, a.clock)
	return nil
}

// unlock opens the journal and refuses to continue when the passphrase
// cannot read it.
func (a *app) unlock(ctx context.Context) error {
	return a.unlockFor(ctx, false)
}

// unlockFor is unlock; allowUnreadable lets replace-mode imports through,
// since they are the one write an unreadable journal accepts.
func (a *app) unlockFor(ctx context.Context, allowUnreadable bool) error {
	if err := a.open(); err != nil {
		return err
	}
	st, err := a.uc.Status(ctx)
	if err != nil {
		return err
	}
	if !st.Initialised {
		return errors.New("no journal yet: run `timetracker init` first")
	}
	out, err := a.uc.Unlock(ctx, a.resolvePassphrase())
	if err != nil {
		return err
	}
	if out.Load == journal.LoadFailed && !allowUnreadable {
		_ = a.uc.Lock(ctx)
		return fmt.Errorf("%w (run `timetracker reset` if the passphrase is lost)", journal.ErrUnreadable)
	}
	return nil
}

func (a *app) resolvePassphrase() string {
	if a.passphrase != "" {
		return a.passphrase
	}
	return os.Getenv(EnvPassphrase)
}

// run wraps a command body so the journal is closed however it returns.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.close()
		return fn(cmd, args)
	}
}

func (a *app) close() error {
	if a.repo == nil {
		return nil
	}
	err := a.repo.Close()
	a.repo, a.uc = nil, nil
	return err
}

func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
