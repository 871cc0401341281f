package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"timetracker/internal/journal"
)

var errCancelled = errors.New("cancelled")

// prompt writes question and reads one trimmed line from the command's input.
func (a *app) prompt(cmd *cobra.Command, question string) (string, error) {
	if a.in == nil {
		a.in = bufio.NewReader(cmd.InOrStdin())
	}
	fmt.Fprint(out(cmd), question)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// askMode is the confirmation shown when importing into a non-empty journal.
func (a *app) askMode(cmd *cobra.Command) (journal.Mode, error) {
	answer, err := a.prompt(cmd, "The journal already has data. [m]erge, [r]eplace or [c]ancel? ")
	if err != nil {
		return journal.ModeUnset, err
	}
	switch strings.ToLower(answer) {
	case "m", "merge":
		return journal.ModeMerge, nil
	case "r", "replace":
		return journal.ModeReplace, nil
	}
	return journal.ModeUnset, errCancelled
}

// modeFromFlags reads --merge/--replace.
func modeFromFlags(cmd *cobra.Command) (journal.Mode, error) {
	merge, _ := cmd.Flags().GetBool("merge")
	replace, _ := cmd.Flags().GetBool("replace")
	switch {
	case merge && replace:
		return journal.ModeUnset, errors.New("--merge and --replace are mutually exclusive")
	case merge:
		return journal.ModeMerge, nil
	case replace:
		return journal.ModeReplace, nil
	}
	return journal.ModeUnset, nil
}

func addModeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("merge", false, "append incoming tasks and reviews to the journal")
	cmd.Flags().Bool("replace", false, "discard the journal and keep only the incoming data")
}

// parseSelection parses "1,3" or "all" into zero-based indexes below n.
func parseSelection(s string, n int) ([]int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return nil, nil
	}
	if s == "all" {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}

	var idx []int
	seen := map[int]bool{}
	for _, part := range strings.Split(s, ",") {
		k, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || k < 1 || k > n {
			return nil, fmt.Errorf("invalid selection %q: use numbers 1-%d", part, n)
		}
		if !seen[k] {
			seen[k] = true
			idx = append(idx, k-1)
		}
	}
	return idx, nil
}
