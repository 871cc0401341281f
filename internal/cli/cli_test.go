package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timetracker/internal/cli"
	"timetracker/internal/journal"
)

const testPass = "correct horse"

// newJournal writes a config that keeps the journal in its own temp dir.
func newJournal(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := fmt.Sprintf(`storage:
  driver: file
  path: %q
clock:
  timezone: UTC
logger:
  color_enabled: false
`, filepath.Join(dir, "data"))
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, cfgPath, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, cfgPath, stdin string, args ...string) string {
	t.Helper()
	out, err := execute(t, cfgPath, stdin, args...)
	if err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out)
	}
	return out
}

func TestInit(t *testing.T) {
	cfg := newJournal(t)

	if _, err := execute(t, cfg, "", "add", "early"); err == nil {
		t.Fatal("add before init: expected error")
	}
	if _, err := execute(t, cfg, "", "-p", "short", "init", "--confirm", "short"); !errors.Is(err, journal.ErrPassphraseTooShort) {
		t.Fatalf("short: got %v", err)
	}
	if _, err := execute(t, cfg, "different\n", "-p", testPass, "init"); !errors.Is(err, journal.ErrPassphraseMismatch) {
		t.Fatalf("mismatch: got %v", err)
	}

	out := mustExecute(t, cfg, testPass+"\n", "-p", testPass, "init")
	if !strings.Contains(out, "Journal ready") {
		t.Errorf("init output = %q", out)
	}
	if _, err := execute(t, cfg, "", "-p", testPass, "init", "--confirm", testPass); !errors.Is(err, journal.ErrInitialised) {
		t.Fatalf("second init: got %v", err)
	}
}

func TestTaskCommands(t *testing.T) {
	cfg := newJournal(t)
	mustExecute(t, cfg, "", "-p", testPass, "init", "--confirm", testPass)

	out := mustExecute(t, cfg, "", "-p", testPass, "add", "Write report", "--estimate", "30")
	var id int64
	if _, err := fmt.Sscanf(out, "Added %d:", &id); err != nil {
		t.Fatalf("parse id from %q: %v", out, err)
	}
	ref := fmt.Sprint(id)

	mustExecute(t, cfg, "", "-p", testPass, "log", ref, "45m")
	mustExecute(t, cfg, "", "-p", testPass, "complete", ref)

	out = mustExecute(t, cfg, "", "-p", testPass, "list", "--all")
	if !strings.Contains(out, "Write report") || !strings.Contains(out, "[x]") || !strings.Contains(out, "45m") {
		t.Errorf("list output = %q", out)
	}

	out = mustExecute(t, cfg, "", "-p", testPass, "summary")
	if !strings.Contains(out, "Completed: 1/1") || !strings.Contains(out, "Tracked: 45m") {
		t.Errorf("summary output = %q", out)
	}

	if _, err := execute(t, cfg, "", "-p", testPass, "log", ref, "soon"); !errors.Is(err, journal.ErrValidation) {
		t.Errorf("bad duration: got %v", err)
	}
	if _, err := execute(t, cfg, "", "-p", testPass, "complete", "0"); !errors.Is(err, journal.ErrValidation) {
		t.Errorf("bad id: got %v", err)
	}

	mustExecute(t, cfg, "", "-p", testPass, "delete", ref)
	if _, err := execute(t, cfg, "", "-p", testPass, "delete", ref); !errors.Is(err, journal.ErrTaskNotFound) {
		t.Errorf("second delete: got %v", err)
	}
}

func TestWrongPassphraseKeepsJournal(t *testing.T) {
	cfg := newJournal(t)
	mustExecute(t, cfg, "", "-p", testPass, "init", "--confirm", testPass)
	mustExecute(t, cfg, "", "-p", testPass, "add", "keep me")

	if _, err := execute(t, cfg, "", "-p", "wrong passphrase", "add", "clobber"); !errors.Is(err, journal.ErrUnreadable) {
		t.Fatalf("wrong passphrase: got %v", err)
	}

	out := mustExecute(t, cfg, "", "-p", testPass, "list", "--all")
	if !strings.Contains(out, "keep me") || strings.Contains(out, "clobber") {
		t.Errorf("journal changed by wrong passphrase: %q", out)
	}
}

func TestReview(t *testing.T) {
	cfg := newJournal(t)
	mustExecute(t, cfg, "", "-p", testPass, "init", "--confirm", testPass)
	mustExecute(t, cfg, "", "-p", testPass, "add", "Unfinished", "--estimate", "60")

	out := mustExecute(t, cfg, "", "-p", testPass, "review", "--draft")
	if !strings.Contains(out, "• Unfinished (progress: 0m worked)") {
		t.Errorf("draft output = %q", out)
	}

	out = mustExecute(t, cfg, "1\n", "-p", testPass, "review", "--insights", "ran out of time")
	if !strings.Contains(out, "0/1 tasks completed") || !strings.Contains(out, "Added 1 tasks.") {
		t.Errorf("review output = %q", out)
	}

	out = mustExecute(t, cfg, "", "-p", testPass, "list")
	if !strings.Contains(out, "*") {
		t.Errorf("accepted suggestion not marked: %q", out)
	}

	if _, err := execute(t, cfg, "", "-p", testPass, "review", "--accept", "99"); err == nil {
		t.Error("expected error for out-of-range selection")
	}
}

func TestTransfer(t *testing.T) {
	src := newJournal(t)
	mustExecute(t, src, "", "-p", testPass, "init", "--confirm", testPass)
	mustExecute(t, src, "", "-p", testPass, "add", "from source")
	blob := mustExecute(t, src, "", "-p", testPass, "export")

	dst := newJournal(t)
	other := "another passphrase"
	mustExecute(t, dst, "", "-p", other, "init", "--confirm", other)

	if _, err := execute(t, dst, blob, "-p", other, "import"); !errors.Is(err, journal.ErrDecrypt) {
		t.Fatalf("import with own passphrase: got %v", err)
	}
	out := mustExecute(t, dst, blob, "-p", other, "import", "--from-passphrase", testPass)
	if !strings.Contains(out, "Imported 1 tasks") {
		t.Errorf("import output = %q", out)
	}

	file := filepath.Join(t.TempDir(), "blob.txt")
	if err := os.WriteFile(file, []byte(blob), 0o600); err != nil {
		t.Fatal(err)
	}
	// Non-empty now: the mode is asked for.
	if _, err := execute(t, dst, "c\n", "-p", other, "import", file, "--from-passphrase", testPass); err == nil || !strings.Contains(err.Error(), "cancelled") {
		t.Errorf("cancel: got %v", err)
	}
	mustExecute(t, dst, "m\n", "-p", other, "import", file, "--from-passphrase", testPass)

	out = mustExecute(t, dst, "", "-p", other, "summary")
	if !strings.Contains(out, "Completed: 0/2") {
		t.Errorf("after merge: %q", out)
	}

	if _, err := execute(t, dst, blob, "-p", other, "import", "--merge", "--replace"); err == nil {
		t.Error("expected error for both modes")
	}
}

func TestBackupRestore(t *testing.T) {
	cfg := newJournal(t)
	mustExecute(t, cfg, "", "-p", testPass, "init", "--confirm", testPass)
	mustExecute(t, cfg, "", "-p", testPass, "add", "backed up")

	dir := t.TempDir()
	mustExecute(t, cfg, "", "-p", testPass, "backup", "--dir", dir)
	files, err := filepath.Glob(filepath.Join(dir, "timetracker-backup-*.json"))
	if err != nil || len(files) != 1 {
		t.Fatalf("backup files = %v, %v", files, err)
	}

	out := mustExecute(t, cfg, "", "-p", testPass, "restore", files[0], "--replace")
	if !strings.Contains(out, "Restored 1 tasks") {
		t.Errorf("restore output = %q", out)
	}
	out = mustExecute(t, cfg, "", "-p", testPass, "summary")
	if !strings.Contains(out, "Completed: 0/1") {
		t.Errorf("after replace: %q", out)
	}
}

func TestConfigShow(t *testing.T) {
	cfg := newJournal(t)
	out := mustExecute(t, cfg, "", "config", "show")
	for _, want := range []string{"driver: file", "timezone: UTC", "unlock_rate_per_min: 10"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestReset(t *testing.T) {
	cfg := newJournal(t)
	mustExecute(t, cfg, "", "-p", testPass, "init", "--confirm", testPass)
	mustExecute(t, cfg, "", "-p", testPass, "add", "forgotten")

	if _, err := execute(t, cfg, "no\n", "reset"); err == nil {
		t.Fatal("expected reset to be cancelled")
	}
	mustExecute(t, cfg, "", "-p", testPass, "unlock-check")

	mustExecute(t, cfg, "yes\n", "reset")
	if _, err := execute(t, cfg, "", "-p", testPass, "list"); err == nil {
		t.Fatal("expected error after reset")
	}

	const fresh = "new passphrase"
	mustExecute(t, cfg, "", "-p", fresh, "init", "--confirm", fresh)
	out := mustExecute(t, cfg, "", "-p", fresh, "summary")
	if !strings.Contains(out, "Completed: 0/0") {
		t.Errorf("old tasks survived reset: %q", out)
	}
}
