package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/cmsg/internal/output"
)

// runCheckCapture runs runCheck against a buffer and returns the exit code
// and everything printed to stdout.
func runCheckCapture(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var buf bytes.Buffer
	code := runCheck(output.New(&buf), args)
	return code, buf.String()
}

// writeMessage writes a commit message file in a temp dir and returns its path.
func writeMessage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write message file: %v", err)
	}
	return path
}

func TestCheckNoArgs(t *testing.T) {
	t.Parallel()

	code, out := runCheckCapture(t)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if out != "ERROR: No commit message file provided\n" {
		t.Errorf("output = %q, want missing-file error", out)
	}
}

func TestCheckCleanMessage(t *testing.T) {
	t.Parallel()

	path := writeMessage(t, "Fix flaky retry test\n\nUse a fake clock instead of sleeping.\n")
	code, out := runCheckCapture(t, path)

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestCheckProhibitedWord(t *testing.T) {
	t.Parallel()

	path := writeMessage(t, "Add Claude integration\n")
	code, out := runCheckCapture(t, path)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	want := "ERROR: Commit message contains prohibited word matching pattern '\\bclaude\\b'\n" +
		"Please remove references to 'anthropic' or 'claude' from your commit message.\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestCheckCaseInsensitive(t *testing.T) {
	t.Parallel()

	path := writeMessage(t, "sync ANTHROPIC api\n")
	code, out := runCheckCapture(t, path)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out, "'\\banthropic\\b'") {
		t.Errorf("output = %q, want anthropic pattern reported", out)
	}
}

func TestCheckSubstringDoesNotMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  string
	}{
		{name: "anthropics", msg: "Fix anthropics dataset parsing\n"},
		{name: "claudette", msg: "Rename claudette helper\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeMessage(t, tt.msg)
			code, out := runCheckCapture(t, path)

			if code != 0 {
				t.Errorf("exit code = %d, want 0", code)
			}
			if out != "" {
				t.Errorf("output = %q, want empty", out)
			}
		})
	}
}

func TestCheckUnreadableFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "does-not-exist")
	code, out := runCheckCapture(t, path)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	const prefix = "ERROR: Could not read commit message file: "
	if !strings.HasPrefix(out, prefix) {
		t.Fatalf("output = %q, want prefix %q", out, prefix)
	}
	if desc := strings.TrimSuffix(strings.TrimPrefix(out, prefix), "\n"); desc == "" {
		t.Error("expected a non-empty error description")
	}
}

func TestCheckFirstMatchWins(t *testing.T) {
	t.Parallel()

	// claude appears first in the text, but anthropic is first in the
	// rule list and must be the one reported.
	path := writeMessage(t, "claude and anthropic\n")
	code, out := runCheckCapture(t, path)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out, "'\\banthropic\\b'") {
		t.Errorf("output = %q, want anthropic pattern reported", out)
	}
	if strings.Contains(out, "'\\bclaude\\b'") {
		t.Errorf("output = %q, only the first matching rule should be reported", out)
	}
}

func TestCheckExtraArgsIgnored(t *testing.T) {
	t.Parallel()

	clean := writeMessage(t, "Fix typo in usage text\n")
	dirty := writeMessage(t, "Reviewed by claude\n")

	// Only the first argument names the message file; extras are ignored.
	code, out := runCheckCapture(t, clean, dirty)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}

	// The command accepts surplus positional args instead of rejecting them.
	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)

	cmd := newCheckCmd()
	cmd.SetArgs([]string{clean, dirty, "extra"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("expected surplus args to be accepted, got %v", err)
	}
	if buf.String() != "" {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestCheckIdempotent(t *testing.T) {
	t.Parallel()

	path := writeMessage(t, "Discuss with claude\n")

	code1, out1 := runCheckCapture(t, path)
	code2, out2 := runCheckCapture(t, path)

	if code1 != code2 {
		t.Errorf("exit codes differ: %d vs %d", code1, code2)
	}
	if out1 != out2 {
		t.Errorf("outputs differ: %q vs %q", out1, out2)
	}
}

func TestCheckCmdReturnsExitError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)

	cmd := newCheckCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.ExecuteContext(ctx)

	var exit *exitError
	if !errors.As(err, &exit) {
		t.Fatalf("expected *exitError, got %v", err)
	}
	if exit.code != 1 {
		t.Errorf("exit code = %d, want 1", exit.code)
	}
	if buf.String() != "ERROR: No commit message file provided\n" {
		t.Errorf("output = %q, want missing-file error", buf.String())
	}
}
