package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/cmsg/internal/log"
	"github.com/raphi011/cmsg/internal/output"
	"github.com/raphi011/cmsg/internal/policy"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [FILE]",
		Short: "Check a commit message file for prohibited words",
		Long: `Check a commit message file for prohibited words.

Reads the whole file as text and scans it against the built-in rules in
order. The first matching rule is reported and no further rules are
checked. Diagnostics go to stdout so the invoking hook runner shows them
next to the rejected commit.

Exit codes:
  0  Message passed validation
  1  Missing argument, unreadable file, or prohibited word found`,
		Example: `  cmsg check .git/COMMIT_EDITMSG   # Check a commit message file
  cmsg check "$1"                  # From a commit-msg hook`,
		// Surplus arguments are tolerated and ignored; only the first
		// is read. Hook runners may append extra arguments.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			l.Debugf("checking %d rule(s)\n", len(policy.Rules()))

			if code := runCheck(output.FromContext(ctx), args); code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	return cmd
}

// runCheck validates the commit message file named by args[0] and prints
// diagnostics. Returns the process exit code: 0 when the message passes,
// 1 for a missing argument, an unreadable file, or a prohibited word.
func runCheck(out *output.Printer, args []string) int {
	if len(args) < 1 {
		out.Println("ERROR: No commit message file provided")
		return 1
	}

	msg, err := os.ReadFile(args[0])
	if err != nil {
		out.Printf("ERROR: Could not read commit message file: %v\n", err)
		return 1
	}

	if rule, ok := policy.FirstMatch(string(msg)); ok {
		out.Printf("ERROR: Commit message contains prohibited word matching pattern '%s'\n", rule.Source)
		out.Println(policy.Remediation())
		return 1
	}

	return 0
}
