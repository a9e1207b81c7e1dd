package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/raphi011/cmsg/internal/config"
	"github.com/raphi011/cmsg/internal/output"
	"github.com/raphi011/cmsg/internal/policy"
	"github.com/raphi011/cmsg/internal/ui/styles"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the prohibited word rules",
		Long: `List the built-in prohibited word rules in evaluation order.

'cmsg check' tests rules in this order and reports the first match.
The rule list is fixed; it cannot be extended via configuration.`,
		Example: `  cmsg rules          # Show rules
  cmsg rules --json   # Output as JSON for scripting`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			rules := policy.Rules()

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(rules)
			}

			var accent, muted lipgloss.Style
			colored := useColor(cfg.Color, out.Writer())
			if colored {
				r := lipgloss.NewRenderer(out.Writer())
				if cfg.Color == config.ColorAlways {
					// The renderer downgrades non-terminal writers to
					// plain text; "always" must style even in pipes.
					r.SetColorProfile(termenv.ANSI256)
				}
				accent = styles.AccentStyle(r)
				muted = styles.MutedStyle(r)
			}

			for i, rule := range rules {
				pattern := rule.Source
				note := "(case-insensitive, whole word)"
				if colored {
					pattern = accent.Render(pattern)
					note = muted.Render(note)
				}
				out.Printf("%d. %s %s\n", i+1, pattern, note)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// useColor reports whether listing output should be styled, honoring the
// configured color mode. In auto mode only real terminals get color.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
