package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/dwimsh/internal/handlers/ui"
)

// NewSuggestCommand creates the 'suggest' subcommand.
func NewSuggestCommand(app App, opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <word>",
		Short: "Show the corrections dwimsh would offer for a word.",
		Long: `Looks word up in the command index and prints every indexed name within one
edit of it, in the order the shell would ask about them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggestCmd(cmd, args, app, *opts)
		},
	}
	return cmd
}

func runSuggestCmd(cmd *cobra.Command, args []string, app App, opts Options) error {
	_, matcher, err := app.Catalog(opts)
	if err != nil {
		return fmt.Errorf("could not build command index: %w", err)
	}

	out := cmd.OutOrStdout()
	word := args[0]
	matches := matcher.FindMatches(word)

	if matches.Exact {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%s is an indexed command.", word)))
		return nil
	}
	if matches.Empty() {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No corrections found for %s.", word)))
		return nil
	}

	fmt.Fprintln(out, ui.InfoColor("Suggested corrections:"))
	for i, candidate := range matches.Candidates {
		fmt.Fprintf(out, "  %s %s\n", ui.DetailColor(fmt.Sprintf("%d.", i+1)), candidate)
	}
	return nil
}
