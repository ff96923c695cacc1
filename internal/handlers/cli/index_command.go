package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/dwimsh/internal/handlers/ui"
)

// NewIndexCommand creates the 'index' subcommand.
func NewIndexCommand(app App, opts *Options) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "index",
		Short: "List the commands dwimsh can run.",
		Long:  `Scans every directory on $PATH, plus configured extra directories, and lists the names found.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexCmd(cmd, app, *opts, prefix)
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "Only list names starting with this prefix.")

	return cmd
}

// runIndexCmd contains the core logic for the 'index' command.
func runIndexCmd(cmd *cobra.Command, app App, opts Options, prefix string) error {
	index, _, err := app.Catalog(opts)
	if err != nil {
		return fmt.Errorf("could not build command index: %w", err)
	}

	out := cmd.OutOrStdout()
	var names []string
	for _, name := range index.Names() {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No commands found."))
		return nil
	}
	sort.Strings(names)

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Indexed commands (%d of %d):", len(names), index.Len())))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Command"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})
	for _, name := range names {
		table.Append([]string{name})
	}
	table.Render()
	return nil
}
