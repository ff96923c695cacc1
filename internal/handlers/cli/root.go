package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/dwimsh/internal/adapters/terminal"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

const (
	exitStartupFailure = 1
	exitInputFailure   = 255
)

// Options carries the global flags to the application.
type Options struct {
	ConfigPath string
	Debug      bool
	NoBanner   bool
	Readline   bool
}

// App builds and runs the pieces behind each command once flags are parsed.
type App interface {
	// RunShell starts the interactive session and blocks until it ends.
	RunShell(ctx context.Context, opts Options) error
	// Catalog builds the command index and a matcher over it.
	Catalog(opts Options) (ports.CommandIndex, ports.CommandMatcher, error)
}

func NewRootCommand(version string, app App) *cobra.Command {
	var opts Options

	rootCmd := &cobra.Command{
		Use:   "dwimsh",
		Short: "dwimsh is an interactive shell that corrects mistyped commands.",
		Long: `dwimsh reads command lines, runs built-ins itself and everything else as a
child process. A command that is not on your PATH is matched against the ones
that are, and dwimsh offers the closest spellings before giving up.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := captureInterrupts()
			defer stop()
			return app.RunShell(cmd.Context(), opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default $HOME/.dwimsh.yaml).")
	flags.BoolVar(&opts.Debug, "debug", false, "Log debug details to stderr.")
	rootCmd.Flags().BoolVar(&opts.NoBanner, "no-banner", false, "Do not print the welcome banner.")
	rootCmd.Flags().BoolVar(&opts.Readline, "readline", false, "Enable line editing when stdin is a terminal.")

	rootCmd.AddCommand(NewIndexCommand(app, &opts))
	rootCmd.AddCommand(NewSuggestCommand(app, &opts))

	return rootCmd
}

// ExitCode maps the error returned by the root command to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, terminal.ErrInputRead) {
		return exitInputFailure
	}
	return exitStartupFailure
}

/*
captureInterrupts keeps Ctrl-C from terminating the shell.

The signal is received rather than ignored so that children, which share the
terminal's process group, still get the default disposition and die.
*/
func captureInterrupts() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
