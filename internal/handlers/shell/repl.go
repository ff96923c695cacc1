/*
Package shell hosts the interactive read-resolve-run loop and the built-in
commands it handles without spawning a process.
*/
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/dwimsh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
	"github.com/AntonioJCosta/dwimsh/internal/core/services/correction"
	"github.com/AntonioJCosta/dwimsh/internal/handlers/ui"
)

// historySaver is implemented by readers that keep their own recall buffer.
type historySaver interface {
	SaveHistory(line string) error
}

// Dependencies groups everything a Shell needs.
type Dependencies struct {
	Reader     ports.LineReader
	Out        io.Writer
	ErrOut     io.Writer
	Tokenizer  ports.Tokenizer
	Launcher   ports.CommandLauncher
	History    ports.HistoryLog
	Jobs       ports.JobTable
	Logger     *log.Logger
	PromptName string
}

// Shell is one interactive session.
type Shell struct {
	reader     ports.LineReader
	out        io.Writer
	errOut     io.Writer
	tokenizer  ports.Tokenizer
	launcher   ports.CommandLauncher
	history    ports.HistoryLog
	jobs       ports.JobTable
	logger     *log.Logger
	promptName string
	builtins   map[string]builtin
	getwd      func() (string, error)
	now        func() time.Time
}

// New creates a Shell.
// It panics if the reader, tokenizer, launcher, history or jobs are nil.
func New(deps Dependencies) *Shell {
	if deps.Reader == nil {
		panic("reader cannot be nil")
	}
	if deps.Tokenizer == nil {
		panic("tokenizer cannot be nil")
	}
	if deps.Launcher == nil {
		panic("launcher cannot be nil")
	}
	if deps.History == nil {
		panic("history cannot be nil")
	}
	if deps.Jobs == nil {
		panic("jobs cannot be nil")
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.ErrOut == nil {
		deps.ErrOut = deps.Out
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	return &Shell{
		reader:     deps.Reader,
		out:        deps.Out,
		errOut:     deps.ErrOut,
		tokenizer:  deps.Tokenizer,
		launcher:   deps.Launcher,
		history:    deps.History,
		jobs:       deps.Jobs,
		logger:     deps.Logger,
		promptName: deps.PromptName,
		builtins:   defaultBuiltins(),
		getwd:      os.Getwd,
		now:        time.Now,
	}
}

/*
Run reads and executes lines until exit, end of input or a read failure.

It returns nil for exit and end of input. Any other reader error is returned
unchanged so the caller can map it to an exit status.
*/
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.reportFinishedJobs()

		line, err := s.reader.ReadLine(s.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}

		if err := s.Execute(ctx, line); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
}

/*
Execute runs a single input line.

Problems with the line or the command are printed and swallowed; only ErrExit
is returned.
*/
func (s *Shell) Execute(ctx context.Context, line string) error {
	argv, err := s.tokenizer.Tokenize(line)
	if err != nil {
		s.printError(err)
		return nil
	}
	if argv.Empty() {
		return nil
	}

	s.remember(argv.Line)

	handled, err := s.Dispatch(ctx, argv)
	if handled {
		if err != nil && !errors.Is(err, ErrExit) {
			s.printError(err)
			return nil
		}
		return err
	}

	outcome, err := s.launcher.Launch(ctx, argv)
	if err != nil {
		s.reportLaunchError(argv, err)
		return nil
	}
	s.reportOutcome(argv, outcome)
	return nil
}

func (s *Shell) remember(line string) {
	if !s.history.Append(line) {
		return
	}
	if saver, ok := s.reader.(historySaver); ok {
		if err := saver.SaveHistory(line); err != nil {
			s.logger.Debug("could not save line to reader history", "err", err)
		}
	}
}

func (s *Shell) reportLaunchError(argv command.ArgVector, err error) {
	if errors.Is(err, correction.ErrCommandNotFound) || errors.Is(err, correction.ErrNoCorrectionAccepted) {
		fmt.Fprintln(s.errOut, ui.ErrorColor(fmt.Sprintf("Command not found: %s", argv.Name())))
		return
	}
	if errors.Is(err, oscommand.ErrExecFailure) {
		s.logger.Debug("exec failed", "command", argv.Name(), "err", err)
	}
	s.printError(err)
}

func (s *Shell) reportOutcome(argv command.ArgVector, outcome process.Outcome) {
	if argv.Background {
		fmt.Fprintf(s.out, "[%d] %s\n", outcome.JobID, ui.DetailColor(outcome.Pid))
		return
	}
	if outcome.Signaled {
		fmt.Fprintln(s.errOut, ui.ErrorColor(fmt.Sprintf("%s: %s", argv.Name(), outcome.String())))
	}
}

func (s *Shell) reportFinishedJobs() {
	for _, j := range s.jobs.Reap() {
		fmt.Fprintln(s.out, ui.JobNotice(j))
	}
}

func (s *Shell) prompt() string {
	cwd, err := s.getwd()
	if err != nil {
		cwd = "?"
	}
	return ui.Prompt(s.promptName, cwd)
}

func (s *Shell) printError(err error) {
	fmt.Fprintln(s.errOut, ui.ErrorColor(fmt.Sprintf("dwimsh: %v", err)))
}
