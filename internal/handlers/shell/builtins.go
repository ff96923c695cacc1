package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dwimsh/internal/handlers/ui"
)

var (
	// ErrExit is returned by the exit built-in to stop the read loop.
	ErrExit = errors.New("exit requested")
	// ErrMissingArgument indicates a built-in was called without a required argument.
	ErrMissingArgument = errors.New("missing argument")
)

const tepisanDelay = 5 * time.Millisecond

// builtin runs one built-in command against the shell.
type builtin func(ctx context.Context, s *Shell, argv command.ArgVector) error

func defaultBuiltins() map[string]builtin {
	return map[string]builtin{
		"cd":      builtinCd,
		"exit":    builtinExit,
		"clear":   builtinClear,
		"echo":    builtinEcho,
		"history": builtinHistory,
		"tepisan": builtinTepisan,
		"jobs":    builtinJobs,
	}
}

// Dispatch runs argv if its first word names a built-in.
// handled is false when the word is not a built-in and argv was left untouched.
func (s *Shell) Dispatch(ctx context.Context, argv command.ArgVector) (handled bool, err error) {
	fn, ok := s.builtins[argv.Name()]
	if !ok {
		return false, nil
	}
	return true, fn(ctx, s, argv)
}

func builtinCd(_ context.Context, _ *Shell, argv command.ArgVector) error {
	if len(argv.Args) < 2 {
		return fmt.Errorf("cd: %w", ErrMissingArgument)
	}
	if err := os.Chdir(argv.Args[1]); err != nil {
		return fmt.Errorf("cd: %w", err)
	}
	return nil
}

func builtinExit(context.Context, *Shell, command.ArgVector) error {
	return ErrExit
}

func builtinClear(_ context.Context, s *Shell, _ command.ArgVector) error {
	ui.ClearScreen(s.out)
	return nil
}

// builtinEcho prints the raw text after the command word with double quotes removed.
func builtinEcho(_ context.Context, s *Shell, argv command.ArgVector) error {
	text := strings.TrimLeft(argv.Remainder(), " \t")
	if argv.Background {
		text, _, _ = strings.Cut(text, "&")
		text = strings.TrimRight(text, " \t")
	}
	fmt.Fprintln(s.out, strings.ReplaceAll(text, `"`, ""))
	return nil
}

func builtinHistory(_ context.Context, s *Shell, _ command.ArgVector) error {
	for _, entry := range s.history.List() {
		fmt.Fprintf(s.out, "%d: %s\n", entry.Number, entry.Line)
	}
	return nil
}

// builtinTepisan prints "tepisan<suffix>" count times, cycling through the palette.
func builtinTepisan(ctx context.Context, s *Shell, argv command.ArgVector) error {
	if len(argv.Args) < 3 {
		return fmt.Errorf("tepisan: usage: tepisan <suffix> <count>: %w", ErrMissingArgument)
	}
	count, err := strconv.Atoi(argv.Args[2])
	if err != nil || count < 0 {
		return fmt.Errorf("tepisan: invalid count %q: %w", argv.Args[2], ErrMissingArgument)
	}

	word := "tepisan" + argv.Args[1]
	for i := 0; i < count; i++ {
		paint := ui.CycleColors[i%len(ui.CycleColors)]
		fmt.Fprintln(s.out, paint(word))
		if i == count-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(tepisanDelay):
		}
	}
	return nil
}

func builtinJobs(_ context.Context, s *Shell, _ command.ArgVector) error {
	ui.RenderJobs(s.out, s.jobs.List(), s.now())
	return nil
}
