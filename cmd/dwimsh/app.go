package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/dwimsh/internal/adapters/fuzzymatch"
	"github.com/AntonioJCosta/dwimsh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/dwimsh/internal/adapters/shellconfig"
	"github.com/AntonioJCosta/dwimsh/internal/adapters/terminal"
	"github.com/AntonioJCosta/dwimsh/internal/adapters/tokenizer"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/config"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/history"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
	"github.com/AntonioJCosta/dwimsh/internal/core/services/correction"
	"github.com/AntonioJCosta/dwimsh/internal/core/services/launcher"
	"github.com/AntonioJCosta/dwimsh/internal/handlers/cli"
	"github.com/AntonioJCosta/dwimsh/internal/handlers/shell"
	"github.com/AntonioJCosta/dwimsh/internal/handlers/ui"
	"github.com/AntonioJCosta/dwimsh/internal/repositories/commandindex"
	historylog "github.com/AntonioJCosta/dwimsh/internal/repositories/history"
	"github.com/AntonioJCosta/dwimsh/internal/repositories/jobs"
)

// app wires the adapters, services and handlers for the cli commands.
type app struct {
	stdout io.Writer
	stderr io.Writer
}

func (a *app) RunShell(ctx context.Context, opts cli.Options) error {
	logger := a.newLogger(opts)
	cfg, err := a.loadConfig(opts, logger)
	if err != nil {
		return err
	}
	if !cfg.Color {
		ui.DisableColor()
	}

	reader := terminal.Open(cfg.Readline || opts.Readline, logger)
	defer reader.Close()

	index := a.buildIndex(cfg, logger)
	resolver := correction.NewService(index, fuzzymatch.NewMatcher(index), ui.NewTerminalConfirmer(reader))
	jobTable := jobs.NewTable()
	cmdLauncher := launcher.NewService(resolver, oscommand.NewOSCommandExecutor(logger), jobTable, logger)

	sh := shell.New(shell.Dependencies{
		Reader:     reader,
		Out:        a.stdout,
		ErrOut:     a.stderr,
		Tokenizer:  tokenizer.NewLineTokenizer(),
		Launcher:   cmdLauncher,
		History:    historylog.NewRingLog(history.Capacity),
		Jobs:       jobTable,
		Logger:     logger,
		PromptName: cfg.Prompt,
	})

	if cfg.Banner && !opts.NoBanner {
		fmt.Fprintln(a.stdout, ui.Banner(Version))
	}
	return sh.Run(ctx)
}

func (a *app) Catalog(opts cli.Options) (ports.CommandIndex, ports.CommandMatcher, error) {
	logger := a.newLogger(opts)
	cfg, err := a.loadConfig(opts, logger)
	if err != nil {
		return nil, nil, err
	}
	index := a.buildIndex(cfg, logger)
	return index, fuzzymatch.NewMatcher(index), nil
}

func (a *app) newLogger(opts cli.Options) *log.Logger {
	logger := log.NewWithOptions(a.stderr, log.Options{Prefix: "dwimsh", Level: log.WarnLevel})
	if opts.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads the config file named by --config, or the default one.
// Without a usable home directory the defaults are used.
func (a *app) loadConfig(opts cli.Options, logger *log.Logger) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		defaultPath, err := shellconfig.DefaultPath()
		if err != nil {
			logger.Warn("using default settings", "err", err)
			return config.Default(), nil
		}
		path = defaultPath
	}

	provider, err := shellconfig.NewYAMLProvider(path)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := provider.Load()
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("configuration loaded", "path", path)
	return cfg, nil
}

func (a *app) buildIndex(cfg config.Config, logger *log.Logger) ports.CommandIndex {
	dirs := commandindex.SearchPath(os.Getenv("PATH"), cfg.ExtraDirs...)
	index := commandindex.Build(dirs, logger)
	logger.Debug("command index built", "dirs", len(dirs), "commands", index.Len())
	return index
}
