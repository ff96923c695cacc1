package main

import (
	"os"

	"github.com/AntonioJCosta/dwimsh/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, &app{stdout: os.Stdout, stderr: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
