// Package main is the entry point for the docwin CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/docwin/internal/app"
	"github.com/runoshun/docwin/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

// profileEnv overrides the default profile directory.
const profileEnv = "DOCWIN_PROFILE"

// newRootCommand is a function variable so tests can replace the root command.
var newRootCommand func(*app.Container, string) *cobra.Command = cli.NewRootCommand

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	profileDir := profileFromArgs(args)
	if profileDir == "" {
		profileDir = os.Getenv(profileEnv)
	}

	// Help and version must work even when the profile cannot be opened
	if canRunWithoutContainer(args) {
		rootCmd := newRootCommand(nil, version)
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	}

	// Create dependency injection container
	container, err := app.New(profileDir, cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := newRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// profileFromArgs extracts the --profile flag value before cobra parses the arguments.
func profileFromArgs(args []string) string {
	flag := "--" + cli.ProfileFlag
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, flag+"="); ok {
			return v
		}
	}
	return ""
}

func canRunWithoutContainer(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
