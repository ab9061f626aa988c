// Package cli provides the command-line interface for docwin.
package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/docwin/internal/app"
	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/tui"
	"github.com/runoshun/docwin/internal/usecase"
)

// Command group IDs.
const (
	groupDocs  = "docs"
	groupTasks = "tasks"
	groupSetup = "setup"
)

// ProfileFlag is the persistent flag selecting the profile directory.
// main reads it before the container is built.
const ProfileFlag = "profile"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for docwin.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "docwin",
		Short: "Tabbed document windows with a shared taskbar",
		Long: `docwin browses reference documents in tabbed windows.

The selected tab is kept in the window locator (?tab=...), so every view
can be shared and restored. Minimized windows are recorded in a registry
shared by every docwin process and shown as a taskbar.

Run without arguments to open the catalog.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c, domain.DefaultFallbackRoute)
		},
	}

	root.PersistentFlags().String(ProfileFlag, "", "Profile directory (default $XDG_CONFIG_HOME/docwin)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupDocs, Title: "Documents:"},
		&cobra.Group{ID: groupTasks, Title: "Minimized Tasks:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	openCmd := newOpenCommand(c)
	openCmd.GroupID = groupDocs

	docsCmd := newDocsCommand(c)
	docsCmd.GroupID = groupDocs

	tasksCmd := newTasksCommand(c)
	tasksCmd.GroupID = groupTasks

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		openCmd,
		docsCmd,
		tasksCmd,
		configCmd,
	)

	return root
}

// launchTUI runs the interactive shell starting at route.
func launchTUI(c *app.Container, route string) error {
	if c == nil {
		return errors.New("docwin is not initialized")
	}
	start, err := domain.ParseLocator(route)
	if err != nil {
		return err
	}
	model := tui.New(c, start)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// newOpenCommand creates the open command.
func newOpenCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "open <locator>",
		Short: "Open a document window",
		Long: `Open a document window in the interactive shell.

The locator is a document path with an optional tab parameter and
section fragment. An unknown tab opens the document's first tab.

Examples:
  # Open the trees document on its first tab
  docwin open /docs/trees

  # Open a tab and jump to a section
  docwin open "/docs/trees?tab=concepts#height"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowDocumentUseCase().Execute(cmd.Context(), usecase.ShowDocumentInput{Locator: args[0]})
			if err != nil {
				return err
			}
			return launchTUIFunc(c, out.Locator.String())
		},
	}
}
