package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/docwin/internal/app"
	"github.com/runoshun/docwin/internal/domain"
	"github.com/runoshun/docwin/internal/usecase"
)

// newTasksCommand creates the tasks command.
func newTasksCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"taskbar"},
		Short:   "Manage minimized windows",
		Long: `Manage the registry of minimized document windows.

The registry is shared by every docwin process using the same profile.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newTasksListCommand(c))
	cmd.AddCommand(newTasksMinimizeCommand(c))
	cmd.AddCommand(newTasksDismissCommand(c))
	cmd.AddCommand(newTasksClearCommand(c))
	cmd.AddCommand(newTasksRestoreCommand(c))

	return cmd
}

// newTasksListCommand creates the tasks list subcommand.
func newTasksListCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List minimized tasks",
		Long: `Display the minimized tasks in taskbar order.

Output columns:
  ID, TITLE, URL

With --json the registry value is printed as stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Tasks)
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

// printTaskList prints tasks in a table.
func printTaskList(w io.Writer, tasks []domain.MinimizedTask) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No minimized tasks")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tURL")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Title, t.URL)
	}
}

// newTasksMinimizeCommand creates the tasks minimize subcommand.
func newTasksMinimizeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "minimize <locator>",
		Short: "Minimize a document window",
		Long: `Open a window for the locator and minimize it to the taskbar.

The recorded URL carries the resolved tab, so restoring reopens the same view.
Minimizing a document that is already on the taskbar replaces its entry.

Examples:
  docwin tasks minimize "/docs/trees?tab=concepts#height"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, session, err := c.OpenWindow(args[0])
			if err != nil {
				return err
			}
			task, err := session.Minimize(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Minimized %s: %s\n", task.ID, task.URL)
			return nil
		},
	}
}

// newTasksDismissCommand creates the tasks dismiss subcommand.
func newTasksDismissCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "dismiss <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a task from the taskbar",
		Long: `Remove a minimized task without reopening it.

Examples:
  docwin tasks dismiss help:/docs/trees`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DismissTaskUseCase().Execute(cmd.Context(), usecase.DismissTaskInput{ID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Dismissed %s\n", out.Task.ID)
			return nil
		},
	}
}

// newTasksClearCommand creates the tasks clear subcommand.
func newTasksClearCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every task from the taskbar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ClearTasksUseCase().Execute(cmd.Context(), usecase.ClearTasksInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d task(s)\n", out.Removed)
			return nil
		},
	}
}

// newTasksRestoreCommand creates the tasks restore subcommand.
func newTasksRestoreCommand(c *app.Container) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Take a task off the taskbar",
		Long: `Remove a minimized task and print the locator it was minimized at.

With --open, the window is reopened in the interactive shell.
A task whose document left the catalog stays on the taskbar.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RestoreTaskUseCase().Execute(cmd.Context(), usecase.RestoreTaskInput{ID: args[0]})
			if err != nil {
				return err
			}
			if open {
				return launchTUIFunc(c, out.Locator.String())
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Locator.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Reopen the window in the interactive shell")

	return cmd
}
