package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/docwin/internal/app"
	"github.com/runoshun/docwin/internal/tui"
	"github.com/runoshun/docwin/internal/usecase"
)

// newDocsCommand creates the docs command.
func newDocsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Browse the document catalog",
		Long:  `List the catalog and inspect document views without opening a window.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newDocsListCommand(c))
	cmd.AddCommand(newDocsShowCommand(c))

	return cmd
}

// newDocsListCommand creates the docs list subcommand.
func newDocsListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents",
		Long: `Display the document catalog.

Output columns:
  PATH, NAME, TABS, MIN, SUMMARY

MIN is "*" when the document is on the taskbar.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListDocumentsUseCase().Execute(cmd.Context(), usecase.ListDocumentsInput{})
			if err != nil {
				return err
			}
			printDocumentList(cmd.OutOrStdout(), out.Documents)
			return nil
		},
	}
}

// printDocumentList prints the catalog in a table.
func printDocumentList(w io.Writer, docs []usecase.DocumentEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "PATH\tNAME\tTABS\tMIN\tSUMMARY")
	for _, e := range docs {
		minimized := "-"
		if e.Minimized {
			minimized = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			e.Document.Path, e.Document.Name, len(e.Document.Tabs), minimized, e.Document.Summary)
	}
}

// newDocsShowCommand creates the docs show subcommand.
func newDocsShowCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Render bool
		Width  int
	}

	cmd := &cobra.Command{
		Use:   "show <locator>",
		Short: "Show the view a window would open with",
		Long: `Resolve a locator to its window title, active tab and sections.

An unknown or missing tab parameter resolves to the document's first tab.
With --render, section bodies are rendered as markdown.

Examples:
  docwin docs show /docs/trees
  docwin docs show "/docs/trees?tab=glossary" --render`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowDocumentUseCase().Execute(cmd.Context(), usecase.ShowDocumentInput{Locator: args[0]})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, out.Title)
			_, _ = fmt.Fprintln(w, out.Locator.String())
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Tabs]")
			for _, tab := range out.Document.Tabs {
				marker := " "
				if tab.ID == out.Tab {
					marker = "*"
				}
				_, _ = fmt.Fprintf(w, "%s %s (%s)\n", marker, tab.Label, tab.ID)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Sections]")
			if len(out.Sections) == 0 {
				_, _ = fmt.Fprintln(w, "(none)")
				return nil
			}

			var renderer *tui.Renderer
			if opts.Render {
				renderer, err = tui.NewRenderer(c.AppConfig.UI.Theme, opts.Width)
				if err != nil {
					return err
				}
			}
			for _, s := range out.Sections {
				_, _ = fmt.Fprintf(w, "#%s  %s\n", s.ID, s.Label)
				if renderer == nil || s.Body == "" {
					continue
				}
				body, err := renderer.Render(s.Body)
				if err != nil {
					return fmt.Errorf("render section %s: %w", s.ID, err)
				}
				_, _ = fmt.Fprint(w, body)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Render, "render", false, "Render section bodies")
	cmd.Flags().IntVar(&opts.Width, "width", 80, "Wrap width for rendered bodies")

	return cmd
}
