package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

// Renderer turns section markdown into terminal output.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

// NewRenderer creates a renderer for a [ui] theme wrapping at width.
// "dark", "light" and "notty" are built in; any other value is a glamour style path.
func NewRenderer(theme string, width int) (*Renderer, error) {
	if width < 20 {
		width = 20
	}

	var style glamour.TermRendererOption
	switch theme {
	case "", "dark":
		cfg := glamourstyles.DarkStyleConfig
		cfg.CodeBlock = codeBlockStyle(cfg.CodeBlock, CodeTheme)
		style = glamour.WithStyles(cfg)
	case "light":
		style = glamour.WithStyles(glamourstyles.LightStyleConfig)
	case "notty":
		style = glamour.WithStyles(glamourstyles.NoTTYStyleConfig)
	default:
		style = glamour.WithStylePath(theme)
	}

	tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Renderer{tr: tr, width: width}, nil
}

// Width returns the wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render renders markdown.
func (r *Renderer) Render(md string) (string, error) {
	return r.tr.Render(md)
}

// codeBlockStyle points code blocks at a registered chroma style.
func codeBlockStyle(block ansi.StyleCodeBlock, theme string) ansi.StyleCodeBlock {
	block.Chroma = nil
	block.Theme = theme
	return block
}
