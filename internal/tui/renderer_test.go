package tui

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeThemeRegistered(t *testing.T) {
	style := styles.Get(CodeTheme)
	require.NotNil(t, style)
	assert.Equal(t, CodeTheme, style.Name)

	assert.Equal(t, "#cba6f7", style.Get(chroma.Keyword).Colour.String())
	assert.Equal(t, "#a6e3a1", style.Get(chroma.LiteralString).Colour.String())
	assert.Equal(t, chroma.Yes, style.Get(chroma.Comment).Italic)
}

func TestCodeBlockStyle(t *testing.T) {
	block := codeBlockStyle(ansi.StyleCodeBlock{Chroma: &ansi.Chroma{}}, CodeTheme)

	assert.Nil(t, block.Chroma)
	assert.Equal(t, CodeTheme, block.Theme)
}

func TestNewRenderer(t *testing.T) {
	for _, theme := range []string{"", "dark", "light", "notty"} {
		t.Run(theme, func(t *testing.T) {
			r, err := NewRenderer(theme, 60)
			require.NoError(t, err)
			assert.Equal(t, 60, r.Width())

			out, err := r.Render("## Heading\n\nSome **bold** text.\n\n```go\nfunc main() {}\n```\n")
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestNewRenderer_MinimumWidth(t *testing.T) {
	r, err := NewRenderer("notty", 5)
	require.NoError(t, err)
	assert.Equal(t, 20, r.Width())
}

func TestRenderer_NoTTYKeepsText(t *testing.T) {
	r, err := NewRenderer("notty", 80)
	require.NoError(t, err)

	out, err := r.Render("A tree stores items in a hierarchy.")
	require.NoError(t, err)
	assert.Contains(t, out, "A tree stores items in a hierarchy.")
}
