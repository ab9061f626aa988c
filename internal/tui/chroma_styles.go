package tui

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// CodeTheme is the chroma style used for code listings in dark windows.
const CodeTheme = "docwin-dark"

// listingStyle colours the tokens the Go lexer produces for catalog listings.
var listingStyle = chroma.StyleEntries{
	chroma.Background:    "",
	chroma.Text:          "#cdd6f4",
	chroma.Comment:       "#6c7086 italic",
	chroma.Keyword:       "#cba6f7",
	chroma.KeywordType:   "#f9e2af",
	chroma.NameFunction:  "#89b4fa",
	chroma.NameBuiltin:   "#f38ba8",
	chroma.Operator:      "#89dceb",
	chroma.Punctuation:   "#9399b2",
	chroma.LiteralNumber: "#fab387",
	chroma.LiteralString: "#a6e3a1",
}

func init() {
	styles.Register(chroma.MustNewStyle(CodeTheme, listingStyle))
}
