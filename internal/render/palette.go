package render

import (
	"strings"

	"github.com/fogleman/fauxgl"
	"golang.org/x/text/cases"

	"github.com/nao1215/printcheck/internal/model"
)

// Filename markers. Matching is case-insensitive, so "[A]" is a marker too.
const (
	MarkerA = "[a]"
	MarkerC = "[c]"
)

// Palette maps tints to render colours.
type Palette struct {
	Red     fauxgl.Color
	White   fauxgl.Color
	Default fauxgl.Color
}

// DefaultPalette returns mild red, white and mild black.
func DefaultPalette() Palette {
	return Palette{
		Red:     fauxgl.HexColor("b40000"),
		White:   fauxgl.HexColor("ffffff"),
		Default: fauxgl.HexColor("323232"),
	}
}

// NewPalette builds a palette from hex colours such as "b40000".
func NewPalette(red, white, fallback string) Palette {
	return Palette{
		Red:     fauxgl.HexColor(red),
		White:   fauxgl.HexColor(white),
		Default: fauxgl.HexColor(fallback),
	}
}

// Color returns the colour for a tint.
func (p Palette) Color(t model.Tint) fauxgl.Color {
	switch t {
	case model.TintRed:
		return p.Red
	case model.TintWhite:
		return p.White
	default:
		return p.Default
	}
}

// TintFor picks the tint from a file name. "[a]" is checked before "[c]",
// so a name carrying both markers is red.
func TintFor(name string) model.Tint {
	// A Caser keeps state, so each call gets its own.
	folded := cases.Fold().String(name)
	switch {
	case strings.Contains(folded, MarkerA):
		return model.TintRed
	case strings.Contains(folded, MarkerC):
		return model.TintWhite
	default:
		return model.TintDefault
	}
}
