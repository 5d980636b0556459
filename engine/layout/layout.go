package layout

import (
	"strings"
	"unicode"

	"github.com/npillmayer/kinetype/engine/glyph"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Measurer measures the horizontal advance of a piece of text.
// *font.TypeCase is a Measurer.
type Measurer interface {
	Advance(s string) float64
}

// Params are the layout constants, in surface pixels.
type Params struct {
	OriginX    float64 // left edge of every line
	OriginY    float64 // top of the first line
	LineHeight float64 // distance between lines
	Margin     float64 // surface width minus Margin is the maximum line width
}

// DefaultParams returns the standard layout constants.
func DefaultParams() Params {
	return Params{
		OriginX:    50,
		OriginY:    20,
		LineHeight: 70,
		Margin:     100,
	}
}

// MaxWidth returns the maximum line width for a surface of a given width.
func (p Params) MaxWidth(surfaceWidth float64) float64 {
	return surfaceWidth - p.Margin
}

// Layout places text with the default parameters. See Params.Layout.
func Layout(text string, m Measurer, maxWidth float64) []glyph.Glyph {
	return DefaultParams().Layout(text, m, maxWidth)
}

// Layout breaks text into lines at newlines and into words at blanks, and
// places one glyph per visible character.
//
// Words are wrapped to a new line if the word, plus a trailing blank, would
// extend beyond maxWidth. This holds for the first word of a line as well:
// a word which is too wide for a line of its own moves down one line, is not
// broken and overflows. Blanks and other white space advance the cursor
// but never produce glyphs.
//
// Characters are user-perceived characters (grapheme clusters) of the
// NFC-normalized text.
func (p Params) Layout(text string, m Measurer, maxWidth float64) []glyph.Glyph {
	text = normalize(text)
	if strings.TrimSpace(text) == "" {
		tracer().Debugf("layout of blank text")
		return nil
	}
	var glyphs []glyph.Glyph
	space := m.Advance(" ")
	y := p.OriginY
	for _, line := range strings.Split(text, "\n") {
		x := p.OriginX
		for _, word := range strings.Split(line, " ") {
			clusters, widths := measureClusters(word, m)
			w := space
			for _, cw := range widths {
				w += cw
			}
			if x+w > maxWidth {
				tracer().Debugf("wrap before %q at x=%.1f", word, x)
				x = p.OriginX
				y += p.LineHeight
			}
			for i, c := range clusters {
				if !isBlank(c) {
					glyphs = append(glyphs, glyph.New(c, x, y))
				}
				x += widths[i]
			}
			x += space
		}
		y += p.LineHeight
	}
	tracer().Debugf("layout produced %d glyphs", len(glyphs))
	return glyphs
}

func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return norm.NFC.String(text)
}

func measureClusters(word string, m Measurer) ([]string, []float64) {
	var clusters []string
	var widths []float64
	gr := uniseg.NewGraphemes(word)
	for gr.Next() {
		c := gr.Str()
		clusters = append(clusters, c)
		widths = append(widths, m.Advance(c))
	}
	return clusters, widths
}

func isBlank(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) && !unicode.Is(unicode.Cc, r) {
			return false
		}
	}
	return true
}
