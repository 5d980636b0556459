package layout

import (
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/kinetype/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mono measures every character with a width of 10.
type mono struct{}

func (mono) Advance(s string) float64 {
	return 10 * float64(len([]rune(s)))
}

func TestLayoutHi(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.layout")
	defer teardown()
	//
	glyphs := Layout("Hi", mono{}, 700)
	require.Len(t, glyphs, 2)
	assert.Equal(t, "H", glyphs[0].Char)
	assert.Equal(t, 50.0, glyphs[0].BaseX)
	assert.Equal(t, 60.0, glyphs[1].BaseX)
	assert.Equal(t, 20.0, glyphs[0].BaseY)
	assert.Equal(t, 20.0, glyphs[1].BaseY)
}

func TestBlanksAreNoGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.layout")
	defer teardown()
	//
	glyphs := Layout("A B", mono{}, 700)
	require.Len(t, glyphs, 2)
	assert.Equal(t, 70.0, glyphs[1].BaseX)
	assert.Empty(t, Layout("", mono{}, 700))
	assert.Empty(t, Layout("  \n \t ", mono{}, 700))
}

func TestGlyphCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.layout")
	defer teardown()
	//
	for _, text := range []string{
		"Hello  World\n\tFoo",
		"a\n\nb  c ",
		"   x",
		"Kinetic\r\nType",
	} {
		k := 0
		for _, r := range text {
			if !unicode.IsSpace(r) {
				k++
			}
		}
		assert.Len(t, Layout(text, mono{}, 700), k, "text %q", text)
	}
}

func TestLineWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.layout")
	defer teardown()
	//
	text := "aaaaaaaaaa bbbbbbbbbb cccccccccc dddddddddd"
	glyphs := Layout(text, mono{}, 400)
	require.Len(t, glyphs, 40)
	assert.Equal(t, 20.0, glyphs[29].BaseY)
	assert.Equal(t, 50.0, glyphs[30].BaseX)
	assert.Equal(t, 90.0, glyphs[30].BaseY)
	assert.Equal(t, "d", glyphs[30].Char)
}

func TestOverwideWordOverflows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.layout")
	defer teardown()
	//
	glyphs := Layout(strings.Repeat("x", 50)+" y", mono{}, 400)
	require.Len(t, glyphs, 51)
	assert.Equal(t, 50.0, glyphs[0].BaseX)
	assert.Equal(t, 90.0, glyphs[0].BaseY, "first word wraps, too")
	assert.Equal(t, 540.0, glyphs[49].BaseX, "word is not broken")
	assert.Equal(t, 90.0, glyphs[49].BaseY)
	assert.Equal(t, 50.0, glyphs[50].BaseX)
	assert.Equal(t, 160.0, glyphs[50].BaseY)
}

// wide measures every character with a width of 200.
type wide struct{}

func (wide) Advance(s string) float64 {
	return 200 * float64(len([]rune(s)))
}

func TestFirstWordWiderThanLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.layout")
	defer teardown()
	//
	glyphs := Layout("AB", wide{}, 400)
	require.Len(t, glyphs, 2)
	assert.Equal(t, 50.0, glyphs[0].BaseX)
	assert.Equal(t, 90.0, glyphs[0].BaseY)
	assert.Equal(t, 250.0, glyphs[1].BaseX)
	assert.Equal(t, 90.0, glyphs[1].BaseY)
}

func TestNewlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.layout")
	defer teardown()
	//
	glyphs := Layout("a\r\n\nb", mono{}, 700)
	require.Len(t, glyphs, 2)
	assert.Equal(t, 20.0, glyphs[0].BaseY)
	assert.Equal(t, 160.0, glyphs[1].BaseY)
	assert.Equal(t, 50.0, glyphs[1].BaseX)
}

func TestGraphemeClusters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.layout")
	defer teardown()
	//
	glyphs := Layout("é👍🏽", mono{}, 700)
	require.Len(t, glyphs, 2)
	assert.Equal(t, "é", glyphs[0].Char)
	assert.Equal(t, "👍🏽", glyphs[1].BaseChar)
	assert.Equal(t, 60.0, glyphs[1].BaseX)
}

func TestLayoutParams(t *testing.T) {
	p := Params{OriginX: 0, OriginY: 0, LineHeight: 10, Margin: 0}
	glyphs := p.Layout("a\nb", mono{}, p.MaxWidth(100))
	require.Len(t, glyphs, 2)
	assert.Equal(t, 0.0, glyphs[0].BaseX)
	assert.Equal(t, 10.0, glyphs[1].BaseY)
	assert.Equal(t, 700.0, DefaultParams().MaxWidth(800))
}

func TestLayoutWithFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.layout")
	defer teardown()
	//
	tc, err := font.FallbackFont().PrepareCase(60)
	require.NoError(t, err)
	glyphs := Layout("Hi there", tc, 700)
	require.Len(t, glyphs, 7)
	assert.Greater(t, glyphs[1].BaseX, glyphs[0].BaseX)
	for _, g := range glyphs {
		assert.Equal(t, 20.0, g.BaseY)
		assert.Equal(t, g.BaseX, g.X)
		assert.Equal(t, 1.0, g.Opacity)
	}
}
