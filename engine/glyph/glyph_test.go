package glyph

import (
	"math"
	"testing"

	"github.com/npillmayer/kinetype/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreIsExact(t *testing.T) {
	g := New("A", 50.3, 20.7)
	g.BaseRot = math.Pi / 3
	g.BaseScale = 0.1 + 0.2 // not representable exactly
	g.X, g.Y, g.Scale, g.Rot, g.Opacity = 1e9, -3, 0.0001, 7, 0.5
	g.Restore()
	assert.True(t, g.X == g.BaseX && g.Y == g.BaseY)
	assert.True(t, g.Scale == g.BaseScale && g.Rot == g.BaseRot && g.Opacity == g.BaseOpacity)
}

func TestResetLive(t *testing.T) {
	g := New("A", 10, 20)
	g.Char = "#"
	g.Scale, g.Rot, g.Opacity = 3, 1, 0
	g.SkewX, g.SkewY, g.Blur, g.Shake = 1, 1, 4, 6
	g.Shadow = &Shadow{Color: "#ff0000"}
	g.ResetLive()
	assert.Equal(t, New("A", 10, 20), g)
}

func TestFields(t *testing.T) {
	g := New("x", 5, 6)
	for f := X; f <= Shake; f++ {
		g.Put(f, float64(f)+0.5)
		assert.Equal(t, float64(f)+0.5, g.Get(f), "field %s", f)
	}
	require.NotNil(t, g.Shadow)
	assert.Equal(t, DefaultShadowColor, g.Shadow.EffectiveColor())
	assert.Equal(t, 5.0, g.Rest(X))
	assert.Equal(t, 0.0, g.Rest(Blur))
	assert.Equal(t, "opacity", Opacity.String())
}

func TestShadowDefaults(t *testing.T) {
	var s Shadow
	assert.Equal(t, "#00ffcc", s.EffectiveColor())
	assert.Equal(t, 18.0, s.EffectiveBlur())
	s = Shadow{Color: "#fff", Blur: 3}
	assert.Equal(t, "#fff", s.EffectiveColor())
	assert.Equal(t, 3.0, s.EffectiveBlur())
}

func TestRetiredSetRejectsWrites(t *testing.T) {
	set := NewSet([]Glyph{New("a", 50, 20)}, 7)
	require.NoError(t, set.Put(0, Opacity, 0))
	assert.Equal(t, core.EINVALID, core.Code(set.Put(1, Opacity, 0)))
	set.Retire()
	err := set.Put(0, Opacity, 1)
	assert.Equal(t, core.ESTALE, core.Code(err))
	assert.Equal(t, 0.0, set.At(0).Opacity)
	set.ResetLive()
	assert.Equal(t, 0.0, set.At(0).Opacity, "retired set must not be reset")
}

func TestUpdateKeepsRestPose(t *testing.T) {
	set := NewSet([]Glyph{New("a", 50, 20)}, 1)
	err := set.Update(0, func(g *Glyph) {
		g.X, g.Opacity = 80, 0.5
		g.BaseX, g.BaseY, g.BaseOpacity = 1, 2, 3
		g.BaseChar = "z"
	})
	require.NoError(t, err)
	g := set.At(0)
	assert.Equal(t, 80.0, g.X)
	assert.Equal(t, 0.5, g.Opacity)
	assert.Equal(t, 50.0, g.BaseX)
	assert.Equal(t, 20.0, g.BaseY)
	assert.Equal(t, 1.0, g.BaseOpacity)
	assert.Equal(t, "a", g.BaseChar)
}

func TestPartitionWords(t *testing.T) {
	words := PartitionWords([]float64{50, 58, 66, 120, 128})
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, words)
	assert.Nil(t, PartitionWords(nil))
}

func TestLinesAndWords(t *testing.T) {
	set := NewSet([]Glyph{
		New("a", 50, 20), New("b", 80, 20),
		New("c", 50, 90),
		New("d", 120, 90),
	}, 1)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, set.Lines())
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, set.Words())
	var empty *Set
	assert.Nil(t, empty.Lines())
	assert.Zero(t, empty.Len())
}

func TestGlyphsCopiesShadows(t *testing.T) {
	set := NewSet([]Glyph{New("a", 50, 20)}, 1)
	require.NoError(t, set.Put(0, ShadowBlur, 4))
	c := set.Glyphs()
	c[0].Shadow.Blur = 99
	assert.Equal(t, 4.0, set.At(0).Shadow.Blur)
}
