package animator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/npillmayer/kinetype/core"
	"github.com/npillmayer/kinetype/core/font"
	"github.com/npillmayer/kinetype/core/locate/resources"
	"github.com/npillmayer/kinetype/engine/glyph"
	"github.com/npillmayer/kinetype/engine/motion/catalog"
	"github.com/npillmayer/kinetype/engine/motion/timeline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullSurface struct{ width int }

func (s nullSurface) Width() int                      { return s.width }
func (s nullSurface) Height() int                     { return 400 }
func (nullSurface) Clear()                            {}
func (nullSurface) Save()                             {}
func (nullSurface) Restore()                          {}
func (nullSurface) SetFont(*font.ScalableFont) error  { return nil }
func (nullSurface) SetFill(string)                    {}
func (nullSurface) SetAlpha(float64)                  {}
func (nullSurface) SetFilter(float64, *glyph.Shadow)  {}
func (nullSurface) Scale(float64)                     {}
func (nullSurface) Rotate(float64)                    {}
func (nullSurface) Translate(float64, float64)        {}
func (nullSurface) Skew(float64, float64)             {}
func (nullSurface) FillText(string, float64, float64) {}

type counter int

func (c *counter) MarkNeedsUpdate() { *c++ }

type promise struct {
	tc  *font.TypeCase
	err error
}

func (p promise) TypeCase() (*font.TypeCase, error)             { return p.tc, p.err }
func (p promise) Await(context.Context) (*font.TypeCase, error) { return p.tc, p.err }

// fallback resolves every family to the fallback font.
func fallback(err error) Resolver {
	return func(family string, size float64) resources.TypeCasePromise {
		tc, _ := font.FallbackFont().PrepareCase(size)
		return promise{tc: tc, err: err}
	}
}

func settle(a *Animator) {
	for i := 0; i < 600 && a.Active() > 0; i++ {
		a.Tick(1.0 / 60)
	}
}

func TestConfigFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.animator")
	defer teardown()
	//
	conf := testconfig.Conf{
		"kinetype.fontsize":   "48",
		"kinetype.fps":        30,
		"kinetype.color":      "#ff0000",
		"kinetype.lineheight": "tall",
		"kinetype.origin.x":   "12.5",
	}
	c := ConfigFrom(conf)
	assert.Equal(t, 48.0, c.FontSize)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, "#ff0000", c.Color)
	assert.Equal(t, 70.0, c.Layout.LineHeight)
	assert.Equal(t, 12.5, c.Layout.OriginX)
	assert.Equal(t, "Hello", c.Text)
	assert.Equal(t, 48.0, c.CompositorOptions().GlyphScale)
	assert.Equal(t, DefaultConfig(), ConfigFrom(nil))
}

func TestHiFlyIn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.animator")
	defer teardown()
	//
	tex := new(counter)
	a := New(nullSurface{800}, tex, DefaultConfig(), WithResolver(fallback(nil)))
	require.NoError(t, a.ApplyAnimation("Hi", "FlyIn", "Arial"))
	assert.Equal(t, uint64(1), a.Generation())
	assert.Equal(t, catalog.FlyIn, a.Kind())
	assert.Equal(t, 1, int(*tex), "initial state is drawn at once")
	glyphs := a.Glyphs()
	require.Len(t, glyphs, 2)
	for _, g := range glyphs {
		assert.Equal(t, 20.0, g.BaseY)
		assert.Equal(t, 0.0, g.Opacity)
		assert.Equal(t, g.BaseY-120, g.Y)
	}
	settle(a)
	assert.Greater(t, int(*tex), 10)
	for _, g := range a.Glyphs() {
		assert.Equal(t, 1.0, g.Opacity)
		assert.True(t, g.Y == g.BaseY)
	}
}

func TestBlankIsNotAGlyph(t *testing.T) {
	a := New(nullSurface{800}, new(counter), DefaultConfig(), WithResolver(fallback(nil)))
	require.NoError(t, a.ApplyAnimation("A B", "Pulse", "Arial"))
	glyphs := a.Glyphs()
	require.Len(t, glyphs, 2)
	assert.Equal(t, "A", glyphs[0].BaseChar)
	assert.Equal(t, "B", glyphs[1].BaseChar)
}

func TestNewRunCancelsPrevious(t *testing.T) {
	a := New(nullSurface{800}, new(counter), DefaultConfig(),
		WithResolver(fallback(nil)), WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, a.ApplyAnimation("Hello", "Breathe", "Arial"))
	for i := 0; i < 10; i++ {
		assert.Equal(t, 1, a.Tick(0.05))
	}
	require.NoError(t, a.ApplyAnimation("Hello", "Fade", "Arial"))
	assert.Equal(t, uint64(2), a.Generation())
	assert.Equal(t, 1, a.Active())
	for _, g := range a.Glyphs() {
		assert.Equal(t, 1.0, g.Scale, "new generation starts at identity")
		assert.Equal(t, 0.0, g.Opacity)
	}
	settle(a)
	assert.Equal(t, 0, a.Active())
	assert.Equal(t, 0, a.Tick(0.05))
	text, anim, family := a.Settings()
	assert.Equal(t, []string{"Hello", "Fade", "Arial"}, []string{text, anim, family})
}

func TestMissingFontFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.animator")
	defer teardown()
	//
	missing := core.Error(core.EMISSING, "font not found: NoSuchFont")
	a := New(nullSurface{800}, new(counter), DefaultConfig(), WithResolver(fallback(missing)))
	err := a.ApplyAnimation("ok", "Nonexistent", "NoSuchFont")
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Len(t, a.Glyphs(), 2)
	assert.Equal(t, catalog.Default, a.Kind())
	//
	a = New(nullSurface{800}, new(counter), DefaultConfig(),
		WithResolver(func(string, float64) resources.TypeCasePromise { return promise{} }))
	err = a.ApplyAnimation("ok", "Fade", "Broken")
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Len(t, a.Glyphs(), 2)
}

func TestEmptyTextAndMissingSurface(t *testing.T) {
	tex := new(counter)
	a := New(nil, tex, DefaultConfig(), WithResolver(fallback(nil)))
	require.NoError(t, a.ApplyAnimation("  \n ", "FlyIn", "Arial"))
	assert.Empty(t, a.Glyphs())
	assert.Equal(t, 0, a.Tick(0.1))
	require.NoError(t, a.ApplyAnimation("a very long line which is not wrapped", "Fade", "Arial"))
	for _, g := range a.Glyphs() {
		assert.Equal(t, 20.0, g.BaseY)
	}
	assert.Equal(t, 0, int(*tex))
	require.NoError(t, a.Attach(nullSurface{800}, tex))
	assert.Equal(t, 1, int(*tex))
}

func TestReplay(t *testing.T) {
	conf := DefaultConfig()
	a := New(nullSurface{800}, new(counter), conf, WithResolver(fallback(nil)))
	text, anim, family := a.Settings()
	assert.Equal(t, "Hello", text)
	assert.Equal(t, "FlyIn", anim)
	assert.Equal(t, "Arial", family)
	require.NoError(t, a.Replay())
	assert.Len(t, a.Glyphs(), 5)
	assert.Equal(t, uint64(1), a.Generation())
}

func TestLoop(t *testing.T) {
	a := New(nullSurface{800}, new(counter), DefaultConfig(), WithResolver(fallback(nil)))
	require.NoError(t, a.ApplyAnimation("Hi", "FlyIn", "Arial"))
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	redraws := 0
	err := a.Loop(ctx, timeline.SystemClock{}, func(n int) { redraws += n })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, redraws, 0)
}
