package compositor

import (
	"math"
	"math/rand"

	"github.com/npillmayer/kinetype/core"
	"github.com/npillmayer/kinetype/core/font"
	"github.com/npillmayer/kinetype/engine/glyph"
)

// Surface is a 2D drawing surface of fixed size, provided by the host.
//
// Transformations are multiplied onto the current transformation, as with
// a HTML canvas. Save and Restore push and pop the complete drawing state,
// including alpha and filters.
type Surface interface {
	Width() int
	Height() int
	Clear()
	Save()
	Restore()
	SetFont(f *font.ScalableFont) error // font for FillText, at a size of 1 pixel
	SetFill(color string)               // hex color
	SetAlpha(a float64)
	SetFilter(blur float64, shadow *glyph.Shadow) // blur 0 and shadow nil mean "none"
	Scale(s float64)
	Rotate(rad float64)
	Translate(x, y float64)
	Skew(skewX, skewY float64)
	FillText(s string, x, y float64) // y is the top of the text
}

// Texture is the host's handle for the contents of a surface. Marking it
// tells the host to upload the surface.
type Texture interface {
	MarkNeedsUpdate()
}

// Rand is a source of uniformly distributed random numbers in [0,1).
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Options are the drawing constants of a compositor.
type Options struct {
	Color      string  // fill color of glyphs
	GlyphScale float64 // glyph scale 1 is drawn with a font of this pixel size
	OffsetX    float64 // glyph positions are offset by (OffsetX, OffsetY)
	OffsetY    float64
}

// DefaultOptions returns the standard drawing constants.
func DefaultOptions() Options {
	return Options{
		Color:      "#00ffcc",
		GlyphScale: 60,
		OffsetX:    10,
		OffsetY:    40,
	}
}

// minScale is the smallest glyph scale which is painted.
const minScale = 1e-6

// Compositor paints the live pose of glyphs onto a surface.
//
// A compositor is not safe for concurrent use.
type Compositor struct {
	opts    Options
	surface Surface
	texture Texture
	font    *font.ScalableFont
	rnd     Rand
}

// New creates a compositor. surface and texture may be nil and attached
// later. If rnd is nil, shaking glyphs use the global math/rand source.
func New(surface Surface, texture Texture, opts Options, rnd Rand) *Compositor {
	if rnd == nil {
		rnd = globalRand{}
	}
	if opts.GlyphScale <= 0 {
		opts.GlyphScale = DefaultOptions().GlyphScale
	}
	if opts.Color == "" {
		opts.Color = DefaultOptions().Color
	}
	return &Compositor{opts: opts, surface: surface, texture: texture, rnd: rnd}
}

// Attach sets the surface and texture to draw to.
func (c *Compositor) Attach(surface Surface, texture Texture) {
	c.surface, c.texture = surface, texture
}

// Surface returns the attached surface, if any.
func (c *Compositor) Surface() Surface {
	return c.surface
}

// SetFont sets the font glyphs are painted with. A nil font selects the
// fallback font.
func (c *Compositor) SetFont(f *font.ScalableFont) {
	c.font = f
}

// Options returns the drawing constants.
func (c *Compositor) Options() Options {
	return c.opts
}

// Redraw clears the surface and paints every glyph of set. Afterwards the
// texture is marked as needing an update, once per call.
//
// Without surface or texture Redraw does nothing. A failure while painting
// aborts the redraw and is returned as an error of code core.EINTERNAL; the
// texture is left untouched in this case. Redraw never changes glyphs.
func (c *Compositor) Redraw(set *glyph.Set) (err error) {
	if c.surface == nil || c.texture == nil {
		tracer().Debugf("no surface attached, skipping redraw")
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = core.Error(core.EINTERNAL, "redraw aborted: %v", r)
			tracer().Errorf("%v", err)
		}
	}()
	f := c.font
	if f == nil {
		f = font.FallbackFont()
	}
	if err = c.surface.SetFont(f); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot paint with font %s", f.Fontname)
	}
	c.surface.Clear()
	c.surface.SetFill(c.opts.Color)
	set.Each(func(_ int, g *glyph.Glyph) {
		c.paint(g)
	})
	c.texture.MarkNeedsUpdate()
	return nil
}

// paint draws a single glyph. Transformations are applied in the order
// scale, rotate, translate, skew; the translation is given in scaled units.
func (c *Compositor) paint(g *glyph.Glyph) {
	if g.Char == "" {
		return
	}
	sc := g.Scale * c.opts.GlyphScale
	if math.Abs(sc) < minScale || math.IsNaN(sc) {
		return
	}
	s := c.surface
	s.Save()
	defer s.Restore()
	s.SetAlpha(g.Opacity)
	s.SetFilter(g.Blur, g.Shadow)
	px, py := g.X+c.opts.OffsetX, g.Y+c.opts.OffsetY
	if g.Shake != 0 {
		px += (c.rnd.Float64() - 0.5) * g.Shake
		py += (c.rnd.Float64() - 0.5) * g.Shake
	}
	s.Scale(sc)
	s.Rotate(g.Rot)
	s.Translate(px/sc, py/sc)
	if g.SkewX != 0 || g.SkewY != 0 {
		s.Skew(g.SkewX, g.SkewY)
	}
	s.FillText(g.Char, 0, 0)
}
