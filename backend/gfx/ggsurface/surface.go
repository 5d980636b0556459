package ggsurface

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/npillmayer/kinetype/core"
	"github.com/npillmayer/kinetype/core/font"
	"github.com/npillmayer/kinetype/engine/glyph"
)

// Number of passes used to approximate blur and shadow filters.
const filterPasses = 8

// state is the part of the drawing state not kept by gg.Context.
type state struct {
	fill   gg.RGBA
	alpha  float64
	blur   float64
	shadow *glyph.Shadow
}

// Surface is a compositor.Surface drawing to a gg.Context.
//
// gg has no filters; blur and shadow are approximated by painting the text
// several times with low alpha, displaced on a circle of the filter radius.
type Surface struct {
	dc         *gg.Context
	background gg.RGBA
	font       *font.ScalableFont
	face       text.Face
	state      state
	stack      []state
}

// New creates a surface of width × height pixels with a background color
// (given as hex string).
func New(width, height int, background string) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, core.Error(core.EINVALID, "invalid surface size %d×%d", width, height)
	}
	s := &Surface{
		dc:         gg.NewContext(width, height),
		background: gg.Hex(background),
		state:      state{fill: gg.Hex("#ffffff"), alpha: 1},
	}
	s.Clear()
	tracer().Debugf("created %d×%d surface", width, height)
	return s, nil
}

// Context returns the underlying gg context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Close releases the resources of the surface.
func (s *Surface) Close() error {
	return s.dc.Close()
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.dc.Height() }

// Clear fills the surface with its background color and resets the
// transformation.
func (s *Surface) Clear() {
	s.dc.Identity()
	s.dc.ClearWithColor(s.background)
}

// Save pushes the drawing state.
func (s *Surface) Save() {
	s.dc.Push()
	s.stack = append(s.stack, s.state)
}

// Restore pops the drawing state. Unbalanced calls are ignored.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.dc.Pop()
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// SetFont selects the font for FillText, at a size of 1 pixel. Glyphs are
// enlarged by scaling the surface.
func (s *Surface) SetFont(f *font.ScalableFont) error {
	if f == nil {
		return core.Error(core.EMISSING, "no font to paint with")
	}
	if f == s.font {
		return nil
	}
	src, err := text.NewFontSource(f.Binary)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "font %s cannot be rasterized", f.Fontname)
	}
	s.font, s.face = f, src.Face(1)
	s.dc.SetFont(s.face)
	return nil
}

// SetFill sets the fill color.
func (s *Surface) SetFill(color string) {
	s.state.fill = gg.Hex(color)
}

// SetAlpha sets the global alpha, clamped to [0,1].
func (s *Surface) SetAlpha(a float64) {
	s.state.alpha = math.Max(0, math.Min(1, a))
}

// SetFilter sets blur radius and shadow for FillText.
func (s *Surface) SetFilter(blur float64, shadow *glyph.Shadow) {
	s.state.blur = math.Max(0, blur)
	s.state.shadow = shadow
}

// Scale scales uniformly.
func (s *Surface) Scale(f float64) { s.dc.Scale(f, f) }

// Rotate rotates by rad radians, clockwise on screen.
func (s *Surface) Rotate(rad float64) { s.dc.Rotate(rad) }

// Translate moves the origin.
func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }

// Skew shears horizontally by skewX and vertically by skewY.
func (s *Surface) Skew(skewX, skewY float64) { s.dc.Shear(skewX, skewY) }

// FillText paints a string with its top-left corner at (x, y).
func (s *Surface) FillText(str string, x, y float64) {
	if s.face == nil || str == "" || s.state.alpha == 0 {
		return
	}
	// filter radii are given in device pixels
	unit := 1.0
	if sf := s.dc.GetTransform().ScaleFactor(); sf > 0 {
		unit = 1 / sf
	}
	if sh := s.state.shadow; sh != nil {
		c := gg.Hex(sh.EffectiveColor())
		s.spread(str, x, y, c, sh.EffectiveBlur()*unit/2, s.state.alpha*c.A/filterPasses*2)
	}
	fill := s.state.fill
	if s.state.blur > 0 {
		s.spread(str, x, y, fill, s.state.blur*unit, s.state.alpha*fill.A/filterPasses*2)
		return
	}
	s.dc.SetRGBA(fill.R, fill.G, fill.B, fill.A*s.state.alpha)
	s.dc.DrawStringAnchored(str, x, y, 0, 0)
}

// spread paints str filterPasses times, displaced on a circle of radius r.
func (s *Surface) spread(str string, x, y float64, c gg.RGBA, r, alpha float64) {
	s.dc.SetRGBA(c.R, c.G, c.B, math.Min(1, alpha))
	for k := 0; k < filterPasses; k++ {
		phi := 2 * math.Pi * float64(k) / filterPasses
		s.dc.DrawStringAnchored(str, x+r*math.Cos(phi), y+r*math.Sin(phi), 0, 0)
	}
}
