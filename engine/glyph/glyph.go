package glyph

import "fmt"

// DefaultShadowColor and DefaultShadowBlur are used for shadows which do not
// specify a color or blur radius.
const (
	DefaultShadowColor = "#00ffcc"
	DefaultShadowBlur  = 18.0
)

// Shadow is a glow drawn behind a glyph.
type Shadow struct {
	Color string  // CSS-style hex color; empty means DefaultShadowColor
	Blur  float64 // blur radius in pixels; zero means DefaultShadowBlur
}

// EffectiveColor returns the shadow color, substituting the default.
func (s Shadow) EffectiveColor() string {
	if s.Color == "" {
		return DefaultShadowColor
	}
	return s.Color
}

// EffectiveBlur returns the shadow blur radius, substituting the default.
func (s Shadow) EffectiveBlur() float64 {
	if s.Blur == 0 {
		return DefaultShadowBlur
	}
	return s.Blur
}

// Glyph is a single user-perceived character placed by the layout pass.
//
// The rest pose (Base…) is set once per layout pass and never changed.
// Animations change the live pose only.
type Glyph struct {
	Char     string // displayed character, may differ from BaseChar during effects
	BaseChar string // character as laid out

	BaseX, BaseY float64
	BaseScale    float64
	BaseRot      float64 // radians
	BaseOpacity  float64

	X, Y    float64
	Scale   float64
	Rot     float64 // radians
	Opacity float64
	SkewX   float64
	SkewY   float64
	Blur    float64 // blur radius in pixels, 0 = sharp
	Shadow  *Shadow // nil = no shadow
	Shake   float64 // amplitude of per-frame jitter, 0 = still
}

// New creates a glyph for character ch at layout position (x, y), with its
// live pose equal to its rest pose.
func New(ch string, x, y float64) Glyph {
	g := Glyph{
		Char:        ch,
		BaseChar:    ch,
		BaseX:       x,
		BaseY:       y,
		BaseScale:   1,
		BaseOpacity: 1,
	}
	g.ResetLive()
	return g
}

// Restore sets the live position, scale, rotation and opacity back to the
// rest pose. The values are copied, i.e. afterwards they are bit-for-bit
// equal to the rest pose.
func (g *Glyph) Restore() {
	g.X = g.BaseX
	g.Y = g.BaseY
	g.Scale = g.BaseScale
	g.Rot = g.BaseRot
	g.Opacity = g.BaseOpacity
}

// ResetLive resets the complete live pose to identity: rest position,
// scale 1, rotation 0, opacity 1, no skew, blur, shadow or shake. The
// displayed character is reset to the base character.
func (g *Glyph) ResetLive() {
	g.Char = g.BaseChar
	g.X, g.Y = g.BaseX, g.BaseY
	g.Rot = 0
	g.Scale = 1
	g.Opacity = 1
	g.Blur = 0
	g.Shadow = nil
	g.SkewX, g.SkewY = 0, 0
	g.Shake = 0
}

type restPose struct {
	char                      string
	x, y, scale, rot, opacity float64
}

func (g *Glyph) restPose() restPose {
	return restPose{g.BaseChar, g.BaseX, g.BaseY, g.BaseScale, g.BaseRot, g.BaseOpacity}
}

func (g *Glyph) setRestPose(r restPose) {
	g.BaseChar = r.char
	g.BaseX, g.BaseY = r.x, r.y
	g.BaseScale, g.BaseRot, g.BaseOpacity = r.scale, r.rot, r.opacity
}

func (g Glyph) String() string {
	return fmt.Sprintf("%q@(%.1f,%.1f) s=%.2f r=%.2f o=%.2f", g.Char, g.X, g.Y,
		g.Scale, g.Rot, g.Opacity)
}

// --- Fields ----------------------------------------------------------------

// Field addresses an animatable numeric property of a glyph's live pose.
type Field int

// Animatable fields.
const (
	X Field = iota
	Y
	Scale
	Rot
	Opacity
	SkewX
	SkewY
	Blur
	ShadowBlur
	Shake
)

var fieldNames = [...]string{"x", "y", "scale", "rot", "opacity", "skewX", "skewY",
	"blur", "shadowBlur", "shake"}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Get reads a field of the live pose.
func (g *Glyph) Get(f Field) float64 {
	switch f {
	case X:
		return g.X
	case Y:
		return g.Y
	case Scale:
		return g.Scale
	case Rot:
		return g.Rot
	case Opacity:
		return g.Opacity
	case SkewX:
		return g.SkewX
	case SkewY:
		return g.SkewY
	case Blur:
		return g.Blur
	case ShadowBlur:
		if g.Shadow == nil {
			return 0
		}
		return g.Shadow.Blur
	case Shake:
		return g.Shake
	}
	panic(fmt.Sprintf("glyph: unknown field %d", int(f)))
}

// Put writes a field of the live pose. Writing ShadowBlur to a glyph
// without a shadow attaches a shadow of the default color.
func (g *Glyph) Put(f Field, v float64) {
	switch f {
	case X:
		g.X = v
	case Y:
		g.Y = v
	case Scale:
		g.Scale = v
	case Rot:
		g.Rot = v
	case Opacity:
		g.Opacity = v
	case SkewX:
		g.SkewX = v
	case SkewY:
		g.SkewY = v
	case Blur:
		g.Blur = v
	case ShadowBlur:
		if g.Shadow == nil {
			g.Shadow = &Shadow{}
		}
		g.Shadow.Blur = v
	case Shake:
		g.Shake = v
	default:
		panic(fmt.Sprintf("glyph: unknown field %d", int(f)))
	}
}

// Rest returns the rest value of a field. Fields without a rest pose
// (skew, blur, shadow, shake) rest at 0.
func (g *Glyph) Rest(f Field) float64 {
	switch f {
	case X:
		return g.BaseX
	case Y:
		return g.BaseY
	case Scale:
		return g.BaseScale
	case Rot:
		return g.BaseRot
	case Opacity:
		return g.BaseOpacity
	}
	return 0
}
