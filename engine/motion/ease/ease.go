package ease

import (
	"strconv"
	"strings"

	"github.com/npillmayer/kinetype/core"
	penner "github.com/tanema/gween/ease"
)

// Curve maps linear progress p ∈ [0,1] to eased progress. Eased progress
// starts at 0 and ends at 1 but may overshoot in between.
type Curve func(p float64) float64

// FromTween adapts a Penner-style tween function to a Curve.
func FromTween(f penner.TweenFunc) Curve {
	return func(p float64) float64 {
		p = clamp(p)
		switch p {
		case 0:
			return 0
		case 1:
			return 1
		}
		return float64(f(float32(p), 0, 1, 1))
	}
}

// DefaultOvershoot is the overshoot of the back curves if none is given.
const DefaultOvershoot = 1.70158

// BackIn pulls back by an overshoot of s before moving towards the end.
func BackIn(s float64) Curve {
	return func(p float64) float64 {
		p = clamp(p)
		return p * p * ((s+1)*p - s)
	}
}

// BackOut overshoots the end by an overshoot of s and settles back.
func BackOut(s float64) Curve {
	in := BackIn(s)
	return func(p float64) float64 {
		return 1 - in(1-clamp(p))
	}
}

// BackInOut combines BackIn for the first half and BackOut for the second.
func BackInOut(s float64) Curve {
	in := BackIn(s)
	return func(p float64) float64 {
		p = clamp(p)
		if p < 0.5 {
			return in(p*2) / 2
		}
		return 1 - in((1-p)*2)/2
	}
}

// Linear is the identity curve.
var Linear Curve = func(p float64) float64 { return clamp(p) }

// Standard curves.
var (
	SineIn      = FromTween(penner.InSine)
	SineOut     = FromTween(penner.OutSine)
	SineInOut   = FromTween(penner.InOutSine)
	ExpoIn      = FromTween(penner.InExpo)
	ExpoOut     = FromTween(penner.OutExpo)
	ExpoInOut   = FromTween(penner.InOutExpo)
	CircIn      = FromTween(penner.InCirc)
	CircOut     = FromTween(penner.OutCirc)
	CircInOut   = FromTween(penner.InOutCirc)
	BounceIn    = FromTween(penner.InBounce)
	BounceOut   = FromTween(penner.OutBounce)
	BounceInOut = FromTween(penner.InOutBounce)
	ElasticIn   = FromTween(penner.InElastic)
	ElasticOut  = FromTween(penner.OutElastic)
)

// powers maps power curves power1…power4 (and their aliases) to tween
// functions for in, out and inOut.
var powers = map[string][3]penner.TweenFunc{
	"power1": {penner.InQuad, penner.OutQuad, penner.InOutQuad},
	"quad":   {penner.InQuad, penner.OutQuad, penner.InOutQuad},
	"power2": {penner.InCubic, penner.OutCubic, penner.InOutCubic},
	"cubic":  {penner.InCubic, penner.OutCubic, penner.InOutCubic},
	"power3": {penner.InQuart, penner.OutQuart, penner.InOutQuart},
	"quart":  {penner.InQuart, penner.OutQuart, penner.InOutQuart},
	"power4": {penner.InQuint, penner.OutQuint, penner.InOutQuint},
	"quint":  {penner.InQuint, penner.OutQuint, penner.InOutQuint},
	"strong": {penner.InQuint, penner.OutQuint, penner.InOutQuint},
}

var named = map[string][3]Curve{
	"sine":    {SineIn, SineOut, SineInOut},
	"expo":    {ExpoIn, ExpoOut, ExpoInOut},
	"circ":    {CircIn, CircOut, CircInOut},
	"bounce":  {BounceIn, BounceOut, BounceInOut},
	"elastic": {ElasticIn, ElasticOut, FromTween(penner.InOutElastic)},
}

// Named resolves a curve by name. Names have the form "family.direction",
// optionally with a parameter for the back family:
//
//	expo.out   sine.inOut   power3.in   back.out(1.7)   bounce.out
//
// "none" and "linear" denote the linear curve. A family without a direction
// defaults to ".out". The empty name resolves to "power1.out".
func Named(name string) (Curve, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "":
		name = "power1.out"
	case "none", "linear":
		return Linear, nil
	}
	family, dir, param, err := split(name)
	if err != nil {
		return nil, err
	}
	k := 1
	switch dir {
	case "in":
		k = 0
	case "out", "":
		k = 1
	case "inout":
		k = 2
	default:
		return nil, core.Error(core.EINVALID, "unknown easing direction %q in %q", dir, name)
	}
	if family == "back" {
		s := DefaultOvershoot
		if param != "" {
			if s, err = strconv.ParseFloat(param, 64); err != nil {
				return nil, core.WrapError(err, core.EINVALID, "invalid overshoot in easing %q", name)
			}
		}
		return [3]Curve{BackIn(s), BackOut(s), BackInOut(s)}[k], nil
	}
	if param != "" {
		return nil, core.Error(core.EINVALID, "easing %q does not take a parameter", name)
	}
	if fs, ok := powers[family]; ok {
		return FromTween(fs[k]), nil
	}
	if cs, ok := named[family]; ok {
		return cs[k], nil
	}
	return nil, core.Error(core.EINVALID, "unknown easing %q", name)
}

// MustNamed is like Named but panics for unknown names. It is intended for
// curve names fixed at compile time.
func MustNamed(name string) Curve {
	c, err := Named(name)
	if err != nil {
		panic(err)
	}
	return c
}

func split(name string) (family, dir, param string, err error) {
	if open := strings.IndexByte(name, '('); open >= 0 {
		if !strings.HasSuffix(name, ")") {
			return "", "", "", core.Error(core.EINVALID, "unbalanced parameter in easing %q", name)
		}
		param = strings.TrimSpace(name[open+1 : len(name)-1])
		name = name[:open]
	}
	family = name
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		family, dir = name[:dot], strings.ToLower(name[dot+1:])
	}
	return strings.ToLower(family), dir, param, nil
}

func clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
