package timeline

import (
	"math"

	"github.com/npillmayer/kinetype/engine/glyph"
	"github.com/npillmayer/kinetype/engine/motion/ease"
)

// Value is a start or end value of an interpolation. It is either absolute
// or relative to the glyph's rest pose.
type Value struct {
	relative bool
	v        float64
}

// Abs is an absolute value.
func Abs(v float64) Value {
	return Value{v: v}
}

// Rest is a value relative to the rest pose of a glyph: Rest(-120) for
// field Y is 120 pixels above the glyph's layout position.
func Rest(offset float64) Value {
	return Value{relative: true, v: offset}
}

// AtRest is the rest value of a field.
func AtRest() Value {
	return Rest(0)
}

// Resolve computes the value for a field of glyph g.
func (v Value) Resolve(g *glyph.Glyph, f glyph.Field) float64 {
	if !v.relative {
		return v.v
	}
	if v.v == 0 {
		return g.Rest(f) // exact, no rounding through addition
	}
	return g.Rest(f) + v.v
}

// Prop is the interpolation of a single glyph field. If From is nil, the
// start value is the live value at the moment the segment starts.
type Prop struct {
	Field glyph.Field
	From  *Value
	To    Value
}

// To creates a property interpolating from the live value to `to`.
func To(f glyph.Field, to Value) Prop {
	return Prop{Field: f, To: to}
}

// FromTo creates a property interpolating between explicit values.
func FromTo(f glyph.Field, from, to Value) Prop {
	return Prop{Field: f, From: &from, To: to}
}

// Hook is called on segment events. Writes to set are rejected once the
// set has been retired.
type Hook func(set *glyph.Set)

// Segment interpolates fields of a group of glyphs over a span of time
// within a timeline.
//
// A segment with Duration 0 is a call: it runs its OnComplete hook once the
// timeline reaches At.
type Segment struct {
	Targets    []int      // glyph indices
	Props      []Prop     // fields to interpolate
	At         float64    // start, in seconds from the start of the timeline
	Duration   float64    // length of one iteration, in seconds
	Ease       ease.Curve // nil is linear
	Repeat     int        // additional iterations; -1 repeats forever
	Yoyo       bool       // reverse direction on every other iteration
	OnRepeat   Hook       // called whenever a new iteration starts
	OnComplete Hook       // called when the last iteration ends

	from      [][]float64 // captured start values, per target and prop
	to        [][]float64 // resolved end values, per target and prop
	captured  bool
	rendered  bool
	last      float64 // last rendered local time, clamped
	completed bool
}

// Total returns the length of all iterations, +Inf for infinite repeats.
func (seg *Segment) Total() float64 {
	if seg.Repeat < 0 {
		return math.Inf(1)
	}
	return seg.Duration * float64(seg.Repeat+1)
}

// End returns the time the segment ends within its timeline.
func (seg *Segment) End() float64 {
	return seg.At + seg.Total()
}

func (seg *Segment) capture(set *glyph.Set) {
	seg.from = make([][]float64, len(seg.Targets))
	seg.to = make([][]float64, len(seg.Targets))
	for k, i := range seg.Targets {
		if i < 0 || i >= set.Len() {
			continue
		}
		g := set.At(i)
		seg.from[k] = make([]float64, len(seg.Props))
		seg.to[k] = make([]float64, len(seg.Props))
		for j, p := range seg.Props {
			if p.From == nil {
				seg.from[k][j] = g.Get(p.Field)
			} else {
				seg.from[k][j] = p.From.Resolve(&g, p.Field)
			}
			seg.to[k][j] = p.To.Resolve(&g, p.Field)
		}
	}
	seg.captured = true
}

// iteration splits a local time into iteration index and linear progress,
// taking yoyo into account.
func (seg *Segment) iteration(tt float64) (int, float64) {
	if seg.Duration <= 0 {
		return 0, 1
	}
	if tt >= seg.Total() {
		n := seg.Repeat
		p := 1.0
		if seg.Yoyo && n%2 == 1 {
			p = 0
		}
		return n, p
	}
	n := int(math.Floor(tt / seg.Duration))
	p := (tt - float64(n)*seg.Duration) / seg.Duration
	if seg.Yoyo && n%2 == 1 {
		p = 1 - p
	}
	return n, p
}

// render brings the segment to local time tt. It reports whether anything
// has been written or any hook has been called. Writes failing because of
// a retired set are returned as an error.
func (seg *Segment) render(set *glyph.Set, tt float64, forward bool) (bool, error) {
	if tt < 0 && !seg.rendered {
		return false, nil
	}
	clamped := math.Max(0, math.Min(tt, seg.Total()))
	if seg.rendered && clamped == seg.last {
		return false, nil
	}
	if !seg.captured {
		seg.capture(set)
	}
	prevIter, _ := seg.iteration(seg.last)
	if !seg.rendered {
		prevIter = 0
	}
	iter, p := seg.iteration(clamped)
	seg.rendered, seg.last = true, clamped
	if err := seg.write(set, p); err != nil {
		return true, err
	}
	if forward && seg.OnRepeat != nil {
		for n := prevIter; n < iter; n++ {
			seg.OnRepeat(set)
		}
	}
	if clamped < seg.Total() {
		seg.completed = false
	} else if forward && !seg.completed {
		seg.completed = true
		if seg.OnComplete != nil {
			seg.OnComplete(set)
		}
	}
	return true, nil
}

func (seg *Segment) write(set *glyph.Set, p float64) error {
	if len(seg.Props) == 0 {
		return nil
	}
	e := seg.Ease
	if e == nil {
		e = ease.Linear
	}
	var eased float64
	switch p {
	case 0, 1:
	default:
		eased = e(p)
	}
	for k, i := range seg.Targets {
		if seg.from[k] == nil {
			continue
		}
		for j, prop := range seg.Props {
			from, to := seg.from[k][j], seg.to[k][j]
			var v float64
			switch p {
			case 0:
				v = from
			case 1:
				v = to
			default:
				v = from + (to-from)*eased
			}
			if err := set.Put(i, prop.Field, v); err != nil {
				return err
			}
		}
	}
	return nil
}
