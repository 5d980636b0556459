package catalog

import (
	"math"

	"github.com/npillmayer/kinetype/engine/glyph"
	"github.com/npillmayer/kinetype/engine/motion/ease"
	"github.com/npillmayer/kinetype/engine/motion/timeline"
)

// ScrambleAlphabet is the set of characters Scramble draws from.
const ScrambleAlphabet = "!@#$%^&*()_+1234567890ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

type handler func(c *Catalog, set *glyph.Set) []*timeline.Timeline

var handlers = map[Kind]handler{
	MaskedLines: (*Catalog).maskedLines,
	WordReveal:  (*Catalog).wordReveal,
	Collision:   (*Catalog).collision,
	Scramble:    (*Catalog).scramble,
	Typewriter:  (*Catalog).typewriter,
	Pulse:       (*Catalog).pulse,
	Breathe:     (*Catalog).breathe,
	NeonGlow:    (*Catalog).neonGlow,
	Jitter:      (*Catalog).jitter,
	Shake:       (*Catalog).shake,
	Flicker:     (*Catalog).flicker,
	Echo:        (*Catalog).echo,
}

func all(set *glyph.Set) []int {
	ix := make([]int, set.Len())
	for i := range ix {
		ix[i] = i
	}
	return ix
}

// --- Grouped entrances ------------------------------------------------------

func (c *Catalog) maskedLines(set *glyph.Set) []*timeline.Timeline {
	prime(set, func(_ int, g *glyph.Glyph) { g.Opacity, g.Y = 0, g.BaseY+30 })
	var tls []*timeline.Timeline
	for l, line := range set.Lines() {
		tl := timeline.New(set)
		tl.Delay = float64(l) * 0.18
		for k, i := range line {
			tl.Add(&timeline.Segment{
				Targets:  []int{i},
				Props:    []timeline.Prop{to(glyph.Opacity, rest()), to(glyph.Y, rest())},
				At:       float64(k) * 0.04,
				Duration: 0.55,
				Ease:     ease.ExpoOut,
			})
		}
		tls = append(tls, tl)
	}
	return tls
}

func (c *Catalog) wordReveal(set *glyph.Set) []*timeline.Timeline {
	prime(set, func(_ int, g *glyph.Glyph) { g.Opacity, g.Scale = 0, 0.92 })
	tl := timeline.New(set)
	for w, word := range set.Words() {
		tl.Add(&timeline.Segment{
			Targets:  word,
			Props:    []timeline.Prop{to(glyph.Opacity, rest()), to(glyph.Scale, rest())},
			At:       float64(w) * 0.12,
			Duration: 0.6,
			Ease:     ease.MustNamed("power2.out"),
		})
	}
	return []*timeline.Timeline{tl}
}

// collision pushes glyphs outwards from the first glyph and lets them
// settle back.
func (c *Catalog) collision(set *glyph.Set) []*timeline.Timeline {
	x0 := set.At(0).BaseX
	prime(set, func(_ int, g *glyph.Glyph) {
		dx := g.BaseX - x0 + (c.rnd.Float64()-0.5)*80
		dy := (c.rnd.Float64() - 0.5) * 80
		g.X, g.Y = g.BaseX+dx, g.BaseY+dy
		g.Opacity = 0.9
		g.Scale = 0.9 + c.rnd.Float64()*0.4
	})
	tl := timeline.New(set)
	for i := 0; i < set.Len(); i++ {
		tl.Add(&timeline.Segment{
			Targets: []int{i},
			Props: []timeline.Prop{to(glyph.X, rest()), to(glyph.Y, rest()),
				to(glyph.Scale, rest()), to(glyph.Opacity, rest())},
			At:       float64(i) * 0.01,
			Duration: 0.9,
			Ease:     ease.MustNamed("power4.out"),
		})
	}
	return []*timeline.Timeline{tl}
}

// --- Character mutation -----------------------------------------------------

// scramble shows random characters for every glyph in turn, then restores
// the glyph's own character.
func (c *Catalog) scramble(set *glyph.Set) []*timeline.Timeline {
	alphabet := []rune(ScrambleAlphabet)
	tl := timeline.New(set)
	for i := 0; i < set.Len(); i++ {
		i := i
		tl.Append(&timeline.Segment{
			Duration: 0.2,
			Repeat:   3,
			OnRepeat: func(set *glyph.Set) {
				r := alphabet[int(c.rnd.Float64()*float64(len(alphabet)))%len(alphabet)]
				_ = set.SetChar(i, string(r))
			},
			OnComplete: restoring(i, func(g *glyph.Glyph) { g.Char = g.BaseChar }),
		}, 0)
	}
	return []*timeline.Timeline{tl}
}

// typewriter blanks all glyphs and reveals them one by one, without
// interpolation.
func (c *Catalog) typewriter(set *glyph.Set) []*timeline.Timeline {
	prime(set, func(_ int, g *glyph.Glyph) { g.Char = "" })
	tl := timeline.New(set)
	for i := 0; i < set.Len(); i++ {
		tl.Add(&timeline.Segment{
			At:         float64(i) * 0.06,
			OnComplete: restoring(i, func(g *glyph.Glyph) { g.Char = g.BaseChar }),
		})
	}
	return []*timeline.Timeline{tl}
}

// --- Emphasis ---------------------------------------------------------------

func (c *Catalog) pulse(set *glyph.Set) []*timeline.Timeline {
	tl := timeline.New(set)
	tl.Repeat, tl.Yoyo = 1, true
	tl.Add(&timeline.Segment{
		Targets:  all(set),
		Props:    []timeline.Prop{to(glyph.Scale, abs(1.12))},
		Duration: 0.5,
		Ease:     ease.SineInOut,
	})
	return []*timeline.Timeline{tl}
}

func (c *Catalog) breathe(set *glyph.Set) []*timeline.Timeline {
	tl := timeline.New(set)
	tl.Repeat, tl.Yoyo = -1, true
	tl.Add(&timeline.Segment{
		Targets:  all(set),
		Props:    []timeline.Prop{to(glyph.Scale, abs(1.04))},
		Duration: 1.6,
		Ease:     ease.SineInOut,
	})
	return []*timeline.Timeline{tl}
}

// neonGlow pulses the scale of all glyphs twice in quick succession.
func (c *Catalog) neonGlow(set *glyph.Set) []*timeline.Timeline {
	tl := timeline.New(set)
	tl.Repeat, tl.Yoyo = 1, true
	targets := all(set)
	tl.Add(&timeline.Segment{
		Targets:  targets,
		Props:    []timeline.Prop{to(glyph.Scale, abs(1.06))},
		Duration: 0.18,
		Ease:     ease.MustNamed(""),
	})
	tl.Append(&timeline.Segment{
		Targets:  targets,
		Props:    []timeline.Prop{to(glyph.Scale, rest())},
		Duration: 0.18,
		Ease:     ease.MustNamed(""),
	}, 0)
	return []*timeline.Timeline{tl}
}

// echo fades glyphs in from the middle outwards.
func (c *Catalog) echo(set *glyph.Set) []*timeline.Timeline {
	prime(set, func(_ int, g *glyph.Glyph) { g.Opacity = 0.25 })
	mid := set.Len() / 2
	tl := timeline.New(set)
	for i := 0; i < set.Len(); i++ {
		dist := math.Abs(float64(i - mid))
		tl.Add(&timeline.Segment{
			Targets:  []int{i},
			Props:    []timeline.Prop{to(glyph.Opacity, rest())},
			At:       dist * 0.04,
			Duration: 0.5,
			Ease:     ease.SineOut,
		})
	}
	return []*timeline.Timeline{tl}
}

// --- Stochastic perturbation ------------------------------------------------

// perturb repeats a tick of length d n times. On every repeat f is applied
// to every glyph. When done, all glyphs are restored to their rest pose.
func (c *Catalog) perturb(set *glyph.Set, d float64, n int, f func(g *glyph.Glyph)) []*timeline.Timeline {
	tl := timeline.New(set).Add(&timeline.Segment{
		Duration: d,
		Repeat:   n,
		OnRepeat: func(set *glyph.Set) {
			prime(set, func(_ int, g *glyph.Glyph) { f(g) })
		},
		OnComplete: func(set *glyph.Set) {
			prime(set, func(_ int, g *glyph.Glyph) { g.Restore() })
		},
	})
	return []*timeline.Timeline{tl}
}

func (c *Catalog) jitter(set *glyph.Set) []*timeline.Timeline {
	return c.perturb(set, 0.04, 8, func(g *glyph.Glyph) {
		g.X = g.BaseX + (c.rnd.Float64()-0.5)*6
		g.Y = g.BaseY + (c.rnd.Float64()-0.5)*6
	})
}

func (c *Catalog) shake(set *glyph.Set) []*timeline.Timeline {
	return c.perturb(set, 0.05, 10, func(g *glyph.Glyph) {
		g.X = g.BaseX + (c.rnd.Float64()-0.5)*20
	})
}

func (c *Catalog) flicker(set *glyph.Set) []*timeline.Timeline {
	return c.perturb(set, 0.08, 8, func(g *glyph.Glyph) {
		g.Opacity = 0.2
		if c.rnd.Float64() > 0.5 {
			g.Opacity = 1
		}
	})
}
