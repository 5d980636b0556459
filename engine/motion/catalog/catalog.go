package catalog

import (
	"math"
	"math/rand"

	"github.com/derekparker/trie"
	"github.com/npillmayer/kinetype/engine/glyph"
	"github.com/npillmayer/kinetype/engine/motion/ease"
	"github.com/npillmayer/kinetype/engine/motion/timeline"
)

// Rand is a source of uniformly distributed random numbers in [0,1).
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Catalog creates animation runs for glyph sets.
//
// A catalog is not safe for concurrent use.
type Catalog struct {
	rnd   Rand
	names *trie.Trie
}

// New creates a catalog drawing random perturbations from rnd. If rnd is
// nil, the global math/rand source is used.
func New(rnd Rand) *Catalog {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Catalog{rnd: rnd, names: newNameTrie()}
}

// Lookup resolves an animation identifier. Unknown identifiers resolve to
// Default.
func (c *Catalog) Lookup(id string) Kind {
	k, ok := Parse(id)
	if !ok {
		tracer().Infof("unknown animation %q, using default", id)
	}
	return k
}

// Suggest returns the identifiers starting with prefix (ignoring case), in
// menu order.
func (c *Catalog) Suggest(prefix string) []string {
	return suggest(c.names, prefix)
}

// Run is the set of timelines scheduled for one animation run.
type Run struct {
	Kind      Kind
	Timelines []*timeline.Timeline
}

// Cancel cancels every timeline of the run. Afterwards no glyph will be
// written on behalf of the run.
func (r *Run) Cancel() {
	if r == nil {
		return
	}
	for _, tl := range r.Timelines {
		tl.Cancel()
	}
}

// Done is true if every timeline of the run has completed or has been
// cancelled.
func (r *Run) Done() bool {
	if r == nil {
		return true
	}
	for _, tl := range r.Timelines {
		if !tl.Done() {
			return false
		}
	}
	return true
}

// Run starts animation id on set. The live pose of the glyphs is expected
// to be at identity (see glyph.Set.ResetLive). Run writes the initial state
// of the animation synchronously and returns the timelines which will
// perform it. onFrame is installed as frame observer of every timeline.
//
// The timelines are not scheduled: clients hand them to a
// timeline.Scheduler.
func (c *Catalog) Run(id string, set *glyph.Set, onFrame func()) *Run {
	return c.RunKind(c.Lookup(id), set, onFrame)
}

// RunKind is like Run for a resolved kind.
func (c *Catalog) RunKind(k Kind, set *glyph.Set, onFrame func()) *Run {
	run := &Run{Kind: k}
	if set.Len() == 0 || set.Retired() {
		return run
	}
	var tls []*timeline.Timeline
	if st, ok := staggers[k]; ok {
		tls = c.staggered(st, set)
	} else if h, ok := handlers[k]; ok {
		tls = h(c, set)
	} else {
		tls = c.staggered(staggers[Default], set)
	}
	for _, tl := range tls {
		tl.OnFrame = onFrame
	}
	run.Timelines = tls
	tracer().Debugf("animation %s on %d glyphs: %d timelines", k, set.Len(), len(tls))
	return run
}

// --- Staggered effects ------------------------------------------------------

// stagger describes effects which perturb every glyph and then interpolate
// it with a per-glyph start delay of index × step.
type stagger struct {
	prime    func(c *Catalog, g *glyph.Glyph) // initial state, may be nil
	props    func() []timeline.Prop
	duration float64
	ease     string
	step     float64
	repeat   int
	yoyo     bool
	separate bool               // one timeline per glyph instead of one for all
	settle   *stagger           // chained segment directly after the first
	done     func(*glyph.Glyph) // per-glyph completion, may be nil
}

func (c *Catalog) staggered(st stagger, set *glyph.Set) []*timeline.Timeline {
	if st.prime != nil {
		prime(set, func(_ int, g *glyph.Glyph) { st.prime(c, g) })
	}
	var tls []*timeline.Timeline
	var shared *timeline.Timeline
	if !st.separate {
		shared = timeline.New(set)
		tls = append(tls, shared)
	}
	for i := 0; i < set.Len(); i++ {
		tl, at := shared, float64(i)*st.step
		if st.separate {
			tl, at = timeline.New(set), 0
			tl.Delay = float64(i) * st.step
			tls = append(tls, tl)
		}
		seg := st.segment([]int{i}, at)
		if st.done != nil {
			seg.OnComplete = restoring(i, st.done)
		}
		tl.Add(seg)
		if st.settle != nil {
			tl.Append(st.settle.segment([]int{i}, 0), 0)
		}
	}
	return tls
}

func (st stagger) segment(targets []int, at float64) *timeline.Segment {
	return &timeline.Segment{
		Targets:  targets,
		Props:    st.props(),
		At:       at,
		Duration: st.duration,
		Ease:     ease.MustNamed(st.ease),
		Repeat:   st.repeat,
		Yoyo:     st.yoyo,
	}
}

func restoring(i int, f func(*glyph.Glyph)) timeline.Hook {
	return func(set *glyph.Set) {
		if err := set.Update(i, f); err != nil {
			tracer().Debugf("restore of glyph %d dropped: %v", i, err)
		}
	}
}

// prime writes the initial state of an animation.
func prime(set *glyph.Set, f func(i int, g *glyph.Glyph)) {
	for i := 0; i < set.Len(); i++ {
		i := i
		_ = set.Update(i, func(g *glyph.Glyph) { f(i, g) })
	}
}

// Shorthands for property lists.
var (
	to   = timeline.To
	rest = timeline.AtRest
	off  = timeline.Rest
	abs  = timeline.Abs
)

func props(ps ...timeline.Prop) func() []timeline.Prop {
	return func() []timeline.Prop { return ps }
}

var staggers = map[Kind]stagger{
	Default: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.Scale, g.Opacity = 0, 0 },
		props:    props(to(glyph.Scale, rest()), to(glyph.Opacity, rest())),
		duration: 0.45, ease: "power2.out", step: 0.02,
	},
	FlyIn: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.Y, g.Opacity = g.BaseY-120, 0 },
		props:    props(to(glyph.Y, rest()), to(glyph.Opacity, rest())),
		duration: 0.6, ease: "expo.out", step: 0.04,
	},
	Bounce: {
		prime: func(_ *Catalog, g *glyph.Glyph) {
			g.Y, g.Scale, g.Opacity = g.BaseY-60, 0.9, 0
		},
		props:    props(to(glyph.Y, rest()), to(glyph.Scale, rest()), to(glyph.Opacity, rest())),
		duration: 0.8, ease: "bounce.out", step: 0.03,
	},
	Rotate: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.Rot, g.Opacity = -math.Pi/2, 0 },
		props:    props(to(glyph.Rot, rest()), to(glyph.Opacity, rest())),
		duration: 0.6, ease: "back.out(1.4)", step: 0.05,
	},
	Fade: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.Opacity = 0 },
		props:    props(to(glyph.Opacity, rest())),
		duration: 0.45, ease: "sine.out", step: 0.02,
	},
	Scale: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.Scale, g.Opacity = 0, 0 },
		props:    props(to(glyph.Scale, rest()), to(glyph.Opacity, rest())),
		duration: 0.5, ease: "back.out(2)", step: 0.03,
	},
	WaveFromLeft: {
		props:    props(to(glyph.Y, off(20))),
		duration: 0.6, ease: "sine.inOut", step: 0.03, separate: true,
		repeat: 1, yoyo: true,
		done: (*glyph.Glyph).Restore,
	},
	LetterFlip: {
		props:    props(to(glyph.Rot, off(2*math.Pi))),
		duration: 1, ease: "back.inOut(2)", step: 0.06, separate: true,
		done: func(g *glyph.Glyph) { g.Rot = g.BaseRot },
	},
	SplitTextEffect: {
		prime: func(_ *Catalog, g *glyph.Glyph) {
			g.Y, g.Rot, g.Scale, g.Opacity = g.BaseY+80, math.Pi, 0, 0
		},
		props: props(
			timeline.FromTo(glyph.Y, off(80), rest()),
			timeline.FromTo(glyph.Rot, abs(math.Pi), rest()),
			timeline.FromTo(glyph.Scale, abs(0), rest()),
			timeline.FromTo(glyph.Opacity, abs(0), rest()),
		),
		duration: 0.45, ease: "back.out(1.7)", step: 0.45 * 0.5, separate: true,
	},
	Pan: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.X, g.Opacity = g.BaseX-200, 0 },
		props:    props(to(glyph.X, rest()), to(glyph.Opacity, rest())),
		duration: 0.85, ease: "power2.out", step: 0.02,
	},
	Slide: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.X, g.Opacity = g.BaseX-200, 0 },
		props:    props(to(glyph.X, rest()), to(glyph.Opacity, rest())),
		duration: 0.6, ease: "power3.out", step: 0.02, separate: true,
	},
	Drift: {
		prime: func(c *Catalog, g *glyph.Glyph) {
			g.X = g.BaseX + (c.rnd.Float64()-0.5)*120
			g.Y, g.Opacity, g.Scale = g.BaseY+80, 0, 0.95
		},
		props: props(to(glyph.X, rest()), to(glyph.Y, rest()),
			to(glyph.Opacity, rest()), to(glyph.Scale, rest())),
		duration: 0.9, ease: "sine.out", step: 0.03,
	},
	Pop: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.Scale, g.Opacity = 0.2, 0 },
		props:    props(to(glyph.Scale, abs(1.15)), to(glyph.Opacity, rest())),
		duration: 0.28, ease: "back.out(3)", step: 0.02,
		settle: &stagger{
			props:    props(to(glyph.Scale, rest())),
			duration: 0.18, ease: "sine.out",
		},
	},
	Tumble: {
		prime: func(c *Catalog, g *glyph.Glyph) {
			g.Rot = math.Pi
			if c.rnd.Float64() > 0.5 {
				g.Rot = -math.Pi
			}
			g.Opacity = 0
		},
		props:    props(to(glyph.Rot, rest()), to(glyph.Opacity, rest()), to(glyph.Y, rest())),
		duration: 0.8, ease: "circ.out", step: 0.03,
	},
	Stomp: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.Y, g.Opacity = g.BaseY-200, 0 },
		props:    props(to(glyph.Y, off(10)), to(glyph.Opacity, rest())),
		duration: 0.35, ease: "power4.out", step: 0.03,
		settle: &stagger{
			props:    props(to(glyph.Y, rest())),
			duration: 0.28, ease: "bounce.out",
		},
	},
	Roll: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.Rot, g.Opacity = math.Pi, 0 },
		props:    props(to(glyph.Rot, rest()), to(glyph.Opacity, rest())),
		duration: 0.7, ease: "expo.out", step: 0.03,
	},
	CharReveal: {
		prime:    func(_ *Catalog, g *glyph.Glyph) { g.Opacity, g.Scale = 0, 0.6 },
		props:    props(to(glyph.Opacity, rest()), to(glyph.Scale, rest())),
		duration: 0.28, ease: "back.out(2)", step: 0.04,
	},
	FadeOut: {
		props:    props(to(glyph.Opacity, abs(0))),
		duration: 0.45, ease: "sine.in", step: 0.02,
	},
	SlideOut: {
		props:    props(to(glyph.X, off(200)), to(glyph.Opacity, abs(0))),
		duration: 0.6, ease: "power2.in", step: 0.02,
	},
	Shrink: {
		props:    props(to(glyph.Scale, abs(0)), to(glyph.Opacity, abs(0))),
		duration: 0.45, ease: "back.in(2)", step: 0.02,
	},
	MaskWipeOut: {
		props:    props(to(glyph.Y, off(60)), to(glyph.Opacity, abs(0))),
		duration: 0.45, ease: "power2.in", step: 0.02,
	},
}
