package animator

import (
	"context"
	"math"
	"sync"

	"github.com/npillmayer/kinetype/core"
	"github.com/npillmayer/kinetype/core/font"
	"github.com/npillmayer/kinetype/core/locate/resources"
	"github.com/npillmayer/kinetype/engine/compositor"
	"github.com/npillmayer/kinetype/engine/glyph"
	"github.com/npillmayer/kinetype/engine/motion/catalog"
	"github.com/npillmayer/kinetype/engine/motion/timeline"
)

// Resolver resolves a font family at a pixel size.
type Resolver func(family string, size float64) resources.TypeCasePromise

// Option configures an animator.
type Option func(*Animator)

// WithRand makes random perturbations reproducible.
func WithRand(rnd catalog.Rand) Option {
	return func(a *Animator) {
		a.rnd = rnd
	}
}

// WithResolver replaces font resolution via resources.ResolveTypeCase.
func WithResolver(r Resolver) Option {
	return func(a *Animator) {
		a.resolve = r
	}
}

// Animator is the entry point for hosts. It owns the glyphs of the current
// layout generation, the animation run operating on them and the scheduler
// driving the run.
//
// All methods are safe for concurrent use. Frame callbacks (redraws) happen
// synchronously within Tick.
type Animator struct {
	mu         sync.Mutex
	conf       Config
	rnd        catalog.Rand
	resolve    Resolver
	catalog    *catalog.Catalog
	comp       *compositor.Compositor
	sched      *timeline.Scheduler
	set        *glyph.Set
	generation uint64
	run        *catalog.Run
	text       string
	animation  string
	font       string
	redrawErr  error
}

// New creates an animator drawing to surface and texture. Both may be nil,
// in which case nothing is drawn.
func New(surface compositor.Surface, texture compositor.Texture, conf Config, opts ...Option) *Animator {
	a := &Animator{
		conf:      conf,
		resolve:   resources.ResolveTypeCase,
		sched:     timeline.NewScheduler(),
		text:      conf.Text,
		animation: conf.Animation,
		font:      conf.Font,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.catalog = catalog.New(a.rnd)
	var crnd compositor.Rand
	if a.rnd != nil {
		crnd = a.rnd
	}
	a.comp = compositor.New(surface, texture, conf.CompositorOptions(), crnd)
	return a
}

// ApplyAnimation lays out text with a font family and starts an animation
// on the resulting glyphs. The previous animation run is cancelled before,
// and the glyphs of the previous layout are retired.
//
// Unknown animation identifiers select the default animation. If the font
// family is not available, the fallback font is used and an error of code
// core.EMISSING is returned; the animation is started nevertheless.
func (a *Animator) ApplyAnimation(text, animationID, family string) error {
	tc, fontErr := a.typeCase(family)
	if fontErr != nil {
		tracer().Infof("%v", fontErr)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.run.Cancel()
	a.sched.CancelAll()
	a.text, a.animation, a.font = text, animationID, family
	if a.set != nil {
		a.set.Retire()
	}
	a.generation++
	glyphs := a.conf.Layout.Layout(text, tc, a.maxWidth())
	a.set = glyph.NewSet(glyphs, a.generation)
	a.set.ResetLive()
	a.comp.SetFont(tc.ScalableFontParent())
	a.run = a.catalog.Run(animationID, a.set, a.redraw)
	a.redraw()
	a.sched.Add(a.run.Timelines...)
	tracer().Infof("generation %d: %q as %s, %d glyphs", a.generation, text, a.run.Kind,
		a.set.Len())
	if a.redrawErr != nil {
		return a.redrawErr
	}
	return fontErr
}

// Replay starts the current animation again.
func (a *Animator) Replay() error {
	text, anim, family := a.Settings()
	return a.ApplyAnimation(text, anim, family)
}

// typeCase resolves the font for layout. The type case is never nil.
func (a *Animator) typeCase(family string) (*font.TypeCase, error) {
	tc, err := a.resolve(family, a.conf.FontSize).TypeCase()
	if tc == nil {
		var ferr error
		if tc, ferr = font.FallbackFont().PrepareCase(a.conf.FontSize); ferr != nil {
			panic(ferr) // the embedded fallback font is always usable
		}
		if err == nil {
			err = core.Error(core.EMISSING, "no type case for font %s", family)
		}
	}
	return tc, err
}

func (a *Animator) maxWidth() float64 {
	if s := a.comp.Surface(); s != nil {
		return a.conf.Layout.MaxWidth(float64(s.Width()))
	}
	return math.Inf(1)
}

// redraw is the frame observer of all timelines. It is called with a.mu held.
func (a *Animator) redraw() {
	a.redrawErr = a.comp.Redraw(a.set)
	if a.redrawErr != nil {
		tracer().Errorf("redraw of generation %d: %v", a.generation, a.redrawErr)
	}
}

// Tick advances the current animation by dt seconds and returns the number
// of redraws it caused.
func (a *Animator) Tick(dt float64) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sched.Tick(dt)
}

// Loop ticks the animator at the configured frame rate until ctx is done.
// afterTick, if non-nil, is called after every tick outside of the lock.
func (a *Animator) Loop(ctx context.Context, clock timeline.Clock, afterTick func(redraws int)) error {
	return timeline.Loop(ctx, clock, a.conf.FPS, func(dt float64) {
		n := a.Tick(dt)
		if afterTick != nil {
			afterTick(n)
		}
	})
}

// Attach sets the surface and texture to draw to and redraws.
func (a *Animator) Attach(surface compositor.Surface, texture compositor.Texture) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.comp.Attach(surface, texture)
	a.redraw()
	return a.redrawErr
}

// Active returns the number of unfinished timelines.
func (a *Animator) Active() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sched.Active()
}

// Glyphs returns a copy of the current glyphs.
func (a *Animator) Glyphs() []glyph.Glyph {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.set.Glyphs()
}

// Generation returns the current layout generation, starting at 1 for the
// first call of ApplyAnimation.
func (a *Animator) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

// Kind returns the kind of the current animation run.
func (a *Animator) Kind() catalog.Kind {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.run == nil {
		return catalog.Default
	}
	return a.run.Kind
}

// Settings returns the text, animation and font family of the most recent
// call to ApplyAnimation, or the configured defaults.
func (a *Animator) Settings() (text, animation, family string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.text, a.animation, a.font
}

// Catalog returns the animation catalog.
func (a *Animator) Catalog() *catalog.Catalog {
	return a.catalog
}

// Config returns the settings of the animator.
func (a *Animator) Config() Config {
	return a.conf
}
