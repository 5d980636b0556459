package catalog

import (
	"testing"

	"github.com/npillmayer/kinetype/engine/glyph"
	"github.com/npillmayer/kinetype/engine/motion/timeline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func hello() *glyph.Set {
	return glyph.NewSet([]glyph.Glyph{
		glyph.New("H", 50, 20), glyph.New("e", 80, 20), glyph.New("l", 100, 20),
		glyph.New("l", 50, 90), glyph.New("o", 120, 90),
	}, 1)
}

// play ticks the timelines of a run until it is done, at most for
// `seconds`. It returns the number of frame notifications.
func play(run *Run, seconds float64) int {
	sched := timeline.NewScheduler()
	sched.Add(run.Timelines...)
	frames := 0
	for t := 0.0; t < seconds && sched.Active() > 0; t += 0.05 {
		frames += sched.Tick(0.05)
	}
	return frames
}

func TestNamesInMenuOrder(t *testing.T) {
	names := Names()
	require.Len(t, names, 32)
	assert.Equal(t, "FlyIn", names[0])
	assert.Equal(t, "WaveFromLeft", names[5])
	assert.Equal(t, "NeonGlow", names[31])
	assert.NotContains(t, names, "Default")
	assert.Equal(t, "Revert", SplitTextEffect.Label())
	assert.Equal(t, "Pop", Pop.Label())
	assert.Equal(t, Exit, MaskWipeOut.Group())
	assert.Equal(t, Fallback, Default.Group())
	k, ok := Parse("Echo")
	assert.True(t, ok)
	assert.Equal(t, Echo, k)
}

func TestSuggest(t *testing.T) {
	cat := New(nil)
	assert.Equal(t, []string{"Slide", "SlideOut"}, cat.Suggest("sl"))
	assert.Equal(t, []string{"FlyIn"}, cat.Suggest("FLY"))
	assert.Equal(t, []string{"Scale", "Scramble", "SplitTextEffect", "Slide", "Stomp",
		"Shake", "SlideOut", "Shrink"}, cat.Suggest("s"))
	assert.Empty(t, cat.Suggest("zz"))
}

func TestUnknownAnimationPopsIn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.motion")
	defer teardown()
	//
	set := hello()
	run := New(fixedRand(0.5)).Run("Nonexistent", set, nil)
	assert.Equal(t, Default, run.Kind)
	for _, g := range set.Glyphs() {
		assert.Equal(t, 0.0, g.Scale)
		assert.Equal(t, 0.0, g.Opacity)
	}
	play(run, 5)
	require.True(t, run.Done())
	for _, g := range set.Glyphs() {
		assert.Equal(t, 1.0, g.Scale)
		assert.Equal(t, 1.0, g.Opacity)
	}
}

func TestFlyInEndToEnd(t *testing.T) {
	set := glyph.NewSet([]glyph.Glyph{glyph.New("H", 50, 20), glyph.New("i", 85, 20)}, 1)
	frames := 0
	run := New(nil).Run("FlyIn", set, func() { frames++ })
	for _, g := range set.Glyphs() {
		assert.Equal(t, 0.0, g.Opacity)
		assert.Equal(t, g.BaseY-120, g.Y)
	}
	play(run, 5)
	require.True(t, run.Done())
	assert.Greater(t, frames, 10)
	for _, g := range set.Glyphs() {
		assert.Equal(t, 1.0, g.Opacity)
		assert.True(t, g.Y == g.BaseY)
	}
}

func TestSecondRunFreezesFirst(t *testing.T) {
	set := hello()
	cat := New(fixedRand(0.3))
	first, second := 0, 0
	run1 := cat.Run("Breathe", set, func() { first++ })
	sched := timeline.NewScheduler()
	sched.Add(run1.Timelines...)
	for i := 0; i < 10; i++ {
		sched.Tick(0.05)
	}
	require.Equal(t, 10, first)
	run1.Cancel()
	set.ResetLive()
	run2 := cat.Run("Fade", set, func() { second++ })
	sched.Add(run2.Timelines...)
	for i := 0; i < 10; i++ {
		sched.Tick(0.05)
	}
	assert.Equal(t, 10, first)
	assert.Equal(t, 10, second)
	assert.True(t, run1.Done())
}

func TestEmptySet(t *testing.T) {
	cat := New(nil)
	run := cat.Run("FlyIn", glyph.NewSet(nil, 1), nil)
	assert.Empty(t, run.Timelines)
	assert.True(t, run.Done())
	var none *Run
	none.Cancel()
	assert.True(t, none.Done())
}

func TestEveryKindSettles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.motion")
	defer teardown()
	//
	cat := New(fixedRand(0.75))
	for _, k := range Kinds() {
		set := hello()
		run := cat.RunKind(k, set, nil)
		require.NotEmpty(t, run.Timelines, "%s", k)
		play(run, 20)
		if k == Breathe {
			assert.False(t, run.Done())
			for _, g := range set.Glyphs() {
				assert.GreaterOrEqual(t, g.Scale, 1.0)
				assert.LessOrEqual(t, g.Scale, 1.04)
			}
			continue
		}
		require.True(t, run.Done(), "%s", k)
		for _, g := range set.Glyphs() {
			assert.Equal(t, g.BaseChar, g.Char, "%s", k)
			switch k {
			case FadeOut:
				assert.Equal(t, 0.0, g.Opacity)
			case SlideOut:
				assert.Equal(t, g.BaseX+200, g.X)
				assert.Equal(t, 0.0, g.Opacity)
			case Shrink:
				assert.Equal(t, 0.0, g.Scale)
			case MaskWipeOut:
				assert.Equal(t, g.BaseY+60, g.Y)
			default:
				assert.True(t, g.X == g.BaseX && g.Y == g.BaseY, "%s: %s", k, g)
				assert.Equal(t, 1.0, g.Scale, "%s", k)
				assert.Equal(t, 0.0, g.Rot, "%s", k)
				assert.Equal(t, 1.0, g.Opacity, "%s", k)
			}
		}
	}
}

func TestStochasticPerturbation(t *testing.T) {
	set := hello()
	run := New(fixedRand(0.75)).Run("Shake", set, nil)
	tl := run.Timelines[0]
	assert.InDelta(t, 0.55, tl.Duration(), 1e-12)
	tl.Advance(0.06)
	for _, g := range set.Glyphs() {
		assert.InDelta(t, g.BaseX+5, g.X, 1e-9)
		assert.Equal(t, g.BaseY, g.Y)
	}
	play(run, 1)
	for _, g := range set.Glyphs() {
		assert.Equal(t, g.BaseX, g.X)
	}
	//
	set = hello()
	run = New(fixedRand(0.25)).Run("Flicker", set, nil)
	run.Timelines[0].Advance(0.1)
	assert.Equal(t, 0.2, set.At(2).Opacity)
	play(run, 1)
	assert.Equal(t, 1.0, set.At(2).Opacity)
}

func TestScramble(t *testing.T) {
	set := hello()
	run := New(fixedRand(0)).Run("Scramble", set, nil)
	tl := run.Timelines[0]
	assert.InDelta(t, 5*0.8, tl.Duration(), 1e-9)
	tl.Advance(0.25)
	assert.Equal(t, "!", set.At(0).Char)
	assert.Equal(t, "e", set.At(1).Char)
	tl.Advance(0.8)
	assert.Equal(t, "H", set.At(0).Char)
	assert.Equal(t, "!", set.At(1).Char)
}

func TestTypewriter(t *testing.T) {
	set := hello()
	run := New(nil).Run("Typewriter", set, nil)
	for _, g := range set.Glyphs() {
		assert.Equal(t, "", g.Char)
	}
	run.Timelines[0].Advance(0.07)
	assert.Equal(t, "H", set.At(0).Char)
	assert.Equal(t, "e", set.At(1).Char)
	assert.Equal(t, "", set.At(2).Char)
}

func TestGroupedEntrances(t *testing.T) {
	set := hello()
	run := New(nil).Run("MaskedLines", set, nil)
	require.Len(t, run.Timelines, 2)
	assert.Equal(t, 0.18, run.Timelines[1].Delay)
	assert.Equal(t, set.At(3).BaseY+30, set.At(3).Y)
	//
	set = hello()
	run = New(nil).Run("WordReveal", set, nil)
	require.Len(t, run.Timelines, 1)
	segs := run.Timelines[0].Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, []int{0, 1, 2, 3}, segs[0].Targets)
	assert.Equal(t, []int{4}, segs[1].Targets)
	assert.Equal(t, 0.92, set.At(4).Scale)
}

func TestPerturbedStartUsesRand(t *testing.T) {
	set := hello()
	New(fixedRand(0.75)).Run("Drift", set, nil)
	assert.InDelta(t, set.At(0).BaseX+30, set.At(0).X, 1e-9)
	assert.Equal(t, set.At(0).BaseY+80, set.At(0).Y)
	//
	set = hello()
	New(fixedRand(0.75)).Run("Tumble", set, nil)
	assert.Less(t, set.At(0).Rot, 0.0)
	//
	set = hello()
	New(fixedRand(0.5)).Run("Collision", set, nil)
	assert.Equal(t, set.At(1).BaseX+30, set.At(1).X)
	assert.Equal(t, 0.9, set.At(1).Opacity)
	assert.InDelta(t, 1.1, set.At(1).Scale, 1e-9)
}
