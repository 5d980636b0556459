package ease

import (
	"testing"

	"github.com/npillmayer/kinetype/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedCurvesHitEndpoints(t *testing.T) {
	for _, name := range []string{
		"", "none", "linear", "power1.out", "power2.in", "power3.inOut", "power4.out",
		"sine.in", "sine.out", "sine.inOut", "expo.out", "expo.in", "circ.out",
		"bounce.out", "bounce.in", "back.out(1.4)", "back.in(2)", "back.inOut(2)",
		"back.out", "elastic.out", "expo",
	} {
		c, err := Named(name)
		require.NoError(t, err, name)
		assert.Equal(t, 0.0, c(0), "%q at 0", name)
		assert.InDelta(t, 1.0, c(1), 1e-6, "%q at 1", name)
	}
}

func TestUnknownCurves(t *testing.T) {
	for _, name := range []string{"wobble.out", "sine.sideways", "back.out(x)", "sine.out(2)", "back.out(2"} {
		_, err := Named(name)
		assert.Error(t, err, name)
		assert.Equal(t, core.EINVALID, core.Code(err), name)
	}
	assert.Panics(t, func() { MustNamed("wobble") })
}

func TestBackOvershoot(t *testing.T) {
	c := BackOut(2)
	peak := 0.0
	for p := 0.0; p <= 1.0; p += 0.01 {
		if v := c(p); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 1.0, "back.out must overshoot")
	assert.Less(t, BackIn(2)(0.2), 0.0, "back.in must pull back")
	assert.InDelta(t, 0.5, BackInOut(2)(0.5), 1e-9)
}

func TestClamping(t *testing.T) {
	assert.Equal(t, 0.0, SineOut(-1))
	assert.Equal(t, 1.0, SineOut(2))
	assert.Equal(t, 0.25, Linear(0.25))
}

func TestMonotoneCurves(t *testing.T) {
	for _, name := range []string{"sine.out", "expo.out", "power2.out", "circ.out"} {
		c := MustNamed(name)
		prev := -1.0
		for p := 0.0; p <= 1.0; p += 0.05 {
			v := c(p)
			assert.GreaterOrEqual(t, v, prev, "%s not monotone at %.2f", name, p)
			prev = v
		}
	}
}
