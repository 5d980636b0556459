package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.font")
	defer teardown()
	//
	f := FallbackFont()
	require.NotNil(t, f)
	assert.Equal(t, "Go Sans", f.Fontname)
	assert.True(t, f == FallbackFont(), "fallback font expected to be a singleton")
}

func TestTypeCaseMeasures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.font")
	defer teardown()
	//
	tc, err := FallbackFont().PrepareCase(60)
	require.NoError(t, err)
	assert.Equal(t, 60.0, tc.PtSize())
	w := tc.Advance("W")
	i := tc.Advance("i")
	t.Logf("advance W = %.2f, i = %.2f", w, i)
	assert.Greater(t, w, i)
	assert.InDelta(t, tc.Advance("Wi"), w+i, 1.0)
	assert.Zero(t, tc.Advance(""))
	assert.Greater(t, tc.Ascent(), 0.0)
	assert.Less(t, tc.Ascent(), 60.0)
}

func TestTypeCaseSizeClamp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kinetype.font")
	defer teardown()
	//
	tc, err := FallbackFont().PrepareCase(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, tc.PtSize())
}

func TestNilTypeCase(t *testing.T) {
	var tc *TypeCase
	assert.Zero(t, tc.Advance("x"))
	assert.Zero(t, tc.Ascent())
}
