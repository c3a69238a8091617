package scale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvetrack/solvetrack/internal/bucket"
)

const (
	testWidth  = 800.0
	testHeight = 400.0
)

var (
	testStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
)

func TestTimeScale_MapEndpoints(t *testing.T) {
	t.Parallel()

	s := NewTimeScale(testStart, testEnd, 0, testWidth)

	assert.InDelta(t, 0, s.Map(testStart), 1e-9)
	assert.InDelta(t, testWidth, s.Map(testEnd), 1e-9)
}

func TestTimeScale_Monotonic(t *testing.T) {
	t.Parallel()

	s := NewTimeScale(testStart, testEnd, 0, testWidth)

	prev := s.Map(testStart)

	for ts := testStart; !ts.After(testEnd); ts = ts.AddDate(0, 0, 3) {
		px := s.Map(ts)
		assert.GreaterOrEqual(t, px, prev)
		prev = px
	}
}

func TestTimeScale_InvertRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewTimeScale(testStart, testEnd, 0, testWidth)

	for _, px := range []float64{0, 123.5, 400, 799, testWidth} {
		got := s.Map(s.Invert(px))
		assert.InDelta(t, px, got, 1e-6)
	}
}

func TestTimeScale_DegenerateDomain(t *testing.T) {
	t.Parallel()

	s := NewTimeScale(testStart, testStart, 0, testWidth)

	// A collapsed domain must not produce NaN or Inf.
	px := s.Map(testStart)
	assert.InDelta(t, 0, px, 1e-9)

	inverted := s.Invert(testWidth)
	assert.False(t, inverted.IsZero())
}

func TestTimeScale_ReversedDomainNormalized(t *testing.T) {
	t.Parallel()

	s := NewTimeScale(testEnd, testStart, 0, testWidth)

	start, end := s.Domain()
	assert.Equal(t, testStart, start)
	assert.Equal(t, testEnd, end)
}

func TestTimeScale_Contains(t *testing.T) {
	t.Parallel()

	s := NewTimeScale(testStart, testEnd, 0, testWidth)

	assert.True(t, s.Contains(testStart))
	assert.True(t, s.Contains(testEnd))
	assert.True(t, s.Contains(testStart.AddDate(0, 1, 0)))
	assert.False(t, s.Contains(testStart.Add(-time.Second)))
	assert.False(t, s.Contains(testEnd.Add(time.Second)))
}

func TestLinearScale_MapAndClamp(t *testing.T) {
	t.Parallel()

	s := NewLinearScale(10, 0, testHeight)

	assert.InDelta(t, 0, s.Map(0), 1e-9)
	assert.InDelta(t, testHeight, s.Map(10), 1e-9)
	assert.InDelta(t, testHeight/2, s.Map(5), 1e-9)

	// Domain max below one clamps to one.
	s.SetMax(0)
	assert.InDelta(t, 1, s.Max(), 1e-9)
	assert.InDelta(t, testHeight, s.Map(1), 1e-9)
}

func TestManager_ResetAndBrush(t *testing.T) {
	t.Parallel()

	layout := Layout{DetailWidth: testWidth, DetailHeight: testHeight, OverviewWidth: testWidth, OverviewHeight: 80}
	summary := bucket.OverviewSummary{StartDate: testStart, EndDate: testEnd, MaxValue: 7}

	m := NewManager(layout, summary)

	start, end := m.DetailX().Domain()
	assert.Equal(t, testStart, start)
	assert.Equal(t, testEnd, end)
	assert.InDelta(t, 7, m.DetailY().Max(), 1e-9)

	// Brushing narrows detail x only.
	brushStart := testStart.AddDate(0, 0, 10)
	brushEnd := testStart.AddDate(0, 0, 20)

	m.Brush(brushStart, brushEnd)

	start, end = m.DetailX().Domain()
	assert.Equal(t, brushStart, start)
	assert.Equal(t, brushEnd, end)

	ovStart, ovEnd := m.OverviewX().Domain()
	assert.Equal(t, testStart, ovStart)
	assert.Equal(t, testEnd, ovEnd)
	assert.InDelta(t, 7, m.DetailY().Max(), 1e-9)

	// Reset discards the brushed range.
	m.Reset(summary)

	start, end = m.DetailX().Domain()
	assert.Equal(t, testStart, start)
	assert.Equal(t, testEnd, end)
}

func TestManager_SingleBucketSummary(t *testing.T) {
	t.Parallel()

	layout := Layout{DetailWidth: testWidth, DetailHeight: testHeight, OverviewWidth: testWidth, OverviewHeight: 80}
	summary := bucket.OverviewSummary{StartDate: testStart, EndDate: testStart, MaxValue: 1}

	m := NewManager(layout, summary)

	require.NotNil(t, m.DetailX())
	assert.InDelta(t, 0, m.DetailX().Map(testStart), 1e-9)
}
