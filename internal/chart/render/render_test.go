package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvetrack/solvetrack/internal/bucket"
	"github.com/solvetrack/solvetrack/internal/chart/scale"
	"github.com/solvetrack/solvetrack/internal/chart/segment"
)

const (
	testDetailWidth    = 800.0
	testDetailHeight   = 400.0
	testOverviewHeight = 80.0
	testLangGo         = "go"
)

// recordingSurface captures the operations a render applies.
type recordingSurface struct {
	created   []time.Time
	updated   []time.Time
	destroyed []time.Time
}

func (r *recordingSurface) Create(key time.Time, _ Bar, _ Animation) {
	r.created = append(r.created, key)
}

func (r *recordingSurface) Update(key time.Time, _, _ Bar, _ Animation) {
	r.updated = append(r.updated, key)
}

func (r *recordingSurface) Destroy(key time.Time, _ Bar, _ Animation) {
	r.destroyed = append(r.destroyed, key)
}

func (r *recordingSurface) reset() {
	r.created = nil
	r.updated = nil
	r.destroyed = nil
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func testBlocks(days ...int) []bucket.TimeBlock {
	blocks := make([]bucket.TimeBlock, 0, len(days))

	for _, d := range days {
		blocks = append(blocks, bucket.TimeBlock{
			BucketDate:  day(d),
			Label:       day(d).Format("Jan 2, 2006"),
			Problems:    bucket.ProblemCounts{Easy: 2, Hard: 1},
			Submissions: bucket.SubmissionCounts{Accepted: 3, Failed: 2},
		})
	}

	return blocks
}

func newTestRenderer(blocks []bucket.TimeBlock) (*Renderer, *recordingSurface, *scale.Manager) {
	surface := &recordingSurface{}

	summary := bucket.Summarize(blocks, func(b bucket.TimeBlock) int { return b.Problems.Total() })

	scales := scale.NewManager(scale.Layout{
		DetailWidth:    testDetailWidth,
		DetailHeight:   testDetailHeight,
		OverviewWidth:  testDetailWidth,
		OverviewHeight: testOverviewHeight,
	}, summary)

	palette := segment.DefaultPalette([]string{testLangGo})

	return NewRenderer(surface, scales, palette, DefaultAnimation()), surface, scales
}

func TestBarWidth_Clamped(t *testing.T) {
	t.Parallel()

	// Few bars hit the maximum.
	assert.InDelta(t, MaxBarWidth, BarWidth(800, 2, DefaultBarGap), 1e-9)

	// Many bars hit the minimum.
	assert.InDelta(t, MinBarWidth, BarWidth(800, 500, DefaultBarGap), 1e-9)

	// In-between is proportional.
	assert.InDelta(t, 800.0/100-DefaultBarGap, BarWidth(800, 100, DefaultBarGap), 1e-9)

	// Zero count degrades to the minimum rather than dividing by zero.
	assert.InDelta(t, MinBarWidth, BarWidth(800, 0, DefaultBarGap), 1e-9)
}

func TestRender_InitialAllEnter(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1, 2, 3)
	r, surface, _ := newTestRenderer(blocks)

	d := r.Render(blocks, segment.DefaultViewConfig())

	assert.Len(t, d.Entered, 3)
	assert.Empty(t, d.Updated)
	assert.Empty(t, d.Exited)
	assert.Len(t, surface.created, 3)
}

func TestRender_EnterUpdateExit(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1, 2, 3)
	r, surface, _ := newTestRenderer(blocks)

	r.Render(blocks, segment.DefaultViewConfig())
	surface.reset()

	// Day 1 leaves, day 4 enters, days 2 and 3 update.
	next := testBlocks(2, 3, 4)

	d := r.Render(next, segment.DefaultViewConfig())

	require.Len(t, d.Entered, 1)
	assert.Equal(t, day(4), d.Entered[0].Key)

	require.Len(t, d.Exited, 1)
	assert.Equal(t, day(1), d.Exited[0].Key)

	assert.Len(t, d.Updated, 2)

	assert.Equal(t, []time.Time{day(4)}, surface.created)
	assert.Equal(t, []time.Time{day(1)}, surface.destroyed)
	assert.ElementsMatch(t, []time.Time{day(2), day(3)}, surface.updated)
}

func TestRender_BrushedDomainFiltersVisible(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1, 2, 3, 4, 5)
	r, surface, scales := newTestRenderer(blocks)

	r.Render(blocks, segment.DefaultViewConfig())
	surface.reset()

	// Narrow to days 2..4; days 1 and 5 exit, nothing enters.
	scales.Brush(day(2), day(4))

	d := r.Render(blocks, segment.DefaultViewConfig())

	assert.Empty(t, d.Entered)
	assert.Len(t, d.Updated, 3)

	require.Len(t, d.Exited, 2)
	assert.Equal(t, day(1), d.Exited[0].Key)
	assert.Equal(t, day(5), d.Exited[1].Key)
}

func TestRender_DomainEdgesInclusive(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1, 2, 3)
	r, _, scales := newTestRenderer(blocks)

	scales.Brush(day(1), day(3))

	d := r.Render(blocks, segment.DefaultViewConfig())

	assert.Len(t, d.Entered, 3)
}

func TestRender_StackGeometry(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1)
	r, _, _ := newTestRenderer(blocks)

	r.Render(blocks, segment.DefaultViewConfig())

	bar, ok := r.Rendered(day(1))
	require.True(t, ok)

	// Problems view, difficulty stack: Hard then Easy (Medium is zero).
	require.Len(t, bar.Segments, 2)
	assert.Equal(t, segment.LabelHard, bar.Segments[0].Segment.Label)
	assert.Equal(t, segment.LabelEasy, bar.Segments[1].Segment.Label)

	// Bottom-anchored: the last segment sits on the baseline, the first
	// rests on its cumulative height.
	assert.InDelta(t, 0, bar.Segments[1].Y, 1e-9)
	assert.InDelta(t, bar.Segments[1].Height, bar.Segments[0].Y, 1e-9)

	// Ghost backdrop reflects the cross-view (submissions) total.
	assert.Greater(t, bar.GhostHeight, 0.0)
	assert.Equal(t, 5, bar.CrossTotal)
	assert.Equal(t, 3, bar.Total)
}

func TestRender_CornerPolicy(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1)
	r, _, _ := newTestRenderer(blocks)

	r.Render(blocks, segment.DefaultViewConfig())

	bar, ok := r.Rendered(day(1))
	require.True(t, ok)
	require.Len(t, bar.Segments, 2)

	// First segment rounds its top edge only; last rounds its bottom.
	assert.Equal(t, Corners{TopLeft: true, TopRight: true}, bar.Segments[0].Corners)
	assert.Equal(t, Corners{BottomLeft: true, BottomRight: true}, bar.Segments[1].Corners)
}

func TestRender_SingleSegmentRoundsAllCorners(t *testing.T) {
	t.Parallel()

	blocks := []bucket.TimeBlock{{
		BucketDate: day(1),
		Label:      "Mar 1, 2025",
		Problems:   bucket.ProblemCounts{Medium: 4},
	}}

	r, _, _ := newTestRenderer(blocks)
	r.Render(blocks, segment.DefaultViewConfig())

	bar, ok := r.Rendered(day(1))
	require.True(t, ok)
	require.Len(t, bar.Segments, 1)

	assert.Equal(t, Corners{TopLeft: true, TopRight: true, BottomLeft: true, BottomRight: true}, bar.Segments[0].Corners)
}

func TestRender_InteriorSegmentsUnrounded(t *testing.T) {
	t.Parallel()

	blocks := []bucket.TimeBlock{{
		BucketDate: day(1),
		Label:      "Mar 1, 2025",
		Problems:   bucket.ProblemCounts{Easy: 1, Medium: 2, Hard: 3},
	}}

	r, _, _ := newTestRenderer(blocks)
	r.Render(blocks, segment.DefaultViewConfig())

	bar, ok := r.Rendered(day(1))
	require.True(t, ok)
	require.Len(t, bar.Segments, 3)

	assert.Equal(t, Corners{}, bar.Segments[1].Corners)
}

func TestOverviewBars_FullSpan(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1, 2, 3, 4, 5)
	r, _, scales := newTestRenderer(blocks)

	// Brushing must not affect the overview strip.
	scales.Brush(day(2), day(3))

	bars := r.OverviewBars(blocks, segment.DefaultViewConfig())

	assert.Len(t, bars, 5)
}

func TestClear_DestroysEverything(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1, 2)
	r, surface, _ := newTestRenderer(blocks)

	r.Render(blocks, segment.DefaultViewConfig())
	surface.reset()

	r.Clear()

	assert.Len(t, surface.destroyed, 2)

	_, ok := r.Rendered(day(1))
	assert.False(t, ok)
}

func TestHover_TooltipContent(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1)
	r, _, _ := newTestRenderer(blocks)
	r.Render(blocks, segment.DefaultViewConfig())

	tip, ok := r.Hover(day(1), segment.LabelEasy, 100, 50)
	require.True(t, ok)

	assert.Equal(t, "Mar 1, 2025", tip.BucketLabel)
	assert.Equal(t, segment.LabelEasy, tip.SegmentLabel)
	assert.Equal(t, 2, tip.SegmentValue)
	assert.Equal(t, 5, tip.CrossTotal)
	assert.InDelta(t, 100+tooltipOffset, tip.X, 1e-9)
	assert.InDelta(t, 50+tooltipOffset, tip.Y, 1e-9)
}

func TestHover_MissReturnsFalse(t *testing.T) {
	t.Parallel()

	blocks := testBlocks(1)
	r, _, _ := newTestRenderer(blocks)
	r.Render(blocks, segment.DefaultViewConfig())

	_, ok := r.Hover(day(9), segment.LabelEasy, 0, 0)
	assert.False(t, ok)

	_, ok = r.Hover(day(1), "nonexistent", 0, 0)
	assert.False(t, ok)
}

func TestDiffBars_ExitedSortedByKey(t *testing.T) {
	t.Parallel()

	prev := map[time.Time]Bar{
		day(3): {Key: day(3)},
		day(1): {Key: day(1)},
		day(2): {Key: day(2)},
	}

	d := diffBars(prev, nil)

	require.Len(t, d.Exited, 3)
	assert.Equal(t, day(1), d.Exited[0].Key)
	assert.Equal(t, day(2), d.Exited[1].Key)
	assert.Equal(t, day(3), d.Exited[2].Key)
}
