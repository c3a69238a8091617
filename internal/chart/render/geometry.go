package render

import (
	"time"

	"github.com/solvetrack/solvetrack/internal/bucket"
	"github.com/solvetrack/solvetrack/internal/chart/scale"
	"github.com/solvetrack/solvetrack/internal/chart/segment"
)

// Bar width bounds and default spacing, in pixels.
const (
	MinBarWidth   = 4
	MaxBarWidth   = 20
	DefaultBarGap = 2
)

// Corners marks which corners of a segment box are rounded.
type Corners struct {
	TopLeft     bool
	TopRight    bool
	BottomLeft  bool
	BottomRight bool
}

// allCorners rounds every corner, used for single-segment bars.
var allCorners = Corners{TopLeft: true, TopRight: true, BottomLeft: true, BottomRight: true}

// SegmentBox is one stacked slice of a bar in pixel space. Y is measured
// from the bar baseline upward to the box's bottom edge.
type SegmentBox struct {
	Segment segment.Segment
	Y       float64
	Height  float64
	Corners Corners
}

// Bar is the full pixel geometry of one bucket's bar.
type Bar struct {
	Key   time.Time
	Label string
	X     float64
	Width float64

	// GhostHeight is the backdrop height for the complementary view
	// total; zero means no ghost is drawn.
	GhostHeight float64

	Segments []SegmentBox

	// Total and CrossTotal feed the tooltip: the bucket's total under the
	// active view mode and under the complementary one.
	Total      int
	CrossTotal int
}

// BarWidth computes the per-bar width for count bars across width pixels
// with the given gap, clamped to [MinBarWidth, MaxBarWidth].
func BarWidth(width float64, count int, gap float64) float64 {
	if count <= 0 {
		return MinBarWidth
	}

	w := width/float64(count) - gap
	if w < MinBarWidth {
		return MinBarWidth
	}

	if w > MaxBarWidth {
		return MaxBarWidth
	}

	return w
}

// buildBar computes the geometry of one block against an x/y scale pair.
// The ghost backdrop is sized first; visible segments stack bottom-up
// with the first segment in stack order outermost (topmost).
func buildBar(
	block bucket.TimeBlock,
	cfg segment.ViewConfig,
	palette segment.Palette,
	x *scale.TimeScale,
	y *scale.LinearScale,
	barWidth float64,
) Bar {
	segments := segment.For(block, cfg, palette)

	bar := Bar{
		Key:        block.BucketDate,
		Label:      block.Label,
		X:          x.Map(block.BucketDate) - barWidth/2,
		Width:      barWidth,
		Total:      segment.Total(block, cfg),
		CrossTotal: segment.GhostValue(block, cfg),
	}

	if ghost := segment.GhostValue(block, cfg); ghost > 0 {
		bar.GhostHeight = y.Map(float64(ghost))
	}

	bar.Segments = stackSegments(segments, y)

	return bar
}

// stackSegments lays out ordered segments bottom-anchored. The last
// segment in stack order sits on the baseline; each earlier segment
// rests on the cumulative height of those after it.
func stackSegments(segments []segment.Segment, y *scale.LinearScale) []SegmentBox {
	if len(segments) == 0 {
		return nil
	}

	boxes := make([]SegmentBox, len(segments))

	offset := 0.0

	for i := len(segments) - 1; i >= 0; i-- {
		height := y.Map(float64(segments[i].Value))

		boxes[i] = SegmentBox{
			Segment: segments[i],
			Y:       offset,
			Height:  height,
			Corners: cornersFor(i, len(segments)),
		}

		offset += height
	}

	return boxes
}

// cornersFor applies the rounding policy: a lone segment rounds all four
// corners; otherwise only the outermost edge of the first segment (top)
// and of the last segment (bottom) are rounded.
func cornersFor(index, count int) Corners {
	if count == 1 {
		return allCorners
	}

	switch index {
	case 0:
		return Corners{TopLeft: true, TopRight: true}
	case count - 1:
		return Corners{BottomLeft: true, BottomRight: true}
	default:
		return Corners{}
	}
}
