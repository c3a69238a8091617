package render

import "time"

// Tooltip is the floating hover readout for one segment: the bucket
// label, the hovered segment, and the bucket's cross-view total.
type Tooltip struct {
	BucketLabel  string
	SegmentLabel string
	SegmentValue int
	CrossTotal   int
	X            float64
	Y            float64
}

// tooltipOffset nudges the tooltip away from the pointer.
const tooltipOffset = 12

// Hover resolves a pointer position over a rendered bar segment into a
// tooltip, anchored near the pointer. The bool is false when the key is
// not on screen or the label is not part of its stack; callers hide the
// tooltip in that case, the same as a pointer-leave.
func (r *Renderer) Hover(key time.Time, segmentLabel string, pointerX, pointerY float64) (Tooltip, bool) {
	bar, ok := r.rendered[key]
	if !ok {
		return Tooltip{}, false
	}

	for _, box := range bar.Segments {
		if box.Segment.Label != segmentLabel {
			continue
		}

		return Tooltip{
			BucketLabel:  bar.Label,
			SegmentLabel: box.Segment.Label,
			SegmentValue: box.Segment.Value,
			CrossTotal:   bar.CrossTotal,
			X:            pointerX + tooltipOffset,
			Y:            pointerY + tooltipOffset,
		}, true
	}

	return Tooltip{}, false
}
