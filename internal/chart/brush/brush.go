// Package brush implements the draggable range selector over the
// overview strip. It owns the pixel selection and the pixel→time
// inversion; drawing and event plumbing live with the surface.
package brush

import (
	"time"

	"github.com/solvetrack/solvetrack/internal/chart/scale"
)

// Selection is a pixel range over the overview strip, normalized so
// X0 <= X1 and both edges lie inside the strip.
type Selection struct {
	X0 float64
	X1 float64
}

// Controller converts brush interactions into detail-domain updates.
//
// Each brush event fully supersedes the previous selection; rapid
// repeated events are idempotent in their effect on the detail domain.
// A cleared selection is a no-op: the prior detail domain is retained.
type Controller struct {
	overviewX *scale.TimeScale
	width     float64
	selection *Selection
	onBrush   func(start, end time.Time)
}

// NewController creates a brush controller over an overview time scale of
// the given pixel width. The initial selection spans the full strip.
// onBrush receives the inverted time range on every effective brush.
func NewController(overviewX *scale.TimeScale, width float64, onBrush func(start, end time.Time)) *Controller {
	return &Controller{
		overviewX: overviewX,
		width:     width,
		selection: &Selection{X0: 0, X1: width},
		onBrush:   onBrush,
	}
}

// Brush applies a pixel selection. Edges are ordered and clamped to the
// strip, the range is inverted through the overview time scale, and the
// resulting time range is pushed to the onBrush callback.
func (c *Controller) Brush(x0, x1 float64) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}

	x0 = clamp(x0, 0, c.width)
	x1 = clamp(x1, 0, c.width)

	c.selection = &Selection{X0: x0, X1: x1}

	if c.onBrush == nil {
		return
	}

	c.onBrush(c.overviewX.Invert(x0), c.overviewX.Invert(x1))
}

// Clear removes the selection. The detail domain is deliberately left as
// it was; no callback fires.
func (c *Controller) Clear() {
	c.selection = nil
}

// Width returns the overview strip width the selection is clamped to.
func (c *Controller) Width() float64 {
	return c.width
}

// Selection returns the current pixel selection, if any.
func (c *Controller) Selection() (Selection, bool) {
	if c.selection == nil {
		return Selection{}, false
	}

	return *c.selection, true
}

// Detach drops the callback so a torn-down instance cannot be re-entered
// by a late interaction event.
func (c *Controller) Detach() {
	c.onBrush = nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
