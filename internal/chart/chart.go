// Package chart wires the bucketed activity data, scales, brush, and
// diff renderer into a single chart instance with a four-entry-point
// lifecycle: construct, update data, update options, destroy.
package chart

import (
	"errors"

	"github.com/solvetrack/solvetrack/internal/bucket"
	"github.com/solvetrack/solvetrack/internal/chart/brush"
	"github.com/solvetrack/solvetrack/internal/chart/render"
)

// Lifecycle errors.
var (
	// ErrNoBuckets is returned when a render is attempted with an empty
	// bucket list. No data means no chart; callers suppress rendering.
	ErrNoBuckets = errors.New("chart: no buckets to render")

	// ErrDestroyed is returned when a destroyed instance is re-entered.
	ErrDestroyed = errors.New("chart: instance destroyed")
)

// Container describes the measured mount area, in pixels.
type Container struct {
	Width  float64
	Height float64
}

// Fallback dimensions for containers that measure zero at mount.
const (
	minContainerWidth  = 320
	minContainerHeight = 240
)

// Overview strip share of the container height.
const overviewHeightRatio = 0.2

// Data is the caller-supplied bucket list and dataset summary. Bucketing
// itself belongs to the caller's aggregation layer, not this package.
type Data struct {
	TimeBlocks []bucket.TimeBlock
	Overview   bucket.OverviewSummary
}

// Surface is the concrete drawing backend an instance renders onto. The
// detail chart goes through the keyed render.Surface operations; the
// overview strip and interaction plumbing have their own hooks.
type Surface interface {
	render.Surface

	// DrawOverview redraws the static overview strip wholesale. Called
	// on data and granularity changes only, never on brush events.
	DrawOverview(bars []render.Bar)

	// AttachBrush (re)binds the brush interaction region over the
	// overview strip.
	AttachBrush(controller *brush.Controller)

	// ShowTooltip and HideTooltip manage the floating hover readout.
	ShowTooltip(tip render.Tooltip)
	HideTooltip()

	// Teardown synchronously releases all drawing resources and detaches
	// interaction listeners. Must be safe to call once.
	Teardown()
}
