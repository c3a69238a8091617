package render

import (
	"time"

	"github.com/solvetrack/solvetrack/internal/bucket"
	"github.com/solvetrack/solvetrack/internal/chart/scale"
	"github.com/solvetrack/solvetrack/internal/chart/segment"
)

// Renderer owns the last-rendered bar set and reconciles each render
// request against it. One renderer serves one chart instance; calls are
// not concurrency-safe and must come from a single goroutine.
type Renderer struct {
	surface Surface
	scales  *scale.Manager
	palette segment.Palette
	anim    Animation
	gap     float64

	rendered map[time.Time]Bar
}

// NewRenderer creates a renderer drawing onto surface through the given
// scale manager.
func NewRenderer(surface Surface, scales *scale.Manager, palette segment.Palette, anim Animation) *Renderer {
	return &Renderer{
		surface:  surface,
		scales:   scales,
		palette:  palette,
		anim:     anim,
		gap:      DefaultBarGap,
		rendered: make(map[time.Time]Bar),
	}
}

// Render draws the visible subset of blocks under cfg, reconciling
// against the previous render. It returns the diff that was applied, for
// callers that track churn.
func (r *Renderer) Render(blocks []bucket.TimeBlock, cfg segment.ViewConfig) Diff {
	visible := r.visibleBlocks(blocks)

	barWidth := BarWidth(r.scales.Layout().DetailWidth, len(visible), r.gap)

	next := make([]Bar, 0, len(visible))
	for _, block := range visible {
		next = append(next, buildBar(block, cfg, r.palette, r.scales.DetailX(), r.scales.DetailY(), barWidth))
	}

	d := diffBars(r.rendered, next)
	d.apply(r.surface, r.anim)

	r.rendered = make(map[time.Time]Bar, len(next))
	for _, bar := range next {
		r.rendered[bar.Key] = bar
	}

	return d
}

// OverviewBars computes the static full-span bars for the overview
// strip. The strip is not reconciled: it redraws wholesale on data or
// granularity changes and never on brush events.
func (r *Renderer) OverviewBars(blocks []bucket.TimeBlock, cfg segment.ViewConfig) []Bar {
	barWidth := BarWidth(r.scales.Layout().OverviewWidth, len(blocks), r.gap)

	bars := make([]Bar, 0, len(blocks))
	for _, block := range blocks {
		bars = append(bars, buildBar(block, cfg, r.palette, r.scales.OverviewX(), r.scales.OverviewY(), barWidth))
	}

	return bars
}

// Rendered returns the geometry last applied for key, if it is on
// screen.
func (r *Renderer) Rendered(key time.Time) (Bar, bool) {
	bar, ok := r.rendered[key]

	return bar, ok
}

// Clear forgets the rendered set and destroys every bar on the surface.
// Used by teardown and by full rebuilds after a granularity change.
func (r *Renderer) Clear() {
	d := diffBars(r.rendered, nil)
	d.apply(r.surface, r.anim)

	r.rendered = make(map[time.Time]Bar)
}

// visibleBlocks filters blocks to those whose bucket date falls inside
// the detail time domain, inclusive at both edges.
func (r *Renderer) visibleBlocks(blocks []bucket.TimeBlock) []bucket.TimeBlock {
	visible := make([]bucket.TimeBlock, 0, len(blocks))

	for _, block := range blocks {
		if r.scales.DetailX().Contains(block.BucketDate) {
			visible = append(visible, block)
		}
	}

	return visible
}
