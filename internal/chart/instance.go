package chart

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/solvetrack/solvetrack/internal/chart/brush"
	"github.com/solvetrack/solvetrack/internal/chart/render"
	"github.com/solvetrack/solvetrack/internal/chart/scale"
	"github.com/solvetrack/solvetrack/internal/chart/segment"
)

// Instance is one mounted chart. All state lives here and mutates only
// through Update, UpdateOptions, Destroy, and brush events; there are no
// package globals. An instance is single-threaded: callers serialize the
// entry points, and each brush event fully supersedes the previous
// detail domain (latest write wins).
type Instance struct {
	id      string
	logger  *slog.Logger
	surface Surface

	scales   *scale.Manager
	renderer *render.Renderer
	brush    *brush.Controller

	data      Data
	cfg       segment.ViewConfig
	destroyed bool
}

// Render mounts a new chart instance, or applies an in-place update when
// existing is non-nil. The in-place path replaces data and options on
// the same instance and re-renders; the returned instance is then
// existing itself. anim is the transition policy applied to every
// surface operation; the zero value selects the default.
func Render(container Container, surface Surface, data Data, cfg segment.ViewConfig, anim render.Animation, existing *Instance) (*Instance, error) {
	if existing != nil {
		applyErr := existing.apply(data, cfg)
		if applyErr != nil {
			return nil, fmt.Errorf("render existing: %w", applyErr)
		}

		return existing, nil
	}

	return mount(container, surface, data, cfg, anim)
}

func mount(container Container, surface Surface, data Data, cfg segment.ViewConfig, anim render.Animation) (*Instance, error) {
	// Validate before any listener is attached so an aborted mount
	// cannot leak interaction state.
	if len(data.TimeBlocks) == 0 {
		return nil, ErrNoBuckets
	}

	layout := layoutFor(container)

	inst := &Instance{
		id:      uuid.NewString(),
		logger:  slog.Default(),
		surface: surface,
		scales:  scale.NewManager(layout, data.Overview),
		data:    data,
		cfg:     cfg,
	}

	if anim == (render.Animation{}) {
		anim = render.DefaultAnimation()
	}

	palette := segment.DefaultPalette(segment.Languages(data.TimeBlocks))
	inst.renderer = render.NewRenderer(surface, inst.scales, palette, anim)

	inst.drawOverview()
	inst.attachBrush()
	inst.renderer.Render(inst.data.TimeBlocks, inst.cfg)

	inst.logger.Debug("chart mounted",
		"instance", inst.id,
		"buckets", len(data.TimeBlocks),
		"view", cfg.View,
		"stack", cfg.Stack,
		"granularity", cfg.Granularity)

	return inst, nil
}

// layoutFor splits the container into detail and overview bands. A zero
// measured dimension falls back to a fixed minimum rather than producing
// a zero-area drawing surface.
func layoutFor(container Container) scale.Layout {
	width := container.Width
	if width <= 0 {
		width = minContainerWidth
	}

	height := container.Height
	if height <= 0 {
		height = minContainerHeight
	}

	overviewHeight := height * overviewHeightRatio

	return scale.Layout{
		DetailWidth:    width,
		DetailHeight:   height - overviewHeight,
		OverviewWidth:  width,
		OverviewHeight: overviewHeight,
	}
}

// Update replaces the bucket list and summary, resets all scales to the
// new full span, redraws the overview strip, and re-renders the detail
// chart.
func (i *Instance) Update(data Data) error {
	if i.destroyed {
		return ErrDestroyed
	}

	if len(data.TimeBlocks) == 0 {
		return ErrNoBuckets
	}

	i.data = data
	i.scales.Reset(data.Overview)

	i.drawOverview()
	i.attachBrush()
	i.renderer.Render(i.data.TimeBlocks, i.cfg)

	return nil
}

// UpdateOptions replaces the view config and re-renders the detail chart
// with recomputed segments. Buckets and scale domains are untouched; a
// granularity change additionally requires the caller to supply freshly
// bucketed data via Update, since bucketing is owned by the caller.
func (i *Instance) UpdateOptions(cfg segment.ViewConfig) error {
	if i.destroyed {
		return ErrDestroyed
	}

	i.cfg = cfg
	i.renderer.Render(i.data.TimeBlocks, i.cfg)

	return nil
}

// Destroy tears the instance down: the brush callback detaches, the
// rendered bar set is destroyed, and the surface releases its resources.
// Destroy is idempotent.
func (i *Instance) Destroy() {
	if i.destroyed {
		return
	}

	i.destroyed = true

	if i.brush != nil {
		i.brush.Detach()
	}

	i.renderer.Clear()
	i.surface.HideTooltip()
	i.surface.Teardown()

	i.logger.Debug("chart destroyed", "instance", i.id)
}

// Hover forwards a pointer hover to the renderer and shows or hides the
// tooltip accordingly.
func (i *Instance) Hover(key time.Time, segmentLabel string, pointerX, pointerY float64) {
	if i.destroyed {
		return
	}

	tip, ok := i.renderer.Hover(key, segmentLabel, pointerX, pointerY)
	if !ok {
		i.surface.HideTooltip()

		return
	}

	i.surface.ShowTooltip(tip)
}

// Leave hides the tooltip on pointer-leave.
func (i *Instance) Leave() {
	if i.destroyed {
		return
	}

	i.surface.HideTooltip()
}

// Brush returns the brush controller, for surfaces that deliver raw
// interaction events.
func (i *Instance) Brush() *brush.Controller {
	return i.brush
}

// Config returns the active view config.
func (i *Instance) Config() segment.ViewConfig {
	return i.cfg
}

// apply is the in-place Render path: replace options and data together,
// then re-render once through the data path.
func (i *Instance) apply(data Data, cfg segment.ViewConfig) error {
	if i.destroyed {
		return ErrDestroyed
	}

	i.cfg = cfg

	return i.Update(data)
}

func (i *Instance) drawOverview() {
	i.surface.DrawOverview(i.renderer.OverviewBars(i.data.TimeBlocks, i.cfg))
}

// attachBrush rebinds the brush controller over the current overview
// scale. Brushing narrows the detail time domain and re-renders the
// detail chart only; buckets are never recomputed on brush.
func (i *Instance) attachBrush() {
	if i.brush != nil {
		i.brush.Detach()
	}

	i.brush = brush.NewController(i.scales.OverviewX(), i.scales.Layout().OverviewWidth, func(start, end time.Time) {
		i.scales.Brush(start, end)
		i.renderer.Render(i.data.TimeBlocks, i.cfg)
	})

	i.surface.AttachBrush(i.brush)
}
