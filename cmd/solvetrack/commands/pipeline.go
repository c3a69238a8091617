// Package commands implements the solvetrack CLI subcommands.
package commands

import (
	"fmt"
	"time"

	"github.com/solvetrack/solvetrack/internal/bucket"
	"github.com/solvetrack/solvetrack/internal/chart"
	"github.com/solvetrack/solvetrack/internal/chart/htmlout"
	"github.com/solvetrack/solvetrack/internal/chart/render"
	"github.com/solvetrack/solvetrack/internal/chart/segment"
	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/event"
)

// dashboard bundles one fully rendered chart instance with its surface.
type dashboard struct {
	surface  *htmlout.Surface
	instance *chart.Instance
	blocks   []bucket.TimeBlock
	view     segment.ViewConfig
}

// buildDashboard runs the full pipeline: bucket events at the selected
// granularity, summarize for scale setup, mount a chart instance on an
// HTML surface.
func buildDashboard(cfg *config.Config, events []event.Event, view segment.ViewConfig) (*dashboard, error) {
	blocks := bucket.Bucket(events, view.Granularity)
	if len(blocks) == 0 {
		return nil, chart.ErrNoBuckets
	}

	summary := bucket.Summarize(blocks, func(b bucket.TimeBlock) int {
		return segment.Total(b, view)
	})

	surface := htmlout.NewSurface(htmlout.Theme(cfg.Theme))

	container := chart.Container{Width: cfg.Chart.Width, Height: cfg.Chart.Height}

	instance, err := chart.Render(container, surface, chart.Data{
		TimeBlocks: blocks,
		Overview:   summary,
	}, view, animationFor(cfg.Chart.AnimationMS), nil)
	if err != nil {
		return nil, fmt.Errorf("mount chart: %w", err)
	}

	return &dashboard{
		surface:  surface,
		instance: instance,
		blocks:   blocks,
		view:     view,
	}, nil
}

// animationFor converts the configured transition duration to a render
// policy. Non-positive durations fall back to the default.
func animationFor(ms int) render.Animation {
	if ms <= 0 {
		return render.DefaultAnimation()
	}

	return render.Animation{Duration: time.Duration(ms) * time.Millisecond, Easing: render.EaseOut}
}

// viewFromFlags merges the configured defaults with explicit flag
// overrides. Empty flag values keep the configured default.
func viewFromFlags(cfg *config.Config, viewMode, stackMode, granularity string) (segment.ViewConfig, error) {
	view := cfg.ViewSelection()

	if viewMode != "" {
		if !segment.ViewMode(viewMode).Valid() {
			return view, fmt.Errorf("%w: got %q", config.ErrInvalidViewMode, viewMode)
		}

		view.View = segment.ViewMode(viewMode)
	}

	if stackMode != "" {
		if !segment.StackMode(stackMode).Valid() {
			return view, fmt.Errorf("%w: got %q", config.ErrInvalidStackMode, stackMode)
		}

		view.Stack = segment.StackMode(stackMode)
	}

	if granularity != "" {
		if !bucket.Granularity(granularity).Valid() {
			return view, fmt.Errorf("%w: got %q", config.ErrInvalidGranularity, granularity)
		}

		view.Granularity = bucket.Granularity(granularity)
	}

	return view, nil
}

// subtitle describes the active view selection for the page header.
func subtitle(view segment.ViewConfig) string {
	if view.View == segment.ViewSubmissions {
		return fmt.Sprintf("submissions by outcome, %s buckets", view.Granularity)
	}

	return fmt.Sprintf("problems by %s, %s buckets", view.Stack, view.Granularity)
}

// yAxisLabel names the value axis for a view mode.
func yAxisLabel(view segment.ViewConfig) string {
	if view.View == segment.ViewSubmissions {
		return "Submissions"
	}

	return "Problems solved"
}
