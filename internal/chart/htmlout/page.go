package htmlout

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/solvetrack/solvetrack/internal/chart/render"
)

// Chart dimensions for the exported page.
const (
	chartWidth  = "100%"
	chartHeight = "560px"
)

// fullWindowPct is the slider window when nothing is brushed.
const fullWindowPct = 100

// ghostSeriesName labels the translucent cross-view backdrop series.
const ghostSeriesName = "ghost"

// BuildChart assembles the linked detail/overview bar chart from the
// surface's retained state. The full-span overview bars provide the
// series data; the DataZoom slider plays the overview strip and is
// initialized to the brushed window.
func (s *Surface) BuildChart(title, subtitle, yAxisLabel string) *charts.Bar {
	co := NewChartOpts(s.theme)

	startPct, endPct := s.brushWindow()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init(chartWidth, chartHeight)),
		charts.WithTitleOpts(co.Title(title, subtitle)),
		charts.WithTooltipOpts(co.Tooltip()),
		charts.WithLegendOpts(co.Legend()),
		charts.WithXAxisOpts(co.XAxis()),
		charts.WithYAxisOpts(co.YAxis(yAxisLabel)),
		charts.WithDataZoomOpts(co.DataZoom(startPct, endPct)...),
	)

	bars := s.OverviewBars()

	labels := make([]string, len(bars))
	for i, b := range bars {
		labels[i] = b.Label
	}

	bar.SetXAxis(labels)

	addGhostSeries(bar, bars, co.GhostColor())
	addSegmentSeries(bar, bars)

	return bar
}

// addGhostSeries draws the cross-view totals as a translucent backdrop
// occupying the same slots as the stacked bars. Added first so it sits
// behind the visible stack.
func addGhostSeries(bar *charts.Bar, bars []render.Bar, color string) {
	data := make([]opts.BarData, len(bars))

	nonEmpty := false

	for i, b := range bars {
		data[i] = opts.BarData{Value: b.CrossTotal}

		if b.CrossTotal > 0 {
			nonEmpty = true
		}
	}

	if !nonEmpty {
		return
	}

	bar.AddSeries(ghostSeriesName, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithBarChartOpts(opts.BarChart{BarGap: "-100%"}),
	)
}

// addSegmentSeries adds one stacked series per segment label. Labels are
// collected in stack order; series are added bottom-up (reverse stack
// order) because ECharts stacks in series order from the baseline.
func addSegmentSeries(bar *charts.Bar, bars []render.Bar) {
	labels, colors := collectSegmentLabels(bars)

	for i := len(labels) - 1; i >= 0; i-- {
		label := labels[i]

		data := make([]opts.BarData, len(bars))
		for j, b := range bars {
			data[j] = opts.BarData{Value: segmentValue(b, label)}
		}

		bar.AddSeries(label, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colors[label]}),
			charts.WithBarChartOpts(opts.BarChart{Stack: "total"}),
		)
	}
}

// collectSegmentLabels gathers distinct segment labels across bars in
// first-seen stack order, with their colors.
func collectSegmentLabels(bars []render.Bar) ([]string, map[string]string) {
	var labels []string

	colors := make(map[string]string)

	for _, b := range bars {
		for _, box := range b.Segments {
			if _, seen := colors[box.Segment.Label]; !seen {
				labels = append(labels, box.Segment.Label)
				colors[box.Segment.Label] = box.Segment.Color
			}
		}
	}

	return labels, colors
}

func segmentValue(b render.Bar, label string) int {
	for _, box := range b.Segments {
		if box.Segment.Label == label {
			return box.Segment.Value
		}
	}

	return 0
}

// brushWindow converts the brush pixel selection into slider
// percentages. No selection means the full window.
func (s *Surface) brushWindow() (float32, float32) {
	if s.brush == nil {
		return 0, fullWindowPct
	}

	sel, ok := s.brush.Selection()
	if !ok {
		return 0, fullWindowPct
	}

	width := s.brush.Width()
	if width <= 0 {
		return 0, fullWindowPct
	}

	return float32(sel.X0 / width * fullWindowPct), float32(sel.X1 / width * fullWindowPct)
}

// WritePage renders the chart into a standalone HTML page.
func (s *Surface) WritePage(w io.Writer, title, subtitle, yAxisLabel string) error {
	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.PageTitle = title

	page.AddCharts(s.BuildChart(title, subtitle, yAxisLabel))

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	return nil
}
