package scale

import (
	"time"

	"github.com/solvetrack/solvetrack/internal/bucket"
)

// Layout fixes the pixel ranges the scales map onto.
type Layout struct {
	DetailWidth    float64
	DetailHeight   float64
	OverviewWidth  float64
	OverviewHeight float64
}

// Manager owns the two scale pairs of the linked chart: the mutable
// detail scales and the fixed full-span overview scales.
//
// The overview pair and the detail y-domain are rebuilt only on Reset
// (data or granularity change). Brushing mutates the detail x-domain in
// place and touches nothing else.
type Manager struct {
	layout Layout

	detailX   *TimeScale
	detailY   *LinearScale
	overviewX *TimeScale
	overviewY *LinearScale
}

// NewManager creates a scale manager for the given pixel layout and
// dataset summary. The detail x-domain starts at the full span.
func NewManager(layout Layout, summary bucket.OverviewSummary) *Manager {
	m := &Manager{layout: layout}
	m.Reset(summary)

	return m
}

// Reset rebuilds all four scales from a fresh dataset summary. The detail
// x-domain is reset to the full span, discarding any brushed sub-range.
func (m *Manager) Reset(summary bucket.OverviewSummary) {
	maxValue := float64(summary.MaxValue)

	m.detailX = NewTimeScale(summary.StartDate, summary.EndDate, 0, m.layout.DetailWidth)
	m.detailY = NewLinearScale(maxValue, 0, m.layout.DetailHeight)
	m.overviewX = NewTimeScale(summary.StartDate, summary.EndDate, 0, m.layout.OverviewWidth)
	m.overviewY = NewLinearScale(maxValue, 0, m.layout.OverviewHeight)
}

// Brush narrows the detail x-domain to the given time range. The value
// scales are untouched: brushing pans and zooms time only.
func (m *Manager) Brush(start, end time.Time) {
	m.detailX.SetDomain(start, end)
}

// DetailX returns the detail time scale.
func (m *Manager) DetailX() *TimeScale { return m.detailX }

// DetailY returns the detail value scale.
func (m *Manager) DetailY() *LinearScale { return m.detailY }

// OverviewX returns the overview time scale.
func (m *Manager) OverviewX() *TimeScale { return m.overviewX }

// OverviewY returns the overview value scale.
func (m *Manager) OverviewY() *LinearScale { return m.overviewY }

// Layout returns the pixel layout the scales map onto.
func (m *Manager) Layout() Layout { return m.layout }
