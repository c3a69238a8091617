package htmlout

import (
	"sort"
	"time"

	"github.com/solvetrack/solvetrack/internal/chart/brush"
	"github.com/solvetrack/solvetrack/internal/chart/render"
)

// Surface retains the reconciled bar sets and exports them as HTML.
//
// Enter/update/exit operations replace the retained geometry per key;
// the ECharts runtime in the exported page owns the actual animation
// playback, using the duration and easing recorded from the last
// operation.
type Surface struct {
	theme Theme

	detail   map[time.Time]render.Bar
	overview []render.Bar
	brush    *brush.Controller
	tooltip  *render.Tooltip
	lastAnim render.Animation

	tornDown bool
}

// NewSurface creates an empty HTML surface with the given theme.
func NewSurface(theme Theme) *Surface {
	return &Surface{
		theme:  theme,
		detail: make(map[time.Time]render.Bar),
	}
}

// Create retains an entering bar.
func (s *Surface) Create(key time.Time, bar render.Bar, anim render.Animation) {
	if s.tornDown {
		return
	}

	s.detail[key] = bar
	s.lastAnim = anim
}

// Update replaces a bar's retained geometry, superseding any in-flight
// transition for the key.
func (s *Surface) Update(key time.Time, _, to render.Bar, anim render.Animation) {
	if s.tornDown {
		return
	}

	s.detail[key] = to
	s.lastAnim = anim
}

// Destroy removes an exiting bar.
func (s *Surface) Destroy(key time.Time, _ render.Bar, anim render.Animation) {
	if s.tornDown {
		return
	}

	delete(s.detail, key)
	s.lastAnim = anim
}

// DrawOverview replaces the overview strip wholesale.
func (s *Surface) DrawOverview(bars []render.Bar) {
	if s.tornDown {
		return
	}

	s.overview = bars
}

// AttachBrush binds the brush controller. The exported page's slider is
// initialized from its selection.
func (s *Surface) AttachBrush(controller *brush.Controller) {
	if s.tornDown {
		return
	}

	s.brush = controller
}

// ShowTooltip retains the tooltip model for export.
func (s *Surface) ShowTooltip(tip render.Tooltip) {
	if s.tornDown {
		return
	}

	s.tooltip = &tip
}

// HideTooltip clears the tooltip.
func (s *Surface) HideTooltip() {
	s.tooltip = nil
}

// Teardown releases retained state. Further operations are no-ops.
func (s *Surface) Teardown() {
	s.tornDown = true
	s.detail = make(map[time.Time]render.Bar)
	s.overview = nil
	s.brush = nil
	s.tooltip = nil
}

// DetailBars returns the retained detail bars in ascending key order.
func (s *Surface) DetailBars() []render.Bar {
	bars := make([]render.Bar, 0, len(s.detail))
	for _, bar := range s.detail {
		bars = append(bars, bar)
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Key.Before(bars[j].Key)
	})

	return bars
}

// OverviewBars returns the retained overview strip bars.
func (s *Surface) OverviewBars() []render.Bar {
	return s.overview
}
