// Package scale provides the time→pixel and value→pixel mappings shared
// by the detail chart and the overview strip.
//
// Both scales are monotonic affine maps from a mutable domain to a fixed
// pixel range. A collapsed domain (single instant, or zero value span) is
// clamped to a width of one unit so mapping never divides by zero; the
// single domain point then lands at the start of the range.
package scale

import "time"

// degenerateTimeWidth substitutes for a collapsed time domain.
const degenerateTimeWidth = time.Second

// TimeScale maps a [start, end] time domain onto a [rangeMin, rangeMax]
// pixel interval.
type TimeScale struct {
	domainStart time.Time
	domainEnd   time.Time
	rangeMin    float64
	rangeMax    float64
}

// NewTimeScale creates a time scale over the given domain and pixel range.
func NewTimeScale(start, end time.Time, rangeMin, rangeMax float64) *TimeScale {
	s := &TimeScale{rangeMin: rangeMin, rangeMax: rangeMax}
	s.SetDomain(start, end)

	return s
}

// SetDomain replaces the scale's time domain in place. A reversed domain
// is normalized to ascending order.
func (s *TimeScale) SetDomain(start, end time.Time) {
	if end.Before(start) {
		start, end = end, start
	}

	s.domainStart = start
	s.domainEnd = end
}

// Domain returns the current [start, end] time domain.
func (s *TimeScale) Domain() (time.Time, time.Time) {
	return s.domainStart, s.domainEnd
}

// Map converts a time to its pixel position.
func (s *TimeScale) Map(t time.Time) float64 {
	span := s.domainEnd.Sub(s.domainStart)
	if span <= 0 {
		span = degenerateTimeWidth
	}

	frac := float64(t.Sub(s.domainStart)) / float64(span)

	return s.rangeMin + frac*(s.rangeMax-s.rangeMin)
}

// Invert converts a pixel position back to a time.
func (s *TimeScale) Invert(px float64) time.Time {
	span := s.domainEnd.Sub(s.domainStart)
	if span <= 0 {
		span = degenerateTimeWidth
	}

	width := s.rangeMax - s.rangeMin
	if width == 0 {
		return s.domainStart
	}

	frac := (px - s.rangeMin) / width

	return s.domainStart.Add(time.Duration(frac * float64(span)))
}

// Contains reports whether t falls within the domain, inclusive.
func (s *TimeScale) Contains(t time.Time) bool {
	return !t.Before(s.domainStart) && !t.After(s.domainEnd)
}

// LinearScale maps a [0, max] value domain onto a [rangeMin, rangeMax]
// pixel interval.
type LinearScale struct {
	domainMax float64
	rangeMin  float64
	rangeMax  float64
}

// NewLinearScale creates a value scale with domain [0, max]. A max below
// one is clamped to one.
func NewLinearScale(maxValue, rangeMin, rangeMax float64) *LinearScale {
	s := &LinearScale{rangeMin: rangeMin, rangeMax: rangeMax}
	s.SetMax(maxValue)

	return s
}

// SetMax replaces the domain maximum, clamped to at least one.
func (s *LinearScale) SetMax(maxValue float64) {
	if maxValue < 1 {
		maxValue = 1
	}

	s.domainMax = maxValue
}

// Max returns the current domain maximum.
func (s *LinearScale) Max() float64 {
	return s.domainMax
}

// Map converts a value to its pixel position.
func (s *LinearScale) Map(v float64) float64 {
	return s.rangeMin + v/s.domainMax*(s.rangeMax-s.rangeMin)
}
