// Package render turns bucket lists into keyed bar geometry and
// reconciles consecutive renders with enter/update/exit transitions over
// an abstract drawing surface.
package render

import "time"

// Easing names the timing curve applied to a transition.
type Easing string

// EaseOut is the only curve the chart uses.
const EaseOut Easing = "ease-out"

// defaultAnimationDuration is the transition length when the caller does
// not configure one.
const defaultAnimationDuration = 300 * time.Millisecond

// Animation is the transition policy attached to every surface
// operation. It is a parameter, not core logic: a surface may honor it,
// shorten it, or draw immediately.
type Animation struct {
	Duration time.Duration
	Easing   Easing
}

// DefaultAnimation returns the standard short ease-out transition.
func DefaultAnimation() Animation {
	return Animation{Duration: defaultAnimationDuration, Easing: EaseOut}
}

// Surface receives reconciled bar operations, keyed by bucket date.
//
// A surface must treat a new operation for a key as superseding any
// in-flight transition for that key; operations never queue. Enter
// transitions start from zero height, exit transitions end at zero
// height and opacity before removal.
type Surface interface {
	// Create introduces a bar that was absent from the previous render.
	Create(key time.Time, bar Bar, anim Animation)

	// Update moves an existing bar from its previous geometry to new
	// geometry.
	Update(key time.Time, from, to Bar, anim Animation)

	// Destroy removes a bar absent from the new render. last is the
	// geometry the bar had before exiting.
	Destroy(key time.Time, last Bar, anim Animation)
}
