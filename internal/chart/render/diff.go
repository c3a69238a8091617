package render

import (
	"sort"
	"time"
)

// Diff partitions a reconciliation into its three disjoint categories.
type Diff struct {
	Entered []Bar
	Updated []BarUpdate
	Exited  []Bar
}

// BarUpdate pairs a bar's previous geometry with its new geometry.
type BarUpdate struct {
	From Bar
	To   Bar
}

// diffBars reconciles the previous bar set against the new one, keyed by
// bucket date. Entered and Updated follow the order of next; Exited is
// sorted by key for determinism.
func diffBars(prev map[time.Time]Bar, next []Bar) Diff {
	var d Diff

	nextKeys := make(map[time.Time]bool, len(next))

	for _, bar := range next {
		nextKeys[bar.Key] = true

		if old, ok := prev[bar.Key]; ok {
			d.Updated = append(d.Updated, BarUpdate{From: old, To: bar})
		} else {
			d.Entered = append(d.Entered, bar)
		}
	}

	for key, bar := range prev {
		if !nextKeys[key] {
			d.Exited = append(d.Exited, bar)
		}
	}

	sort.Slice(d.Exited, func(i, j int) bool {
		return d.Exited[i].Key.Before(d.Exited[j].Key)
	})

	return d
}

// apply issues the diff to a surface: exits first so space frees up,
// then updates, then enters.
func (d Diff) apply(surface Surface, anim Animation) {
	for _, bar := range d.Exited {
		surface.Destroy(bar.Key, bar, anim)
	}

	for _, upd := range d.Updated {
		surface.Update(upd.To.Key, upd.From, upd.To, anim)
	}

	for _, bar := range d.Entered {
		surface.Create(bar.Key, bar, anim)
	}
}
