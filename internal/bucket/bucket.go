// Package bucket groups submission events into ordered calendar-period
// buckets and derives the aggregates the activity chart renders.
//
// All period canonicalization is done in UTC: event timestamps are
// normalized with time.Time.UTC before key derivation, and bucket start
// dates are constructed in time.UTC. This keeps bucket keys stable across
// machines and makes boundary behavior deterministic.
package bucket

import (
	"fmt"
	"sort"
	"time"

	"github.com/solvetrack/solvetrack/internal/event"
)

// Granularity selects the calendar period a bucket spans.
type Granularity string

// Supported bucket granularities.
const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// Valid reports whether g is a known granularity.
func (g Granularity) Valid() bool {
	switch g {
	case Daily, Weekly, Monthly:
		return true
	default:
		return false
	}
}

// ProblemCounts holds first-solve problem counts by difficulty.
type ProblemCounts struct {
	Easy   int `json:"easy" yaml:"easy"`
	Medium int `json:"medium" yaml:"medium"`
	Hard   int `json:"hard" yaml:"hard"`
}

// Total returns the summed problem count across difficulties.
func (p ProblemCounts) Total() int {
	return p.Easy + p.Medium + p.Hard
}

// SubmissionCounts holds raw submission counts by outcome.
type SubmissionCounts struct {
	Accepted int `json:"accepted" yaml:"accepted"`
	Failed   int `json:"failed" yaml:"failed"`
}

// Total returns the summed submission count across outcomes.
func (s SubmissionCounts) Total() int {
	return s.Accepted + s.Failed
}

// TimeBlock is one calendar-period bucket of aggregated events.
//
// Problems counts the distinct problems whose first-ever accepted
// submission falls in this bucket; a problem is counted in exactly one
// bucket no matter how many accepted submissions it accumulates.
type TimeBlock struct {
	BucketDate     time.Time        `json:"bucket_date" yaml:"bucket_date"`
	Label          string           `json:"label" yaml:"label"`
	Problems       ProblemCounts    `json:"problems" yaml:"problems"`
	Submissions    SubmissionCounts `json:"submissions" yaml:"submissions"`
	LanguageCounts map[string]int   `json:"language_counts" yaml:"language_counts"`

	// LanguageOrder records languages in first-seen event order so segment
	// decomposition is deterministic across runs.
	LanguageOrder []string `json:"language_order" yaml:"language_order"`
}

// OverviewSummary describes the full dataset span for scale setup.
// MaxValue is floored at 1 so value scales never collapse.
type OverviewSummary struct {
	StartDate time.Time `json:"start_date" yaml:"start_date"`
	EndDate   time.Time `json:"end_date" yaml:"end_date"`
	MaxValue  int       `json:"max_value" yaml:"max_value"`
}

// Bucket groups events into TimeBlocks at the given granularity, sorted
// ascending by bucket date. An empty input yields an empty slice.
//
// Problem counting is first-solve-wins across the whole dataset: events
// are processed in timestamp order, and only a problem's first accepted
// submission increments the difficulty count of its bucket. Later
// accepted submissions for the same problem, in the same bucket or any
// other, do not count again.
func Bucket(events []event.Event, granularity Granularity) []TimeBlock {
	if len(events) == 0 {
		return nil
	}

	ordered := make([]event.Event, len(events))
	copy(ordered, events)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	blocks := make(map[time.Time]*TimeBlock)
	solved := make(map[string]bool)

	for _, ev := range ordered {
		start := PeriodStart(ev.Timestamp, granularity)

		block := blocks[start]
		if block == nil {
			block = &TimeBlock{
				BucketDate:     start,
				Label:          periodLabel(start, granularity),
				LanguageCounts: make(map[string]int),
			}
			blocks[start] = block
		}

		applyEvent(block, solved, ev)
	}

	out := make([]TimeBlock, 0, len(blocks))
	for _, block := range blocks {
		out = append(out, *block)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].BucketDate.Before(out[j].BucketDate)
	})

	return out
}

func applyEvent(block *TimeBlock, solved map[string]bool, ev event.Event) {
	if ev.Accepted() {
		block.Submissions.Accepted++
	} else {
		block.Submissions.Failed++
	}

	if ev.Language != "" {
		if _, seen := block.LanguageCounts[ev.Language]; !seen {
			block.LanguageOrder = append(block.LanguageOrder, ev.Language)
		}

		block.LanguageCounts[ev.Language]++
	}

	// Only a problem's first accepted submission counts it as solved.
	if !ev.Accepted() || solved[ev.ProblemID] {
		return
	}

	solved[ev.ProblemID] = true

	switch ev.Difficulty {
	case event.DifficultyEasy:
		block.Problems.Easy++
	case event.DifficultyMedium:
		block.Problems.Medium++
	case event.DifficultyHard:
		block.Problems.Hard++
	case event.DifficultyUnset:
	}
}

// PeriodStart returns the canonical UTC start instant of the period
// containing ts at the given granularity: midnight of the calendar day
// for Daily, midnight of the ISO-8601 Monday for Weekly, midnight of the
// 1st of the month for Monthly.
func PeriodStart(ts time.Time, granularity Granularity) time.Time {
	utc := ts.UTC()

	switch granularity {
	case Weekly:
		return isoWeekStart(utc)
	case Monthly:
		return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Daily:
		fallthrough
	default:
		return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// isoWeekStart returns midnight of the Monday of the ISO-8601 week
// containing ts. ISO weeks run Monday through Sunday, so Sunday backs up
// six days rather than zero.
func isoWeekStart(ts time.Time) time.Time {
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)

	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	return day.AddDate(0, 0, -offset)
}

// periodLabel formats the human-readable label for a bucket start date.
func periodLabel(start time.Time, granularity Granularity) string {
	switch granularity {
	case Weekly:
		year, week := start.ISOWeek()

		return fmt.Sprintf("%s (W%02d %d)", start.Format("Jan 2"), week, year)
	case Monthly:
		return start.Format("Jan 2006")
	case Daily:
		fallthrough
	default:
		return start.Format("Jan 2, 2006")
	}
}

// Summarize derives the OverviewSummary for a bucket list under the given
// view total function. MaxValue is floored at 1 to avoid degenerate value
// scales. Returns the zero summary for an empty list.
func Summarize(blocks []TimeBlock, total func(TimeBlock) int) OverviewSummary {
	if len(blocks) == 0 {
		return OverviewSummary{MaxValue: 1}
	}

	summary := OverviewSummary{
		StartDate: blocks[0].BucketDate,
		EndDate:   blocks[len(blocks)-1].BucketDate,
		MaxValue:  1,
	}

	for _, block := range blocks {
		v := total(block)
		if v > summary.MaxValue {
			summary.MaxValue = v
		}
	}

	return summary
}
