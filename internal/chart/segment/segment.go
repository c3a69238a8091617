// Package segment decomposes a time bucket into the ordered stacked
// segments the renderer draws, plus the ghost value of the complementary
// view mode.
package segment

import (
	"github.com/solvetrack/solvetrack/internal/bucket"
)

// ViewMode selects which aggregate the chart displays.
type ViewMode string

// View modes.
const (
	ViewProblems    ViewMode = "problems"
	ViewSubmissions ViewMode = "submissions"
)

// Valid reports whether v is a known view mode.
func (v ViewMode) Valid() bool {
	return v == ViewProblems || v == ViewSubmissions
}

// StackMode selects how the problems view is subdivided.
type StackMode string

// Stack modes.
const (
	StackDifficulty StackMode = "difficulty"
	StackLanguage   StackMode = "language"
)

// Valid reports whether s is a known stack mode.
func (s StackMode) Valid() bool {
	return s == StackDifficulty || s == StackLanguage
}

// ViewConfig is the caller-supplied view selection. It is replaced
// wholesale on an options update.
type ViewConfig struct {
	View        ViewMode           `json:"view" yaml:"view"`
	Stack       StackMode          `json:"stack" yaml:"stack"`
	Granularity bucket.Granularity `json:"granularity" yaml:"granularity"`
}

// DefaultViewConfig returns the initial view selection.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{View: ViewProblems, Stack: StackDifficulty, Granularity: bucket.Daily}
}

// Segment is one stacked slice of a bar.
type Segment struct {
	Label string
	Value int
	Color string
}

// Segment labels for the fixed stacks.
const (
	LabelEasy     = "Easy"
	LabelMedium   = "Medium"
	LabelHard     = "Hard"
	LabelAccepted = "Accepted"
	LabelFailed   = "Failed"
)

// Palette resolves a segment label to a color token. Unknown labels must
// resolve to a neutral fallback, never an error.
type Palette func(label string) string

// For returns the ordered visible segments of a block under the given
// view config. Zero-value segments are dropped. Order is fixed per
// view/stack mode and stable for a given block:
//
//   - problems/difficulty: Hard, Medium, Easy (hardest outermost)
//   - problems/language: languages in first-seen event order
//   - submissions: Failed, Accepted
func For(block bucket.TimeBlock, cfg ViewConfig, palette Palette) []Segment {
	if cfg.View == ViewSubmissions {
		return nonZero(
			Segment{Label: LabelFailed, Value: block.Submissions.Failed, Color: palette(LabelFailed)},
			Segment{Label: LabelAccepted, Value: block.Submissions.Accepted, Color: palette(LabelAccepted)},
		)
	}

	if cfg.Stack == StackLanguage {
		segments := make([]Segment, 0, len(block.LanguageOrder))
		for _, lang := range block.LanguageOrder {
			segments = append(segments, Segment{
				Label: lang,
				Value: block.LanguageCounts[lang],
				Color: palette(lang),
			})
		}

		return nonZero(segments...)
	}

	return nonZero(
		Segment{Label: LabelHard, Value: block.Problems.Hard, Color: palette(LabelHard)},
		Segment{Label: LabelMedium, Value: block.Problems.Medium, Color: palette(LabelMedium)},
		Segment{Label: LabelEasy, Value: block.Problems.Easy, Color: palette(LabelEasy)},
	)
}

// GhostValue returns the block's total under the complementary view
// mode, drawn as a low-opacity backdrop for cross-view comparison.
func GhostValue(block bucket.TimeBlock, cfg ViewConfig) int {
	if cfg.View == ViewSubmissions {
		return block.Problems.Total()
	}

	return block.Submissions.Total()
}

// Total returns the block's total under the active view mode.
func Total(block bucket.TimeBlock, cfg ViewConfig) int {
	if cfg.View == ViewSubmissions {
		return block.Submissions.Total()
	}

	return block.Problems.Total()
}

func nonZero(segments ...Segment) []Segment {
	out := segments[:0:0]

	for _, s := range segments {
		if s.Value != 0 {
			out = append(out, s)
		}
	}

	return out
}
