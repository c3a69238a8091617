package segment

import "github.com/solvetrack/solvetrack/internal/bucket"

// ColorNeutral is the fallback for labels the palette does not know.
const ColorNeutral = "#78716c"

// Default segment colors.
const (
	colorEasy     = "#22c55e"
	colorMedium   = "#eab308"
	colorHard     = "#ef4444"
	colorAccepted = "#10b981"
	colorFailed   = "#f43f5e"
)

// languageColors cycles for language stacks; assignment is by first-seen
// order within the dataset, so a language keeps its color across buckets.
var languageColors = []string{
	"#3b82f6", "#8b5cf6", "#ec4899", "#f97316", "#14b8a6",
	"#a3e635", "#06b6d4", "#d946ef", "#f59e0b", "#6366f1",
}

// DefaultPalette returns a palette covering the fixed stack labels and
// assigning stable cycling colors to languages. Unknown labels resolve to
// ColorNeutral; the palette never fails.
func DefaultPalette(languages []string) Palette {
	byLanguage := make(map[string]string, len(languages))
	for i, lang := range languages {
		byLanguage[lang] = languageColors[i%len(languageColors)]
	}

	return func(label string) string {
		switch label {
		case LabelEasy:
			return colorEasy
		case LabelMedium:
			return colorMedium
		case LabelHard:
			return colorHard
		case LabelAccepted:
			return colorAccepted
		case LabelFailed:
			return colorFailed
		}

		if c, ok := byLanguage[label]; ok {
			return c
		}

		return ColorNeutral
	}
}

// Languages returns every language present in the blocks, in first-seen
// order across the dataset, for stable palette assignment.
func Languages(blocks []bucket.TimeBlock) []string {
	seen := make(map[string]bool)

	var out []string

	for _, block := range blocks {
		for _, lang := range block.LanguageOrder {
			if !seen[lang] {
				seen[lang] = true

				out = append(out, lang)
			}
		}
	}

	return out
}
