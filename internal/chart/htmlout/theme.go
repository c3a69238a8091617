// Package htmlout is the go-echarts drawing surface: it retains the
// reconciled bar set and exports the linked detail/overview dashboard as
// a standalone HTML page. Transitions and pointer handling are delegated
// to the ECharts runtime embedded in the page.
//
// The retained detail set honors the keyed surface contract and exposes
// the reconciled geometry to callers; the exported page itself is built
// from the full-span overview bars, with the embedded runtime owning the
// windowed detail view through the DataZoom slider.
package htmlout

// Theme represents a color theme for the exported page.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeConfig holds theme-specific chart styling values.
type ThemeConfig struct {
	ChartBackground string
	ChartGrid       string
	ChartAxis       string
	ChartText       string
	ChartTextMuted  string
	GhostColor      string
	EChartsTheme    string
}

// GetThemeConfig returns the configuration for a given theme.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

var lightTheme = ThemeConfig{
	ChartBackground: "#ffffff",
	ChartGrid:       "#e7e5e4", // stone-200.
	ChartAxis:       "#d6d3d1", // stone-300.
	ChartText:       "#1c1917", // stone-900.
	ChartTextMuted:  "#78716c", // stone-500.
	GhostColor:      "rgba(120, 113, 108, 0.18)",
	EChartsTheme:    "",
}

var darkTheme = ThemeConfig{
	ChartBackground: "#1c1917", // stone-900.
	ChartGrid:       "#292524", // stone-800.
	ChartAxis:       "#44403c", // stone-700.
	ChartText:       "#fafaf9", // stone-50.
	ChartTextMuted:  "#a8a29e", // stone-400.
	GhostColor:      "rgba(168, 162, 158, 0.18)",
	EChartsTheme:    "dark",
}
