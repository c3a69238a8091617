package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/solvetrack/solvetrack/internal/bucket"
	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/event"
)

const (
	summaryCmdUse   = "summary <events.json>"
	summaryCmdShort = "Print per-bucket aggregates"
	summaryArgCount = 1

	formatTable = "table"
	formatYAML  = "yaml"
)

// NewSummaryCommand creates the summary subcommand.
func NewSummaryCommand() *cobra.Command {
	var (
		configPath  string
		granularity string
		format      string
	)

	cmd := &cobra.Command{
		Use:   summaryCmdUse,
		Short: summaryCmdShort,
		Args:  cobra.ExactArgs(summaryArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSummary(args[0], configPath, granularity, format)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&granularity, "granularity", "", "bucket granularity: daily, weekly, or monthly")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table or yaml")

	return cmd
}

func runSummary(eventsPath, configPath, granularity, format string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	view, viewErr := viewFromFlags(cfg, "", "", granularity)
	if viewErr != nil {
		return viewErr
	}

	events, loadErr := event.LoadFile(eventsPath)
	if loadErr != nil {
		return fmt.Errorf("load events: %w", loadErr)
	}

	blocks := bucket.Bucket(events, view.Granularity)

	switch format {
	case formatYAML:
		return writeYAMLSummary(blocks)
	case formatTable:
		writeTableSummary(blocks)

		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTable, formatYAML)
	}
}

func writeYAMLSummary(blocks []bucket.TimeBlock) error {
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close() //nolint:errcheck // encode error surfaces below

	encodeErr := enc.Encode(blocks)
	if encodeErr != nil {
		return fmt.Errorf("encode summary: %w", encodeErr)
	}

	return nil
}

func writeTableSummary(blocks []bucket.TimeBlock) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Period", "Easy", "Medium", "Hard", "Accepted", "Failed", "Top Language"})

	for _, block := range blocks {
		t.AppendRow(table.Row{
			block.Label,
			humanize.Comma(int64(block.Problems.Easy)),
			humanize.Comma(int64(block.Problems.Medium)),
			humanize.Comma(int64(block.Problems.Hard)),
			humanize.Comma(int64(block.Submissions.Accepted)),
			humanize.Comma(int64(block.Submissions.Failed)),
			topLanguage(block),
		})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}

// topLanguage returns the bucket's most used language, breaking count
// ties by first-seen order.
func topLanguage(block bucket.TimeBlock) string {
	if len(block.LanguageOrder) == 0 {
		return "-"
	}

	langs := make([]string, len(block.LanguageOrder))
	copy(langs, block.LanguageOrder)

	sort.SliceStable(langs, func(i, j int) bool {
		return block.LanguageCounts[langs[i]] > block.LanguageCounts[langs[j]]
	})

	return langs[0]
}
