package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/event"
)

const (
	renderCmdUse     = "render <events.json>"
	renderCmdShort   = "Render an events dataset as an HTML activity dashboard"
	renderArgCount   = 1
	renderOutputPerm = 0o644
)

// ErrNoOutputFile is returned when the --output flag is not set.
var ErrNoOutputFile = errors.New("output file is required (use --output)")

// NewRenderCommand creates the render subcommand.
func NewRenderCommand() *cobra.Command {
	var (
		configPath  string
		outputPath  string
		viewMode    string
		stackMode   string
		granularity string
	)

	cmd := &cobra.Command{
		Use:   renderCmdUse,
		Short: renderCmdShort,
		Args:  cobra.ExactArgs(renderArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			if outputPath == "" {
				return ErrNoOutputFile
			}

			return runRender(args[0], outputPath, configPath, viewMode, stackMode, granularity)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output HTML file")
	cmd.Flags().StringVar(&viewMode, "view", "", "view mode: problems or submissions")
	cmd.Flags().StringVar(&stackMode, "stack", "", "stack mode: difficulty or language")
	cmd.Flags().StringVar(&granularity, "granularity", "", "bucket granularity: daily, weekly, or monthly")

	return cmd
}

func runRender(eventsPath, outputPath, configPath, viewMode, stackMode, granularity string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	view, viewErr := viewFromFlags(cfg, viewMode, stackMode, granularity)
	if viewErr != nil {
		return viewErr
	}

	events, loadErr := event.LoadFile(eventsPath)
	if loadErr != nil {
		return fmt.Errorf("load events: %w", loadErr)
	}

	dash, buildErr := buildDashboard(cfg, events, view)
	if buildErr != nil {
		return fmt.Errorf("build dashboard: %w", buildErr)
	}
	defer dash.instance.Destroy()

	out, createErr := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, renderOutputPerm) //nolint:gosec // user-chosen output path
	if createErr != nil {
		return fmt.Errorf("create output: %w", createErr)
	}
	defer out.Close() //nolint:errcheck // write error surfaces from WritePage

	writeErr := dash.surface.WritePage(out, "Activity", subtitle(view), yAxisLabel(view))
	if writeErr != nil {
		return fmt.Errorf("write dashboard: %w", writeErr)
	}

	slog.Default().Info("dashboard written",
		"output", outputPath,
		"events", len(events),
		"buckets", len(dash.blocks),
		"view", view.View,
		"granularity", view.Granularity)

	return nil
}
