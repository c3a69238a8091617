package commands

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/solvetrack/solvetrack/internal/config"
	"github.com/solvetrack/solvetrack/internal/event"
	"github.com/solvetrack/solvetrack/internal/observability"
)

const (
	serveCmdUse      = "serve <events.json>"
	serveCmdShort    = "Serve the activity dashboard over HTTP"
	serveArgCount    = 1
	serveReadTimeout = 10 * time.Second
	serveIdleTimeout = 60 * time.Second
)

// NewServeCommand creates the serve subcommand.
func NewServeCommand() *cobra.Command {
	var (
		configPath string
		listen     string
	)

	cmd := &cobra.Command{
		Use:   serveCmdUse,
		Short: serveCmdShort,
		Args:  cobra.ExactArgs(serveArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			return runServe(args[0], configPath, listen)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}

func runServe(eventsPath, configPath, listen string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if listen == "" {
		listen = cfg.Serve.Listen
	}

	events, loadErr := event.LoadFile(eventsPath)
	if loadErr != nil {
		return fmt.Errorf("load events: %w", loadErr)
	}

	metrics := observability.NewMetrics()

	handler := newServeHandler(cfg, events, metrics)

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/", handler.dashboard)
	router.Get("/healthz", handler.health)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	slog.Default().Info("serving dashboard", "listen", listen, "events", len(events))

	server := &http.Server{
		Addr:        listen,
		Handler:     router,
		ReadTimeout: serveReadTimeout,
		IdleTimeout: serveIdleTimeout,
	}

	serveErr := server.ListenAndServe()
	if serveErr != nil {
		return fmt.Errorf("serve: %w", serveErr)
	}

	return nil
}

// serveHandler renders the dashboard per request. Each request builds a
// fresh chart instance, so no chart state is shared across goroutines;
// the metrics registry is the only cross-request state.
type serveHandler struct {
	cfg     *config.Config
	events  []event.Event
	metrics *observability.Metrics
}

func newServeHandler(cfg *config.Config, events []event.Event, metrics *observability.Metrics) *serveHandler {
	return &serveHandler{cfg: cfg, events: events, metrics: metrics}
}

// dashboard renders the chart with view/stack/granularity taken from
// query parameters, falling back to configured defaults.
func (h *serveHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.metrics.RequestsInFly.Inc()
	defer h.metrics.RequestsInFly.Dec()

	query := r.URL.Query()

	view, viewErr := viewFromFlags(h.cfg, query.Get("view"), query.Get("stack"), query.Get("granularity"))
	if viewErr != nil {
		http.Error(w, viewErr.Error(), http.StatusBadRequest)

		return
	}

	started := time.Now()

	dash, buildErr := buildDashboard(h.cfg, h.events, view)
	if buildErr != nil {
		http.Error(w, buildErr.Error(), http.StatusInternalServerError)

		return
	}
	defer dash.instance.Destroy()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	writeErr := dash.surface.WritePage(w, "Activity", subtitle(view), yAxisLabel(view))
	if writeErr != nil {
		slog.Default().Error("write dashboard", "error", writeErr)

		return
	}

	h.metrics.RenderDuration.Observe(time.Since(started).Seconds())
	h.metrics.RendersTotal.WithLabelValues(string(view.View), string(view.Granularity)).Inc()
}

func (h *serveHandler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
