package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/valuelab/vehicle-appraisal/internal/api/handlers"
	"github.com/valuelab/vehicle-appraisal/internal/api/middleware"
	"github.com/valuelab/vehicle-appraisal/internal/config"
	"github.com/valuelab/vehicle-appraisal/internal/engine"
	"github.com/valuelab/vehicle-appraisal/internal/notify"
	"github.com/valuelab/vehicle-appraisal/internal/report"
	"github.com/valuelab/vehicle-appraisal/internal/store"
	"github.com/valuelab/vehicle-appraisal/internal/telemetry"
	"github.com/valuelab/vehicle-appraisal/pkg/logger"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(context.Background(), telemetry.Options{
			Endpoint:       cfg.Telemetry.Endpoint,
			ServiceName:    cfg.Telemetry.ServiceName,
			ServiceVersion: Version,
			Insecure:       cfg.Telemetry.Insecure,
		})
		if err != nil {
			return fmt.Errorf("setting up telemetry: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				log.Warn("telemetry shutdown failed", "error", err)
			}
		}()
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	st, err := store.NewPostgresStore(startCtx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := st.Migrate(startCtx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	eng := engine.NewEngine(st, buildNotifier(cfg, log), engineOptions(cfg, log)...)

	sched, err := engine.NewScheduler(
		eng,
		st,
		cfg.Schedule.SweepInterval,
		cfg.Schedule.PruneInterval,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.RecoverStaleJobRuns(startCtx)
	sched.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())

	api := humaecho.New(e, huma.DefaultConfig("Vehicle Appraisal API", Version))

	handlers.RegisterAppraisalRoutes(api, handlers.NewAppraisalsHandler(st, eng, log))
	handlers.RegisterComparableRoutes(api, handlers.NewComparablesHandler(st, eng, log))
	handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysisHandler(st))
	handlers.RegisterRecomputeRoutes(api, handlers.NewRecomputeHandler(eng))
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterTriggerRoutes(api, handlers.NewSweepHandler(eng), handlers.NewPruneHandler(eng))

	// Raw echo routes: infrastructure endpoints and the report, whose
	// response is a document rather than JSON.
	healthH := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthH.Healthz)
	e.GET("/readyz", healthH.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	var pdf *report.PDFRenderer
	if cfg.Report.PDFEnabled {
		pdf = report.NewPDFRenderer(cfg.Report.ChromePath, cfg.Report.PageTimeout)
	}
	reportH := handlers.NewReportHandler(st, pdf)
	e.GET("/api/v1/appraisals/:id/report", reportH.Get)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	// Let in-flight scheduler jobs finish before the store closes.
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler jobs still running at shutdown deadline")
	}

	log.Info("server stopped")
	return nil
}

// buildNotifier assembles the alert fan-out from config. With nothing
// enabled, alerts are logged and dropped.
func buildNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	var notifiers []notify.Notifier

	if cfg.Notifications.Discord.Enabled {
		notifiers = append(notifiers, notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL))
	}
	if cfg.Notifications.Webhook.Enabled {
		notifiers = append(notifiers, notify.NewWebhookNotifier(
			cfg.Notifications.Webhook.URL,
			notify.WithHeaders(cfg.Notifications.Webhook.Headers),
		))
	}

	switch len(notifiers) {
	case 0:
		return notify.NewNoOpNotifier(log)
	case 1:
		return notifiers[0]
	default:
		return notify.NewMulti(notifiers...)
	}
}

// engineOptions maps config onto engine options.
func engineOptions(cfg *config.Config, log *slog.Logger) []engine.EngineOption {
	minConfidence := cfg.Alerts.MinConfidence
	minComparables := cfg.Alerts.MinComparables
	policy := domain.AlertPolicy{
		MinConfidence:  &minConfidence,
		MinComparables: &minComparables,
	}
	if cfg.Alerts.MinDifferencePct > 0 {
		policy.MinDifferencePct = &cfg.Alerts.MinDifferencePct
	}

	return []engine.EngineOption{
		engine.WithLogger(log),
		engine.WithTables(cfg.Valuation.Tables(time.Now().Year())),
		engine.WithAlertPolicy(policy),
		engine.WithReAlerts(cfg.Alerts.ReAlertsEnabled),
		engine.WithRateLimit(cfg.Recompute.PerSecond, cfg.Recompute.Burst),
		engine.WithStaleAfter(cfg.Schedule.StaleAfter),
		engine.WithSweepConcurrency(cfg.Schedule.SweepConcurrency),
		engine.WithStaggerOffset(cfg.Schedule.StaggerOffset),
		engine.WithRetention(cfg.Schedule.HistoryRetention, cfg.Schedule.HistoryKeep),
	}
}
