package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/analysis"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/config"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/event"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/extract"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/job"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/orchestrator"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/server/api"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run(ctx context.Context, cfg *config.Config) error {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err == nil {
		zerolog.SetGlobalLevel(level)
	}
	log.Debug().Str("level", cfg.Logging.Level).Msg("log level configured")

	bus := event.NewBus()
	setupEventLogging(bus)

	analyzers := analysis.NewRegistry()
	for _, a := range analysis.Default(cfg.Limits.MaxInputChars) {
		analyzers.Register(a)
	}
	log.Info().Strs("analyzers", analyzers.List()).Msg("analyzers registered")

	registry := job.NewRegistry()
	lifecycle := job.NewLifecycle(registry)
	orch := orchestrator.New(orchestrator.NewRunners(analyzers.All()), lifecycle, bus)

	e := echo.New()
	e.HideBanner = true

	api.SetupRouter(e, api.RouterConfig{
		Registry:       registry,
		Orchestrator:   orch,
		Extractor:      extract.New(),
		MaxUploadBytes: cfg.Limits.MaxUploadBytes,
	})

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	return nil
}

// setupEventLogging subscribes log handlers to job lifecycle events.
func setupEventLogging(bus event.Bus) {
	logJob := func(ev *zerolog.Event, p event.JobEvent, msg string) {
		ev.Str("job_id", p.JobID).
			Int("agents_completed", p.AgentsCompleted).
			Int("agents_failed", p.AgentsFailed).
			Dur("elapsed", p.Elapsed).
			Msg(msg)
	}

	bus.Subscribe(event.EventJobStarted, func(ctx context.Context, e event.Event) error {
		log.Info().Str("job_id", e.Job.JobID).Msg("analysis started")
		return nil
	})

	bus.Subscribe(event.EventJobCompleted, func(ctx context.Context, e event.Event) error {
		logJob(log.Info(), e.Job, "job completed")
		return nil
	})

	bus.Subscribe(event.EventJobPartial, func(ctx context.Context, e event.Event) error {
		logJob(log.Warn().Str("warning", e.Job.Warning), e.Job, "job partially completed")
		return nil
	})

	bus.Subscribe(event.EventJobFailed, func(ctx context.Context, e event.Event) error {
		logJob(log.Warn(), e.Job, "job failed")
		return nil
	})
}
