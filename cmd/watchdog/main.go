package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jason-murray/internet-check/internal/action"
	"github.com/jason-murray/internet-check/internal/config"
	"github.com/jason-murray/internet-check/internal/health"
	"github.com/jason-murray/internet-check/internal/metrics"
	"github.com/jason-murray/internet-check/internal/monitor"
	"github.com/jason-murray/internet-check/internal/status"
	"github.com/jason-murray/internet-check/pkg/probe"
	"github.com/jason-murray/internet-check/pkg/probe/strategies"
)

func loggerLevelFromString(level string) zerolog.Level {
	level = strings.ToLower(level)
	switch level {
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	case "info":
		return zerolog.InfoLevel
	case "debug":
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func setupLogger() {
	zerolog.TimestampFieldName = "ts"
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func main() {
	setupLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Error().
			Str("event", "config_error").
			Str("message", err.Error()).
			Send()
		os.Exit(1)
	}
	log.Logger = log.Level(loggerLevelFromString(cfg.LoggerLevel))

	log.Info().
		Str("event", "startup").
		Strs("ping_targets", cfg.Targets()).
		Int("check_interval_seconds", cfg.CheckIntervalSeconds).
		Int("failure_threshold", cfg.FailureThreshold).
		Int("cooldown_seconds", cfg.CooldownSeconds).
		Int("ping_timeout_seconds", cfg.PingTimeoutSeconds).
		Str("probe_strategy", cfg.ProbeStrategy).
		Str("health_file", cfg.HealthFile).
		Str("action_path", cfg.ActionPath).
		Send()

	prober, err := strategies.New(probe.StrategyName(cfg.ProbeStrategy), cfg.PingTimeout())
	if err != nil {
		log.Error().
			Str("event", "config_error").
			Str("message", err.Error()).
			Send()
		os.Exit(1)
	}

	var m metrics.Metrics = metrics.Noop{}
	if cfg.StatsdAddr != "" {
		m = metrics.NewStatsd(cfg.StatsdAddr)
	}

	publisher := health.NewPublisher(cfg.HealthFile)

	if cfg.StatusAddr != "" {
		srv := status.NewServer(cfg.StatusAddr, publisher)
		srv.Start()
		defer srv.Close()
	}

	mon := monitor.New(
		monitor.Config{
			Targets:          cfg.Targets(),
			CheckInterval:    cfg.CheckInterval(),
			FailureThreshold: cfg.FailureThreshold,
			Cooldown:         cfg.Cooldown(),
		},
		prober,
		action.NewExecRunner(cfg.ActionPath),
		publisher,
		m,
	)

	_ = mon.Run(ctx)
}
