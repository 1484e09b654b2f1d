package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jason-murray/internet-check/internal/action"
	"github.com/jason-murray/internet-check/internal/metrics"
	"github.com/jason-murray/internet-check/pkg/probe"
)

type ActionRunner interface {
	Run() action.Outcome
}

type HealthPublisher interface {
	Publish(healthy bool)
}

type Config struct {
	Targets          []string
	CheckInterval    time.Duration
	FailureThreshold int
	Cooldown         time.Duration
}

// state is owned by the loop and mutated only from runRound; it is never
// handed out, so a later concurrent round implementation cannot grow
// hidden shared mutability around it.
type state struct {
	failures int
	healthy  bool
}

// Monitor drives the check -> evaluate -> act -> cooldown -> wait cycle.
type Monitor struct {
	cfg     Config
	prober  probe.Prober
	runner  ActionRunner
	health  HealthPublisher
	metrics metrics.Metrics

	state state
}

func New(cfg Config, prober probe.Prober, runner ActionRunner, health HealthPublisher, m metrics.Metrics) *Monitor {
	if m == nil {
		m = metrics.Noop{}
	}
	return &Monitor{
		cfg:     cfg,
		prober:  prober,
		runner:  runner,
		health:  health,
		metrics: m,
	}
}

// Run loops until ctx is cancelled. Nothing that happens inside a round
// is fatal; cancellation is the only way out.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		delay := m.runRound(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if delay > 0 && !sleep(ctx, delay) {
			return nil
		}
	}
}

// FailureCount exposes the consecutive-failure counter for tests.
func (m *Monitor) FailureCount() int {
	return m.state.failures
}

// Healthy reports the health flag as of the last completed round.
func (m *Monitor) Healthy() bool {
	return m.state.healthy
}

// runRound executes one full pass over the targets and returns the delay
// to apply before the next round. A round that ends in cooldown returns
// zero: the cooldown itself already elapsed and the next round starts
// immediately.
func (m *Monitor) runRound(ctx context.Context) time.Duration {
	start := time.Now()
	results := m.probeAll(ctx)

	anySuccess := false
	for _, res := range results {
		if res.Success {
			anySuccess = true
		}
	}

	m.metrics.Increment("check.round")
	m.metrics.Duration("check.round_time", time.Since(start))

	if anySuccess {
		m.state.failures = 0
		m.state.healthy = true
		m.health.Publish(true)
		m.metrics.Gauge("check.failures", 0)
		log.Info().
			Str("event", "check_complete").
			Bool("all_failed", false).
			Int("failure_count", 0).
			Send()
		return m.cfg.CheckInterval
	}

	m.state.failures++
	m.state.healthy = false
	m.health.Publish(false)
	m.metrics.Increment("check.all_failed")
	m.metrics.Gauge("check.failures", m.state.failures)

	evt := log.Warn()
	if m.state.failures >= m.cfg.FailureThreshold {
		evt = log.Error()
	}
	evt.
		Str("event", "check_complete").
		Bool("all_failed", true).
		Int("failure_count", m.state.failures).
		Send()

	if m.state.failures >= m.cfg.FailureThreshold {
		m.runAction()
		m.cooldown(ctx)
		return 0
	}
	return m.cfg.CheckInterval
}

// probeAll checks every target in declared order. There is no early exit
// on first success: a check_result entry for every target is part of the
// output contract.
func (m *Monitor) probeAll(ctx context.Context) []probe.Result {
	log.Info().
		Str("event", "check_started").
		Strs("targets", m.cfg.Targets).
		Send()

	results := make([]probe.Result, 0, len(m.cfg.Targets))
	for _, target := range m.cfg.Targets {
		res := m.safeProbe(ctx, target)
		results = append(results, res)

		entry := log.Info().
			Str("event", "check_result").
			Str("target", target).
			Bool("success", res.Success)
		if res.Success {
			m.metrics.Increment("probe.success")
			entry = entry.Int64("latency_ms", res.LatencyMs)
		} else {
			m.metrics.Increment("probe.failure")
			entry = entry.Str("error", res.ErrorText())
		}
		entry.Send()
	}
	return results
}

// safeProbe contains a misbehaving prober: a panic becomes an
// other-class failure for its target instead of taking down the loop.
func (m *Monitor) safeProbe(ctx context.Context, target string) (res probe.Result) {
	defer func() {
		if r := recover(); r != nil {
			res = probe.Failure(target, probe.ErrOther, fmt.Sprintf("probe panic: %v", r))
		}
	}()
	return m.prober.Probe(ctx, target)
}

func (m *Monitor) runAction() {
	m.metrics.Increment("action.invoked")
	log.Error().
		Str("event", "action_triggered").
		Int("failure_count", m.state.failures).
		Send()

	out := m.runner.Run()
	if out.NotFound {
		log.Error().
			Str("event", "action_failed").
			Str("error", "action executable not found").
			Str("path", out.Path).
			Send()
		return
	}
	if out.Message != "" {
		log.Error().
			Str("event", "action_failed").
			Str("error", out.Message).
			Send()
		return
	}

	log.Info().
		Str("event", "action_complete").
		Int("exit_code", out.ExitCode).
		Int64("duration_ms", out.DurationMs).
		Send()
	if out.Stdout != "" {
		log.Info().
			Str("event", "action_stdout").
			Str("output", out.Stdout).
			Send()
	}
	if out.Stderr != "" {
		log.Warn().
			Str("event", "action_stderr").
			Str("output", out.Stderr).
			Send()
	}
}

// cooldown holds the loop after a breach. The counter resets and health
// stays unhealthy until the next probing round says otherwise, whatever
// the action reported.
func (m *Monitor) cooldown(ctx context.Context) {
	log.Warn().
		Str("event", "cooldown_started").
		Int64("duration_ms", m.cfg.Cooldown.Milliseconds()).
		Send()
	m.metrics.Increment("cooldown.entered")

	sleep(ctx, m.cfg.Cooldown)

	m.state.failures = 0
	m.state.healthy = false
	m.health.Publish(false)
	m.metrics.Gauge("check.failures", 0)
	log.Info().
		Str("event", "cooldown_complete").
		Send()
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
