package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vrischmann/envconfig"

	"github.com/jason-murray/internet-check/pkg/probe"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	PingTargets          string `envconfig:"PING_TARGETS"`
	CheckIntervalSeconds int    `envconfig:"CHECK_INTERVAL_SECONDS,default=30"`
	FailureThreshold     int    `envconfig:"FAILURE_THRESHOLD,default=3"`
	CooldownSeconds      int    `envconfig:"COOLDOWN_SECONDS,default=300"`
	PingTimeoutSeconds   int    `envconfig:"PING_TIMEOUT_SECONDS,default=5"`

	ProbeStrategy string `envconfig:"PROBE_STRATEGY,default=ping"`
	HealthFile    string `envconfig:"HEALTH_FILE,default=/tmp/health_status"`
	ActionPath    string `envconfig:"ACTION_PATH,default=/action.sh"`

	StatusAddr  string `envconfig:"STATUS_ADDR,optional"`
	StatsdAddr  string `envconfig:"STATSD_ADDR,optional"`
	LoggerLevel string `envconfig:"LOGGER_LEVEL,default=info"`
}

func Load() (Config, error) {
	cfg := Config{}
	if err := envconfig.Init(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Targets()) == 0 {
		return fmt.Errorf("PING_TARGETS must contain at least one target")
	}
	for name, value := range map[string]int{
		"CHECK_INTERVAL_SECONDS": c.CheckIntervalSeconds,
		"FAILURE_THRESHOLD":      c.FailureThreshold,
		"COOLDOWN_SECONDS":       c.CooldownSeconds,
		"PING_TIMEOUT_SECONDS":   c.PingTimeoutSeconds,
	} {
		if value <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %d", name, value)
		}
	}
	switch probe.StrategyName(c.ProbeStrategy) {
	case probe.PingStrategy, probe.TCPStrategy, probe.MockStrategy:
	default:
		return fmt.Errorf("unknown PROBE_STRATEGY: %q", c.ProbeStrategy)
	}
	return nil
}

// Targets returns the configured target list, trimmed, empty entries dropped.
func (c Config) Targets() []string {
	var targets []string
	for _, raw := range strings.Split(c.PingTargets, ",") {
		if t := strings.TrimSpace(raw); t != "" {
			targets = append(targets, t)
		}
	}
	return targets
}

func (c Config) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}

func (c Config) Cooldown() time.Duration {
	return time.Duration(c.CooldownSeconds) * time.Second
}

func (c Config) PingTimeout() time.Duration {
	return time.Duration(c.PingTimeoutSeconds) * time.Second
}
