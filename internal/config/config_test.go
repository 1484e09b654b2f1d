package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PING_TARGETS", "1.1.1.1,8.8.8.8")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"1.1.1.1", "8.8.8.8"}, cfg.Targets())
	assert.Equal(t, 30*time.Second, cfg.CheckInterval())
	assert.Equal(t, 3, cfg.FailureThreshold)
	assert.Equal(t, 300*time.Second, cfg.Cooldown())
	assert.Equal(t, 5*time.Second, cfg.PingTimeout())
	assert.Equal(t, "ping", cfg.ProbeStrategy)
	assert.Equal(t, "/tmp/health_status", cfg.HealthFile)
	assert.Equal(t, "/action.sh", cfg.ActionPath)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CHECK_INTERVAL_SECONDS", "10")
	t.Setenv("FAILURE_THRESHOLD", "5")
	t.Setenv("COOLDOWN_SECONDS", "60")
	t.Setenv("PING_TIMEOUT_SECONDS", "2")
	t.Setenv("PROBE_STRATEGY", "tcp")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.CheckInterval())
	assert.Equal(t, 5, cfg.FailureThreshold)
	assert.Equal(t, 60*time.Second, cfg.Cooldown())
	assert.Equal(t, 2*time.Second, cfg.PingTimeout())
	assert.Equal(t, "tcp", cfg.ProbeStrategy)
}

func TestLoadMissingTargets(t *testing.T) {
	t.Setenv("PING_TARGETS", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadWhitespaceTargets(t *testing.T) {
	t.Setenv("PING_TARGETS", " , ,")

	_, err := Load()
	assert.Error(t, err)
}

func TestTargetsTrimmed(t *testing.T) {
	t.Setenv("PING_TARGETS", " 1.1.1.1 , , 8.8.8.8 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"1.1.1.1", "8.8.8.8"}, cfg.Targets())
}

func TestLoadRejectsNonPositiveSettings(t *testing.T) {
	for _, name := range []string{
		"CHECK_INTERVAL_SECONDS",
		"FAILURE_THRESHOLD",
		"COOLDOWN_SECONDS",
		"PING_TIMEOUT_SECONDS",
	} {
		t.Run(name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(name, "0")

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsUnparsableInterval(t *testing.T) {
	setRequired(t)
	t.Setenv("CHECK_INTERVAL_SECONDS", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	setRequired(t)
	t.Setenv("PROBE_STRATEGY", "udp")

	_, err := Load()
	assert.Error(t, err)
}
