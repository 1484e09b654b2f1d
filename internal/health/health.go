package health

import (
	"os"
	"sync/atomic"

	retry "github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

const (
	healthyText   = "healthy"
	unhealthyText = "unhealthy"
)

// Publisher persists the latest health verdict to a status file the
// container runtime polls. Last write wins, whole-file overwrite. The
// latest value is also kept in memory for the status endpoint.
type Publisher struct {
	path    string
	healthy atomic.Bool
}

func NewPublisher(path string) *Publisher {
	return &Publisher{path: path}
}

// Publish records the verdict and rewrites the status file. A write that
// still fails after retries is logged and dropped; publishing is never
// allowed to take down the monitor.
func (p *Publisher) Publish(healthy bool) {
	p.healthy.Store(healthy)

	text := unhealthyText
	if healthy {
		text = healthyText
	}
	err := retry.Do(
		func() error {
			return os.WriteFile(p.path, []byte(text), 0o644)
		},
		retry.Attempts(3),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		log.Error().Err(err).Str("path", p.path).Msg("failed to write health status file")
	}
}

// Healthy returns the most recently published verdict.
func (p *Publisher) Healthy() bool {
	return p.healthy.Load()
}

// StatusText renders a verdict the way the status file spells it.
func StatusText(healthy bool) string {
	if healthy {
		return healthyText
	}
	return unhealthyText
}
