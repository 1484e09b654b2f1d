package metrics

import "time"

// Noop is used when no statsd sink is configured.
type Noop struct{}

func (Noop) Increment(string)               {}
func (Noop) Duration(string, time.Duration) {}
func (Noop) Gauge(string, int)              {}
