package strategies

import (
	"fmt"
	"time"

	"github.com/jason-murray/internet-check/pkg/probe"
	"github.com/jason-murray/internet-check/pkg/probe/mockprobe"
	"github.com/jason-murray/internet-check/pkg/probe/pingprobe"
	"github.com/jason-murray/internet-check/pkg/probe/tcpprobe"
)

// New builds a prober for the named strategy with the given per-probe timeout.
func New(name probe.StrategyName, timeout time.Duration) (probe.Prober, error) {
	switch name {
	case probe.PingStrategy:
		return pingprobe.New(timeout), nil
	case probe.TCPStrategy:
		return tcpprobe.New(timeout), nil
	case probe.MockStrategy:
		return mockprobe.New(), nil
	}
	return nil, fmt.Errorf("unknown probe strategy: %s", name)
}
