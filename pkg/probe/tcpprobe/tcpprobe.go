package tcpprobe

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/jason-murray/internet-check/pkg/probe"
)

const defaultPort = "53"

// TCPProber checks reachability by opening and immediately closing a TCP
// connection. Targets without an explicit port are probed on port 53,
// which the usual public resolver targets all answer on.
type TCPProber struct {
	dialer net.Dialer
}

func New(timeout time.Duration) *TCPProber {
	return &TCPProber{
		dialer: net.Dialer{
			Timeout:   timeout,
			KeepAlive: -1,
		},
	}
}

func (p *TCPProber) Probe(ctx context.Context, target string) probe.Result {
	address := target
	if !strings.Contains(address, ":") {
		address = net.JoinHostPort(address, defaultPort)
	}

	start := time.Now()
	conn, err := p.dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return probe.Failure(target, classify(err), err.Error())
	}
	_ = conn.Close()
	return probe.Success(target, time.Since(start))
}

func classify(err error) probe.ErrorClass {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return probe.ErrTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return probe.ErrUnreachable
	}
	return probe.ErrOther
}
