package pingprobe

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"time"

	"github.com/jason-murray/internet-check/pkg/probe"
)

// gracePeriod is added on top of the ping deadline so the command itself
// gets to report a timeout before we kill it.
const gracePeriod = time.Second

// PingProber shells out to ping(8) with a single echo request per probe.
type PingProber struct {
	timeout time.Duration
}

func New(timeout time.Duration) *PingProber {
	return &PingProber{timeout: timeout}
}

func (p *PingProber) Probe(ctx context.Context, target string) probe.Result {
	ctx, cancel := context.WithTimeout(ctx, p.timeout+gracePeriod)
	defer cancel()

	deadlineSeconds := int(p.timeout / time.Second)
	if deadlineSeconds < 1 {
		deadlineSeconds = 1
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, "ping", "-c", "1", "-W", strconv.Itoa(deadlineSeconds), target)
	err := cmd.Run()
	if err == nil {
		return probe.Success(target, time.Since(start))
	}
	return probe.Failure(target, classify(ctx, err), err.Error())
}

func classify(ctx context.Context, err error) probe.ErrorClass {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return probe.ErrTimeout
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return probe.ErrUnreachable
	}
	return probe.ErrOther
}
