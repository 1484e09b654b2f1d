package probe

import (
	"context"
	"time"
)

type StrategyName string

const (
	PingStrategy StrategyName = "ping"
	TCPStrategy  StrategyName = "tcp"
	MockStrategy StrategyName = "mock"
)

// ErrorClass tags a failed probe. Other carries a message alongside.
type ErrorClass string

const (
	ErrUnreachable ErrorClass = "unreachable"
	ErrTimeout     ErrorClass = "timeout"
	ErrOther       ErrorClass = "other"
)

// Result is the outcome of one reachability check against one target.
// LatencyMs is meaningful only when Success is true; Class and Message
// only when it is false.
type Result struct {
	Target    string
	Success   bool
	LatencyMs int64
	Class     ErrorClass
	Message   string
}

// ErrorText returns the value for the error field of a check_result log
// entry: the classification tag, or the raw message for the other class.
func (r Result) ErrorText() string {
	if r.Class == ErrOther && r.Message != "" {
		return r.Message
	}
	return string(r.Class)
}

// Prober performs a single reachability check. Implementations must not
// block past their configured timeout plus a small grace period and must
// resolve every failure mode into the Result, never an error or a panic.
type Prober interface {
	Probe(ctx context.Context, target string) Result
}

func Success(target string, latency time.Duration) Result {
	return Result{
		Target:    target,
		Success:   true,
		LatencyMs: latency.Milliseconds(),
	}
}

func Failure(target string, class ErrorClass, message string) Result {
	return Result{
		Target:  target,
		Class:   class,
		Message: message,
	}
}
