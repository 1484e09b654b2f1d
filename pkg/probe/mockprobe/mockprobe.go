package mockprobe

import (
	"context"
	"sync"

	"github.com/jason-murray/internet-check/pkg/probe"
)

// MockProber replays scripted results per target. Targets with no queued
// results report success, so a fresh prober behaves like a healthy network.
type MockProber struct {
	mu     sync.Mutex
	queues map[string][]probe.Result
	probed []string
}

func New() *MockProber {
	return &MockProber{
		queues: make(map[string][]probe.Result),
	}
}

// Enqueue schedules results for a target in FIFO order.
func (m *MockProber) Enqueue(target string, results ...probe.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queues[target] = append(m.queues[target], results...)
}

// EnqueueFailures schedules n unreachable results for a target.
func (m *MockProber) EnqueueFailures(target string, n int) {
	for i := 0; i < n; i++ {
		m.Enqueue(target, probe.Failure(target, probe.ErrUnreachable, ""))
	}
}

func (m *MockProber) Probe(_ context.Context, target string) probe.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.probed = append(m.probed, target)
	queue := m.queues[target]
	if len(queue) == 0 {
		return probe.Success(target, 0)
	}
	next := queue[0]
	m.queues[target] = queue[1:]
	return next
}

// Probed returns every target probed so far, in call order.
func (m *MockProber) Probed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.probed))
	copy(out, m.probed)
	return out
}
