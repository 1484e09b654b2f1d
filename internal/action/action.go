package action

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"
)

// NotFoundExitCode is reported when the recovery executable is absent,
// matching the shell convention for command-not-found.
const NotFoundExitCode = 127

// Outcome captures one invocation of the recovery executable. Every
// failure mode is encoded here; Run never returns an error.
type Outcome struct {
	Path       string
	ExitCode   int
	DurationMs int64
	Stdout     string
	Stderr     string
	NotFound   bool
	Message    string
}

// Failed reports whether the invocation itself failed before the
// executable could run to completion.
func (o Outcome) Failed() bool {
	return o.NotFound || o.Message != ""
}

// ExecRunner invokes the recovery executable at a fixed path with no
// arguments and no timeout: the operator owns the script and is expected
// to bound its runtime.
type ExecRunner struct {
	path string
}

func NewExecRunner(path string) *ExecRunner {
	return &ExecRunner{path: path}
}

func (r *ExecRunner) Run() Outcome {
	start := time.Now()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(r.path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Outcome{
		Path:       r.path,
		DurationMs: time.Since(start).Milliseconds(),
		Stdout:     strings.TrimSpace(stdout.String()),
		Stderr:     strings.TrimSpace(stderr.String()),
	}
	if err == nil {
		return out
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, os.ErrNotExist), errors.Is(err, exec.ErrNotFound):
		out.ExitCode = NotFoundExitCode
		out.NotFound = true
	case errors.As(err, &exitErr):
		out.ExitCode = exitErr.ExitCode()
	default:
		out.ExitCode = 1
		out.Message = err.Error()
	}
	return out
}
