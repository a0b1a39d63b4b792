package collector

import (
	"context"
	"os/exec"
	"time"
)

// Runner abstracts external tool invocation so parsers can be exercised
// without spawning processes. The production implementation shells out with
// a context deadline; a hung tool costs at most its own timeout.
type Runner interface {
	// Output runs the command and returns its combined stdout. The returned
	// error carries context.DeadlineExceeded when the deadline fired.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// LookPath reports where the named tool resolves, or an error when it
	// is not installed.
	LookPath(name string) (string, error)
}

// Per-tool deadlines. diskutil and smartctl can stall on a sleeping device;
// iostat is expected to return immediately.
const (
	DiskutilTimeout = 5 * time.Second
	SmartctlTimeout = 5 * time.Second
	IostatTimeout   = 2 * time.Second
)

type execRunner struct{}

// NewRunner returns the default Runner backed by os/exec.
func NewRunner() Runner { return execRunner{} }

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if ctx.Err() != nil {
		// Surface the deadline rather than the SIGKILL exit status.
		return out, ctx.Err()
	}
	return out, err
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
