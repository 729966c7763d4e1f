package tools

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/ydbtools/ydbgather/internal/application/port"
	"github.com/ydbtools/ydbgather/internal/logging"
)

// Runner implements port.CommandRunner. Programs are resolved through the
// probe so a missing tool is reported the same way everywhere.
type Runner struct {
	probe port.ToolProbe
}

// NewRunner creates a runner resolving programs through probe.
func NewRunner(probe port.ToolProbe) *Runner {
	return &Runner{probe: probe}
}

// Run executes tool with args and streams combined stdout/stderr into out.
// No deadline is applied; the call blocks until the program exits.
func (r *Runner) Run(ctx context.Context, tool string, args []string, out io.Writer) error {
	path, found := r.probe.Lookup(tool)
	if !found {
		return &port.ToolMissingError{Tool: tool}
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("tool", path).Strs("args", args).Msg("running external tool")

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", tool, err)
	}
	return nil
}

var _ port.CommandRunner = (*Runner)(nil)
