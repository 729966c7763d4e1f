// Package gdb drives the GNU debugger in batch mode.
package gdb

import (
	"context"
	"io"

	"github.com/ydbtools/ydbgather/internal/application/port"
	"github.com/ydbtools/ydbgather/internal/domain/entity"
)

// DefaultTool is the debugger program name.
const DefaultTool = "gdb"

// Adapter implements port.Debugger. Directives are passed as individual -ex
// arguments so no shell quoting is involved.
type Adapter struct {
	tool   string
	runner port.CommandRunner
}

// New creates a gdb adapter. An empty tool selects DefaultTool.
func New(runner port.CommandRunner, tool string) *Adapter {
	if tool == "" {
		tool = DefaultTool
	}
	return &Adapter{tool: tool, runner: runner}
}

// Tool returns the debugger program name.
func (a *Adapter) Tool() string {
	return a.tool
}

// RunBatch runs gdb against executable and target (PID or core file).
func (a *Adapter) RunBatch(ctx context.Context, executable, target string, batch entity.Batch, out io.Writer) error {
	return a.runner.Run(ctx, a.tool, Args(executable, target, batch), out)
}

// Args builds gdb's command line: quiet, no init files, batch mode, one -ex
// per directive, then the executable and the target.
func Args(executable, target string, batch entity.Batch) []string {
	args := make([]string, 0, 3+2*len(batch)+2)
	args = append(args, "-q", "-nx", "-batch")
	for _, text := range batch.Texts() {
		args = append(args, "-ex", text)
	}
	return append(args, executable, target)
}

var _ port.Debugger = (*Adapter)(nil)
