package port

import (
	"context"
	"errors"
	"io"

	"github.com/ydbtools/ydbgather/internal/domain/entity"
)

// ErrUnresolvableTarget indicates a target's executable could not be determined.
var ErrUnresolvableTarget = errors.New("unresolvable target")

// Debugger runs a batch of directives against an executable and a target
// (PID or core file) without user interaction.
type Debugger interface {
	// Tool is the program name looked up through the ToolProbe.
	Tool() string
	// RunBatch writes combined stdout/stderr to out. A non-zero exit is
	// reported as an error after all output has been written.
	RunBatch(ctx context.Context, executable, target string, batch entity.Batch, out io.Writer) error
}

// FileInspector runs a file-type inspection tool on a path.
type FileInspector interface {
	Tool() string
	Inspect(ctx context.Context, path string) (string, error)
}

// ProcessResolver maps a live PID to the executable it runs.
type ProcessResolver interface {
	Executable(ctx context.Context, pid int) (string, error)
}
