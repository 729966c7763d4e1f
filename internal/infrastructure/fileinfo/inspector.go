// Package fileinfo identifies files with the file(1) utility.
package fileinfo

import (
	"bytes"
	"context"

	"github.com/ydbtools/ydbgather/internal/application/port"
)

// DefaultTool is the file-type inspector program name.
const DefaultTool = "file"

// Inspector implements port.FileInspector.
type Inspector struct {
	tool   string
	runner port.CommandRunner
}

// New creates an inspector. An empty tool selects DefaultTool.
func New(runner port.CommandRunner, tool string) *Inspector {
	if tool == "" {
		tool = DefaultTool
	}
	return &Inspector{tool: tool, runner: runner}
}

// Tool returns the inspector program name.
func (i *Inspector) Tool() string {
	return i.tool
}

// Inspect returns the inspector's report for path. Output produced before a
// failure is returned alongside the error.
func (i *Inspector) Inspect(ctx context.Context, path string) (string, error) {
	var buf bytes.Buffer
	err := i.runner.Run(ctx, i.tool, []string{path}, &buf)
	return buf.String(), err
}

var _ port.FileInspector = (*Inspector)(nil)
