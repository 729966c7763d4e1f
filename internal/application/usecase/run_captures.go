package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ydbtools/ydbgather/internal/application/port"
	"github.com/ydbtools/ydbgather/internal/domain/entity"
	"github.com/ydbtools/ydbgather/internal/logging"
)

// RunCapturesUseCase saves the output of host diagnostic commands.
type RunCapturesUseCase struct {
	probe  port.ToolProbe
	runner port.CommandRunner
}

// NewRunCapturesUseCase creates a new use case.
func NewRunCapturesUseCase(probe port.ToolProbe, runner port.CommandRunner) *RunCapturesUseCase {
	return &RunCapturesUseCase{probe: probe, runner: runner}
}

// RunCapturesInput lists the commands to run and where to write them.
type RunCapturesInput struct {
	Captures []entity.Capture
	Output   port.OutputDir
}

// CaptureResult is the outcome of a single capture.
type CaptureResult struct {
	Capture entity.Capture
	Path    string
	Skipped bool
	Error   string
}

// RunCapturesOutput summarizes a capture run.
type RunCapturesOutput struct {
	Results  []CaptureResult
	Files    []string
	Warnings []string
}

// Execute runs each capture in order. Missing tools are skipped and failing
// commands still have their output saved; both produce warnings. Only a write
// failure in the output directory is returned as an error.
func (uc *RunCapturesUseCase) Execute(ctx context.Context, input RunCapturesInput) (*RunCapturesOutput, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "captures"))
	out := &RunCapturesOutput{}

	for _, c := range input.Captures {
		res := CaptureResult{Capture: c}

		if _, found := uc.probe.Lookup(c.Tool); !found {
			err := &port.ToolMissingError{Tool: c.Tool}
			res.Skipped = true
			res.Error = err.Error()
			out.Warnings = append(out.Warnings, fmt.Sprintf("%s skipped: %v", c.Name, err))
			log.Warn().Str("capture", c.Name).Err(err).Msg("capture skipped")
			out.Results = append(out.Results, res)
			continue
		}

		var buf bytes.Buffer
		runErr := uc.runner.Run(ctx, c.Tool, c.Args, &buf)
		if err := input.Output.WriteFile(c.File, buf.Bytes()); err != nil {
			return nil, fmt.Errorf("capture %s: %w", c.Name, err)
		}
		res.Path = input.Output.Path(c.File)
		out.Files = append(out.Files, res.Path)

		if runErr != nil {
			res.Error = runErr.Error()
			out.Warnings = append(out.Warnings, fmt.Sprintf("%s: %v", c.Name, runErr))
			log.Warn().Str("capture", c.Name).Err(runErr).Msg("capture command failed")
		} else {
			log.Debug().Str("capture", c.Name).Int("bytes", buf.Len()).Msg("capture saved")
		}
		out.Results = append(out.Results, res)
	}

	return out, nil
}
