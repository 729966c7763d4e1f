package usecase

import (
	"context"
	"fmt"

	"github.com/ydbtools/ydbgather/internal/application/port"
	"github.com/ydbtools/ydbgather/internal/domain/entity"
	"github.com/ydbtools/ydbgather/internal/logging"
)

// CollectBundleUseCase runs every collection step into one output directory:
// the system snapshot, the host command captures, then each target in order.
type CollectBundleUseCase struct {
	system   *CollectSystemInfoUseCase
	captures *RunCapturesUseCase
	inspect  *InspectTargetUseCase
}

// NewCollectBundleUseCase creates a new use case. Nil steps are skipped.
func NewCollectBundleUseCase(system *CollectSystemInfoUseCase, captures *RunCapturesUseCase, inspect *InspectTargetUseCase) *CollectBundleUseCase {
	return &CollectBundleUseCase{system: system, captures: captures, inspect: inspect}
}

// CollectBundleInput configures a collection run.
type CollectBundleInput struct {
	Output   port.OutputDir
	Targets  []string
	Captures []entity.Capture
	Version  string
}

// CollectBundleOutput aggregates the step results.
type CollectBundleOutput struct {
	OutputDir string
	System    *CollectSystemInfoOutput
	Captures  *RunCapturesOutput
	Targets   []*InspectTargetOutput
	Files     []string
	Warnings  []string
}

// Execute fails only when the output directory cannot be created or written.
func (uc *CollectBundleUseCase) Execute(ctx context.Context, input CollectBundleInput) (*CollectBundleOutput, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "collect"))

	if err := input.Output.Ensure(); err != nil {
		return nil, err
	}
	out := &CollectBundleOutput{OutputDir: input.Output.Root()}

	if uc.system != nil {
		res, err := uc.system.Execute(ctx, CollectSystemInfoInput{Output: input.Output, Version: input.Version})
		if err != nil {
			return nil, fmt.Errorf("system snapshot: %w", err)
		}
		out.System = res
		out.Files = append(out.Files, res.Files...)
		out.Warnings = append(out.Warnings, res.Warnings...)
	}

	if uc.captures != nil && len(input.Captures) > 0 {
		res, err := uc.captures.Execute(ctx, RunCapturesInput{Captures: input.Captures, Output: input.Output})
		if err != nil {
			return nil, fmt.Errorf("captures: %w", err)
		}
		out.Captures = res
		out.Files = append(out.Files, res.Files...)
		out.Warnings = append(out.Warnings, res.Warnings...)
	}

	if uc.inspect != nil {
		for _, target := range input.Targets {
			res, err := uc.inspect.Execute(ctx, InspectTargetInput{Target: target, Output: input.Output})
			if err != nil {
				return nil, fmt.Errorf("inspect %s: %w", target, err)
			}
			out.Targets = append(out.Targets, res)
			out.Files = append(out.Files, res.Files...)
			for _, w := range res.Warnings {
				out.Warnings = append(out.Warnings, fmt.Sprintf("%s: %s", target, w))
			}
		}
	}

	log.Info().
		Str("output_dir", out.OutputDir).
		Int("files", len(out.Files)).
		Int("warnings", len(out.Warnings)).
		Msg("collection complete")
	return out, nil
}
