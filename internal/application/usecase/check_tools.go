package usecase

import (
	"context"

	"github.com/ydbtools/ydbgather/internal/application/port"
	"github.com/ydbtools/ydbgather/internal/logging"
)

// ToolRequirement describes an external program the collector may invoke.
type ToolRequirement struct {
	Name     string
	Purpose  string
	Required bool
}

// ToolCheck is the result of probing one requirement.
type ToolCheck struct {
	ToolRequirement
	Path  string
	Found bool
}

// CheckToolsUseCase reports which external programs are available.
type CheckToolsUseCase struct {
	probe port.ToolProbe
}

// NewCheckToolsUseCase creates a new use case.
func NewCheckToolsUseCase(probe port.ToolProbe) *CheckToolsUseCase {
	return &CheckToolsUseCase{probe: probe}
}

// CheckToolsInput lists the programs to check.
type CheckToolsInput struct {
	Tools []ToolRequirement
}

// CheckToolsOutput holds one check per requested tool. OK is false when a
// required tool is missing.
type CheckToolsOutput struct {
	OK     bool
	Checks []ToolCheck
}

// Execute probes every tool once. Duplicate names are reported once.
func (uc *CheckToolsUseCase) Execute(ctx context.Context, input CheckToolsInput) (*CheckToolsOutput, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "doctor"))

	out := &CheckToolsOutput{OK: true}
	seen := make(map[string]struct{}, len(input.Tools))
	for _, req := range input.Tools {
		if _, dup := seen[req.Name]; dup || req.Name == "" {
			continue
		}
		seen[req.Name] = struct{}{}

		path, found := uc.probe.Lookup(req.Name)
		out.Checks = append(out.Checks, ToolCheck{ToolRequirement: req, Path: path, Found: found})
		if !found && req.Required {
			out.OK = false
		}
	}

	log.Debug().Bool("ok", out.OK).Int("checked", len(out.Checks)).Msg("tool check complete")
	return out, nil
}
