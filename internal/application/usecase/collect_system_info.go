package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/ydbtools/ydbgather/internal/application/port"
	"github.com/ydbtools/ydbgather/internal/logging"
)

const (
	SystemInfoJSONFile     = "system_info.json"
	SystemInfoMarkdownFile = "system_info.md"
	systemReportVersion    = 1
)

// SystemReport is the document written to system_info.json.
type SystemReport struct {
	ReportVersion int                   `json:"report_version"`
	GeneratedAt   string                `json:"generated_at"`
	Collector     SystemReportCollector `json:"collector"`
	System        port.SystemSnapshot   `json:"system"`
}

// SystemReportCollector identifies the program that produced a report.
type SystemReportCollector struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GOOS      string `json:"goos"`
	GOARCH    string `json:"goarch"`
}

// CollectSystemInfoUseCase writes a host snapshot into the output directory.
type CollectSystemInfoUseCase struct {
	probe port.SystemProbe
	now   func() time.Time
}

// NewCollectSystemInfoUseCase creates a new use case.
func NewCollectSystemInfoUseCase(probe port.SystemProbe) *CollectSystemInfoUseCase {
	return &CollectSystemInfoUseCase{probe: probe, now: time.Now}
}

// CollectSystemInfoInput selects the output directory.
type CollectSystemInfoInput struct {
	Output  port.OutputDir
	Version string
}

// CollectSystemInfoOutput carries the written report.
type CollectSystemInfoOutput struct {
	Report   SystemReport
	Files    []string
	Warnings []string
}

// Execute gathers the snapshot and writes it as JSON and markdown. A probe
// failure is a warning; the partial snapshot is still written.
func (uc *CollectSystemInfoUseCase) Execute(ctx context.Context, input CollectSystemInfoInput) (*CollectSystemInfoOutput, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "system-info"))
	out := &CollectSystemInfoOutput{}

	snap, err := uc.probe.Snapshot(ctx)
	if err != nil {
		out.Warnings = append(out.Warnings, fmt.Sprintf("system snapshot incomplete: %v", err))
		log.Warn().Err(err).Msg("system snapshot incomplete")
	}
	if snap == nil {
		snap = &port.SystemSnapshot{}
	}

	out.Report = SystemReport{
		ReportVersion: systemReportVersion,
		GeneratedAt:   uc.now().UTC().Format(time.RFC3339),
		Collector: SystemReportCollector{
			Name:      "ydbgather",
			Version:   input.Version,
			GoVersion: runtime.Version(),
			GOOS:      runtime.GOOS,
			GOARCH:    runtime.GOARCH,
		},
		System: *snap,
	}

	payload, err := json.MarshalIndent(out.Report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode system report: %w", err)
	}
	payload = append(payload, '\n')
	if err := input.Output.WriteFile(SystemInfoJSONFile, payload); err != nil {
		return nil, err
	}
	if err := input.Output.WriteFile(SystemInfoMarkdownFile, []byte(BuildSystemMarkdown(out.Report))); err != nil {
		return nil, err
	}
	out.Files = []string{input.Output.Path(SystemInfoJSONFile), input.Output.Path(SystemInfoMarkdownFile)}

	log.Info().
		Str("sysname", snap.Sysname).
		Str("release", snap.Release).
		Int("env_vars", len(snap.Environment)).
		Msg("system snapshot written")
	return out, nil
}

// BuildSystemMarkdown renders a report for humans.
func BuildSystemMarkdown(report SystemReport) string {
	s := report.System
	lines := []string{
		"# System Information",
		"",
		fmt.Sprintf("Generated: `%s`", report.GeneratedAt),
		fmt.Sprintf("Collector: `%s %s` (%s, %s/%s)", report.Collector.Name, report.Collector.Version,
			report.Collector.GoVersion, report.Collector.GOOS, report.Collector.GOARCH),
		"",
		"## Host",
		fmt.Sprintf("- hostname: `%s`", s.Hostname),
		fmt.Sprintf("- sysname: `%s`", s.Sysname),
		fmt.Sprintf("- release: `%s`", s.Release),
		fmt.Sprintf("- version: `%s`", s.Version),
		fmt.Sprintf("- machine: `%s`", s.Machine),
		"",
		"## Core Dumps",
		fmt.Sprintf("- RLIMIT_CORE soft: `%s`", s.RLimitCoreSoft),
		fmt.Sprintf("- RLIMIT_CORE hard: `%s`", s.RLimitCoreHard),
		fmt.Sprintf("- core pattern: `%s`", s.CorePattern),
		"",
		"## Environment",
	}

	if len(s.Environment) == 0 {
		lines = append(lines, "_no matching variables_")
	} else {
		keys := make([]string, 0, len(s.Environment))
		for k := range s.Environment {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("- `%s=%s`", k, s.Environment[k]))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
