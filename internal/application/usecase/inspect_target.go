// Package usecase contains application business logic.
package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ydbtools/ydbgather/internal/application/port"
	"github.com/ydbtools/ydbgather/internal/domain/entity"
	"github.com/ydbtools/ydbgather/internal/domain/stack"
	"github.com/ydbtools/ydbgather/internal/logging"
)

// InspectTargetUseCase resolves a PID or core dump to its executable, captures
// a backtrace and dumps locals and registers for a bounded set of frames.
type InspectTargetUseCase struct {
	probe     port.ToolProbe
	inspector port.FileInspector
	processes port.ProcessResolver
	debugger  port.Debugger
	planner   stack.Planner
}

// NewInspectTargetUseCase creates a new use case.
func NewInspectTargetUseCase(
	probe port.ToolProbe,
	inspector port.FileInspector,
	processes port.ProcessResolver,
	debugger port.Debugger,
	planner stack.Planner,
) *InspectTargetUseCase {
	return &InspectTargetUseCase{
		probe:     probe,
		inspector: inspector,
		processes: processes,
		debugger:  debugger,
		planner:   planner,
	}
}

// InspectTargetInput names the target and where its transcripts go.
type InspectTargetInput struct {
	Target string
	Output port.OutputDir
}

// InspectTargetOutput summarizes one target's inspection.
type InspectTargetOutput struct {
	Target       entity.Target
	Executable   string
	FrameCount   int
	DumpedFrames []int
	DebuggerRan  bool
	Files        []string
	Warnings     []string
}

// Execute never fails because of the target itself: tool, resolution and
// debugger problems are reported as warnings. An error is returned only when
// the output directory cannot be written.
func (uc *InspectTargetUseCase) Execute(ctx context.Context, input InspectTargetInput) (*InspectTargetOutput, error) {
	target := entity.NewTarget(input.Target)
	ctx = logging.WithTarget(logging.WithComponent(ctx, "inspector"), target.Raw)
	log := logging.FromContext(ctx)

	out := &InspectTargetOutput{Target: target}
	if target.Raw == "" {
		out.Warnings = append(out.Warnings, "empty target skipped")
		log.Warn().Msg("empty target skipped")
		return out, nil
	}

	identity, err := input.Output.Append(target.IdentityFile())
	if err != nil {
		return nil, fmt.Errorf("open identification transcript: %w", err)
	}
	defer func() { _ = identity.Close() }()
	out.Files = append(out.Files, input.Output.Path(target.IdentityFile()))
	writeSectionHeader(identity, target)

	warn := func(err error, msg string) {
		log.Warn().Err(err).Msg(msg)
		text := msg
		if err != nil {
			text = fmt.Sprintf("%s: %v", msg, err)
		}
		out.Warnings = append(out.Warnings, text)
		_, _ = fmt.Fprintf(identity, "WARNING: %s\n", text)
	}

	exe, err := uc.resolveExecutable(ctx, target, identity)
	if err != nil {
		warn(err, "cannot resolve executable, skipping debugger")
		return out, nil
	}
	if err := checkRegularFile(exe); err != nil {
		warn(err, "executable not found, skipping debugger")
		return out, nil
	}
	out.Executable = exe
	target.Executable = exe
	out.Target = target
	if !target.IsCore() {
		uc.identifyExecutable(ctx, exe, identity)
	}

	tool := uc.debugger.Tool()
	if _, found := uc.probe.Lookup(tool); !found {
		warn(&port.ToolMissingError{Tool: tool}, "debugger unavailable, skipping stack inspection")
		return out, nil
	}

	transcript, err := input.Output.Append(target.DebuggerFile())
	if err != nil {
		return nil, fmt.Errorf("open debugger transcript: %w", err)
	}
	defer func() { _ = transcript.Close() }()
	out.Files = append(out.Files, input.Output.Path(target.DebuggerFile()))
	writeSectionHeader(transcript, target)

	var backtrace bytes.Buffer
	out.DebuggerRan = true
	if err := uc.debugger.RunBatch(ctx, exe, target.Raw, entity.BacktraceBatch(), io.MultiWriter(transcript, &backtrace)); err != nil {
		warn(err, "backtrace capture reported an error")
	}

	out.FrameCount = stack.CountFrames(&backtrace)
	plan := append(entity.PrintPreamble(), uc.planner.Plan(out.FrameCount)...)
	out.DumpedFrames = plan.Frames()
	logFramePlan(log, out.FrameCount, out.DumpedFrames)

	if err := uc.debugger.RunBatch(ctx, exe, target.Raw, plan, transcript); err != nil {
		warn(err, "frame dump reported an error")
	}

	log.Info().
		Str("executable", exe).
		Int("frames", out.FrameCount).
		Int("dumped", len(out.DumpedFrames)).
		Msg("target inspected")

	return out, nil
}

func (uc *InspectTargetUseCase) resolveExecutable(ctx context.Context, target entity.Target, identity io.Writer) (string, error) {
	if target.IsCore() {
		return uc.resolveCore(ctx, target, identity)
	}
	return uc.resolveProcess(ctx, target, identity)
}

func (uc *InspectTargetUseCase) resolveCore(ctx context.Context, target entity.Target, identity io.Writer) (string, error) {
	tool := uc.inspector.Tool()
	if _, found := uc.probe.Lookup(tool); !found {
		return "", &port.ToolMissingError{Tool: tool}
	}

	report, err := uc.inspector.Inspect(ctx, target.Raw)
	_, _ = io.WriteString(identity, report)
	if err != nil {
		return "", fmt.Errorf("%w: inspect %s: %w", port.ErrUnresolvableTarget, target.Raw, err)
	}

	exe := entity.ParseExecFn(report)
	if exe == "" {
		return "", fmt.Errorf("%w: no execfn in %s output", port.ErrUnresolvableTarget, tool)
	}
	return exe, nil
}

func (uc *InspectTargetUseCase) resolveProcess(ctx context.Context, target entity.Target, identity io.Writer) (string, error) {
	pid, ok := target.PID()
	if !ok {
		return "", fmt.Errorf("%w: %q is neither a core file nor a process id", port.ErrUnresolvableTarget, target.Raw)
	}

	exe, err := uc.processes.Executable(ctx, pid)
	if err != nil {
		return "", fmt.Errorf("%w: pid %d: %w", port.ErrUnresolvableTarget, pid, err)
	}
	_, _ = fmt.Fprintf(identity, "pid %d executable: %s\n", pid, exe)
	return exe, nil
}

// identifyExecutable records the file-type report of a live process's binary.
// It is informational only.
func (uc *InspectTargetUseCase) identifyExecutable(ctx context.Context, exe string, identity io.Writer) {
	if _, found := uc.probe.Lookup(uc.inspector.Tool()); !found {
		return
	}
	report, err := uc.inspector.Inspect(ctx, exe)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("file inspection of executable failed")
		return
	}
	_, _ = io.WriteString(identity, report)
}

// writeSectionHeader starts a target's section. Targets sharing a base name
// append to the same transcript, and the header keeps them apart.
func writeSectionHeader(w io.Writer, target entity.Target) {
	_, _ = fmt.Fprintf(w, "=== %s ===\n", target.Raw)
}

func checkRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", port.ErrUnresolvableTarget, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", port.ErrUnresolvableTarget, path)
	}
	return nil
}

func logFramePlan(log *zerolog.Logger, frameCount int, frames []int) {
	evt := log.Debug().Int("frame_count", frameCount).Int("planned", len(frames))
	if len(frames) > 0 {
		evt = evt.Int("first", frames[0]).Int("last", frames[len(frames)-1])
	}
	evt.Msg("frame dump planned")
}
