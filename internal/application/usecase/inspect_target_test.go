package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ydbtools/ydbgather/internal/application/port/mocks"
	"github.com/ydbtools/ydbgather/internal/domain/entity"
	"github.com/ydbtools/ydbgather/internal/domain/stack"
	"github.com/ydbtools/ydbgather/internal/infrastructure/outputdir"
)

type inspectFixture struct {
	probe     *mocks.MockToolProbe
	inspector *mocks.MockFileInspector
	processes *mocks.MockProcessResolver
	debugger  *mocks.MockDebugger
	output    *outputdir.Dir
	uc        *InspectTargetUseCase
}

func newInspectFixture(t *testing.T) *inspectFixture {
	t.Helper()
	f := &inspectFixture{
		probe:     mocks.NewMockToolProbe(t),
		inspector: mocks.NewMockFileInspector(t),
		processes: mocks.NewMockProcessResolver(t),
		debugger:  mocks.NewMockDebugger(t),
		output:    outputdir.New(t.TempDir(), 0, 0),
	}
	f.uc = NewInspectTargetUseCase(f.probe, f.inspector, f.processes, f.debugger, stack.NewPlanner(stack.DefaultWindow))
	return f
}

func (f *inspectFixture) tools(file, gdb bool) {
	f.inspector.EXPECT().Tool().Return("file").Maybe()
	f.debugger.EXPECT().Tool().Return("gdb").Maybe()
	f.probe.EXPECT().Lookup("file").Return("/usr/bin/file", file).Maybe()
	f.probe.EXPECT().Lookup("gdb").Return("/usr/bin/gdb", gdb).Maybe()
}

func (f *inspectFixture) read(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile(f.output.Path(name))
	require.NoError(t, err)
	return string(raw)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	return path
}

func backtraceOf(frames int) string {
	var b strings.Builder
	for i := 0; i < frames; i++ {
		fmt.Fprintf(&b, "#%d  0x%x in fn%d ()\n", i, 0x1000+i, i)
	}
	return b.String()
}

// recordBatches answers the backtrace batch with bt and records every batch.
func recordBatches(f *inspectFixture, bt string, btErr error) *[]entity.Batch {
	var batches []entity.Batch
	f.debugger.EXPECT().
		RunBatch(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ string, batch entity.Batch, out io.Writer) error {
			batches = append(batches, batch)
			if len(batches) == 1 {
				_, _ = io.WriteString(out, bt)
				return btErr
			}
			_, err := io.WriteString(out, "frame dump\n")
			return err
		}).Times(2)
	return &batches
}

func TestInspectTarget_CoreDump(t *testing.T) {
	f := newInspectFixture(t)
	dir := t.TempDir()
	exe := writeFile(t, dir, "mumps", "\x7fELF")
	core := writeFile(t, dir, "core.1234", "core")
	report := fmt.Sprintf("%s: ELF 64-bit LSB core file, x86-64, from 'mumps -dir', execfn: '%s', platform: 'x86_64'\n", core, exe)

	f.tools(true, true)
	f.inspector.EXPECT().Inspect(mock.Anything, core).Return(report, nil).Once()
	batches := recordBatches(f, backtraceOf(5), nil)

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: core, Output: f.output})

	require.NoError(t, err)
	assert.Empty(t, out.Warnings)
	assert.True(t, out.Target.IsCore())
	assert.Equal(t, exe, out.Executable)
	assert.Equal(t, 5, out.FrameCount)
	assert.Equal(t, []int{0, 1, 2, 3}, out.DumpedFrames)
	assert.True(t, out.DebuggerRan)

	require.Len(t, *batches, 2)
	assert.Equal(t, entity.BacktraceBatch(), (*batches)[0])
	second := (*batches)[1]
	assert.Equal(t, entity.PrintPreamble(), second[:3])
	assert.Equal(t, "quit", second.Texts()[len(second)-1])

	header := "=== " + core + " ===\n"
	assert.Equal(t, header+report, f.read(t, "core.1234_file.txt"))
	assert.Equal(t, header+backtraceOf(5)+"frame dump\n", f.read(t, "core.1234_gdb.txt"))
	assert.Equal(t, []string{f.output.Path("core.1234_file.txt"), f.output.Path("core.1234_gdb.txt")}, out.Files)
}

func TestInspectTarget_DeepStackDumpsBothEnds(t *testing.T) {
	f := newInspectFixture(t)
	dir := t.TempDir()
	exe := writeFile(t, dir, "mumps", "\x7fELF")
	core := writeFile(t, dir, "core.deep", "core")

	f.tools(true, true)
	f.inspector.EXPECT().Inspect(mock.Anything, core).Return("execfn: '"+exe+"'", nil)
	recordBatches(f, backtraceOf(150), nil)

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: core, Output: f.output})

	require.NoError(t, err)
	require.Len(t, out.DumpedFrames, 100)
	assert.Equal(t, 49, out.DumpedFrames[49])
	assert.Equal(t, 99, out.DumpedFrames[50])
	assert.Equal(t, 148, out.DumpedFrames[99])
}

func TestInspectTarget_LiveProcess(t *testing.T) {
	f := newInspectFixture(t)
	exe := writeFile(t, t.TempDir(), "mumps", "\x7fELF")

	f.tools(true, true)
	f.processes.EXPECT().Executable(mock.Anything, 4242).Return(exe, nil).Once()
	f.inspector.EXPECT().Inspect(mock.Anything, exe).Return(exe+": ELF 64-bit LSB pie executable\n", nil).Once()
	var targets []string
	f.debugger.EXPECT().
		RunBatch(mock.Anything, exe, "4242", mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, target string, _ entity.Batch, out io.Writer) error {
			targets = append(targets, target)
			_, err := io.WriteString(out, backtraceOf(3))
			return err
		}).Times(2)

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: "4242", Output: f.output})

	require.NoError(t, err)
	assert.Equal(t, exe, out.Executable)
	assert.Equal(t, []string{"4242", "4242"}, targets)
	assert.Equal(t, []int{0, 1}, out.DumpedFrames)

	identity := f.read(t, "4242_file.txt")
	assert.Contains(t, identity, "pid 4242 executable: "+exe)
	assert.Contains(t, identity, "ELF 64-bit LSB pie executable")
}

func TestInspectTarget_MissingExecutableSkipsDebugger(t *testing.T) {
	f := newInspectFixture(t)
	f.tools(true, true)
	f.processes.EXPECT().Executable(mock.Anything, 77).Return("/nonexistent/bin/mumps", nil)

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: "77", Output: f.output})

	require.NoError(t, err)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "executable not found")
	assert.False(t, out.DebuggerRan)
	assert.Empty(t, out.Executable)
	assert.NoFileExists(t, f.output.Path("77_gdb.txt"))
	assert.Contains(t, f.read(t, "77_file.txt"), "WARNING: executable not found")
}

func TestInspectTarget_ReplacedBinaryNeverReachesDebugger(t *testing.T) {
	// Arrange: the running image was deleted and a new build sits at its path.
	f := newInspectFixture(t)
	replacement := writeFile(t, t.TempDir(), "mumps", "\x7fELF new build")
	f.tools(true, true)
	f.processes.EXPECT().Executable(mock.Anything, 88).Return(replacement+" (deleted)", nil)

	// Act
	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: "88", Output: f.output})

	// Assert: no RunBatch expectation is set, so any debugger call fails the test.
	require.NoError(t, err)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "executable not found")
	assert.False(t, out.DebuggerRan)
	assert.Empty(t, out.Executable)
	assert.NoFileExists(t, f.output.Path("88_gdb.txt"))
}

func TestInspectTarget_SameBaseNameTargetsGetSeparateSections(t *testing.T) {
	// Arrange
	f := newInspectFixture(t)
	exe := writeFile(t, t.TempDir(), "mumps", "\x7fELF")
	first := filepath.Join(t.TempDir(), "core")
	second := filepath.Join(t.TempDir(), "core")
	require.NoError(t, os.WriteFile(first, []byte("core a"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("core b"), 0o644))

	f.tools(true, true)
	f.inspector.EXPECT().Inspect(mock.Anything, first).Return("report a, execfn: '"+exe+"'\n", nil).Once()
	f.inspector.EXPECT().Inspect(mock.Anything, second).Return("report b, execfn: '"+exe+"'\n", nil).Once()
	f.debugger.EXPECT().
		RunBatch(mock.Anything, exe, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, target string, _ entity.Batch, out io.Writer) error {
			_, err := io.WriteString(out, "gdb output for "+target+"\n")
			return err
		}).Times(4)

	// Act
	for _, target := range []string{first, second} {
		_, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: target, Output: f.output})
		require.NoError(t, err)
	}

	// Assert
	identity := f.read(t, "core_file.txt")
	assert.Equal(t, "=== "+first+" ===\nreport a, execfn: '"+exe+"'\n=== "+second+" ===\nreport b, execfn: '"+exe+"'\n", identity)

	transcript := f.read(t, "core_gdb.txt")
	firstAt := strings.Index(transcript, "=== "+first+" ===")
	secondAt := strings.Index(transcript, "=== "+second+" ===")
	require.GreaterOrEqual(t, firstAt, 0)
	require.Greater(t, secondAt, firstAt)
	assert.Contains(t, transcript[firstAt:secondAt], "gdb output for "+first)
	assert.NotContains(t, transcript[firstAt:secondAt], "gdb output for "+second)
	assert.Contains(t, transcript[secondAt:], "gdb output for "+second)
}

func TestInspectTarget_DebuggerMissing(t *testing.T) {
	f := newInspectFixture(t)
	exe := writeFile(t, t.TempDir(), "mumps", "\x7fELF")
	f.tools(false, false)
	f.processes.EXPECT().Executable(mock.Anything, 9).Return(exe, nil)

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: "9", Output: f.output})

	require.NoError(t, err)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "gdb not found in PATH")
	assert.False(t, out.DebuggerRan)
	assert.NoFileExists(t, f.output.Path("9_gdb.txt"))
}

func TestInspectTarget_CoreWithoutFileTool(t *testing.T) {
	f := newInspectFixture(t)
	core := writeFile(t, t.TempDir(), "core.5", "core")
	f.tools(false, true)

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: core, Output: f.output})

	require.NoError(t, err)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "file not found in PATH")
	assert.False(t, out.DebuggerRan)
}

func TestInspectTarget_CoreWithoutExecFn(t *testing.T) {
	f := newInspectFixture(t)
	core := writeFile(t, t.TempDir(), "core.6", "core")
	f.tools(true, true)
	f.inspector.EXPECT().Inspect(mock.Anything, core).Return(core+": data\n", nil)

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: core, Output: f.output})

	require.NoError(t, err)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "no execfn")
	assert.Contains(t, f.read(t, "core.6_file.txt"), ": data")
}

func TestInspectTarget_NotAProcessID(t *testing.T) {
	f := newInspectFixture(t)
	f.tools(true, true)

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: "not-a-pid", Output: f.output})

	require.NoError(t, err)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "neither a core file nor a process id")
}

func TestInspectTarget_EmptyTarget(t *testing.T) {
	f := newInspectFixture(t)

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: "  ", Output: f.output})

	require.NoError(t, err)
	assert.Equal(t, []string{"empty target skipped"}, out.Warnings)
	assert.Empty(t, out.Files)
}

func TestInspectTarget_BacktraceErrorStillDumpsFrames(t *testing.T) {
	f := newInspectFixture(t)
	dir := t.TempDir()
	exe := writeFile(t, dir, "mumps", "\x7fELF")
	core := writeFile(t, dir, "core.7", "core")
	f.tools(true, true)
	f.inspector.EXPECT().Inspect(mock.Anything, core).Return("execfn: "+exe, nil)
	recordBatches(f, backtraceOf(2), errors.New("exit status 1"))

	out, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: core, Output: f.output})

	require.NoError(t, err)
	assert.Equal(t, []int{0}, out.DumpedFrames)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "backtrace capture reported an error")
}

func TestInspectTarget_UnwritableOutput(t *testing.T) {
	f := newInspectFixture(t)
	f.output = outputdir.New(filepath.Join(t.TempDir(), "missing"), 0, 0)

	_, err := f.uc.Execute(context.Background(), InspectTargetInput{Target: "1", Output: f.output})

	assert.ErrorIs(t, err, os.ErrNotExist)
}
