package gdb

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ydbtools/ydbgather/internal/application/port/mocks"
	"github.com/ydbtools/ydbgather/internal/domain/entity"
)

func TestArgs_Backtrace(t *testing.T) {
	args := Args("/usr/bin/mumps", "core.77", entity.BacktraceBatch())

	assert.Equal(t, []string{
		"-q", "-nx", "-batch",
		"-ex", "set confirm off",
		"-ex", "set print elements 0",
		"-ex", "set print repeats 0",
		"-ex", "backtrace",
		"-ex", "quit",
		"/usr/bin/mumps", "core.77",
	}, args)
}

func TestArgs_DirectivesAreNotShellQuoted(t *testing.T) {
	batch := entity.Batch{entity.Frame(12), {Kind: entity.DirectiveLocals}}

	args := Args("/opt/my app/mumps", "4242", batch)

	assert.Contains(t, args, "frame 12")
	assert.Equal(t, "/opt/my app/mumps", args[len(args)-2])
	assert.Equal(t, "4242", args[len(args)-1])
}

func TestAdapter_RunBatchDelegatesToRunner(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	batch := entity.BacktraceBatch()
	var buf bytes.Buffer

	runner.EXPECT().
		Run(mock.Anything, "gdb", Args("/usr/bin/mumps", "123", batch), &buf).
		RunAndReturn(func(_ context.Context, _ string, _ []string, out io.Writer) error {
			_, err := io.WriteString(out, "#0  main () at x.c:1\n")
			return err
		})

	err := New(runner, "").RunBatch(context.Background(), "/usr/bin/mumps", "123", batch, &buf)

	require.NoError(t, err)
	assert.Equal(t, "#0  main () at x.c:1\n", buf.String())
}

func TestAdapter_CustomTool(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().Run(mock.Anything, "gdb-multiarch", mock.Anything, mock.Anything).Return(errors.New("exit status 1"))

	a := New(runner, "gdb-multiarch")
	err := a.RunBatch(context.Background(), "/bin/true", "1", entity.Batch{{Kind: entity.DirectiveQuit}}, io.Discard)

	assert.Equal(t, "gdb-multiarch", a.Tool())
	assert.EqualError(t, err, "exit status 1")
}
