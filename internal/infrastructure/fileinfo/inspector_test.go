package fileinfo

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ydbtools/ydbgather/internal/application/port/mocks"
)

const coreReport = "core.9: ELF 64-bit LSB core file, x86-64, execfn: '/usr/bin/foo', platform: 'x86_64'\n"

func TestInspector_Inspect(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "file", []string{"/tmp/core.9"}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ []string, out io.Writer) error {
			_, err := io.WriteString(out, coreReport)
			return err
		})

	report, err := New(runner, "").Inspect(context.Background(), "/tmp/core.9")

	require.NoError(t, err)
	assert.Equal(t, coreReport, report)
}

func TestInspector_ErrorKeepsPartialOutput(t *testing.T) {
	runner := mocks.NewMockCommandRunner(t)
	runner.EXPECT().
		Run(mock.Anything, "file", mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ []string, out io.Writer) error {
			_, _ = io.WriteString(out, "cannot open")
			return errors.New("exit status 1")
		})

	report, err := New(runner, "file").Inspect(context.Background(), "/nope")

	require.Error(t, err)
	assert.Equal(t, "cannot open", report)
}
