package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ydbtools/ydbgather/internal/application/port"
	"github.com/ydbtools/ydbgather/internal/application/port/mocks"
	"github.com/ydbtools/ydbgather/internal/domain/entity"
	"github.com/ydbtools/ydbgather/internal/infrastructure/outputdir"
)

func TestCollectBundleUseCase_Execute(t *testing.T) {
	t.Run("runs every step in order into a fresh directory", func(t *testing.T) {
		// Arrange
		f := newInspectFixture(t)
		f.output = outputdir.New(filepath.Join(t.TempDir(), "bundle"), 0, 0)
		f.tools(true, false)
		f.processes.EXPECT().Executable(mock.Anything, 31337).Return("/nonexistent/mumps", nil)

		system := mocks.NewMockSystemProbe(t)
		system.EXPECT().Snapshot(mock.Anything).Return(&port.SystemSnapshot{Sysname: "Linux"}, nil)

		runner := mocks.NewMockCommandRunner(t)
		f.probe.EXPECT().Lookup("uname").Return("", false)

		uc := NewCollectBundleUseCase(
			NewCollectSystemInfoUseCase(system),
			NewRunCapturesUseCase(f.probe, runner),
			f.uc,
		)

		// Act
		result, err := uc.Execute(context.Background(), CollectBundleInput{
			Output:   f.output,
			Targets:  []string{"31337"},
			Captures: []entity.Capture{{Name: "uname", Tool: "uname", File: "uname.txt"}},
		})

		// Assert
		require.NoError(t, err)
		assert.DirExists(t, f.output.Root())
		require.Len(t, result.Targets, 1)
		assert.Contains(t, result.Files, f.output.Path(SystemInfoJSONFile))
		assert.Contains(t, result.Files, f.output.Path("31337_file.txt"))
		require.Len(t, result.Warnings, 2)
		assert.Contains(t, result.Warnings[0], "uname skipped")
		assert.Contains(t, result.Warnings[1], "31337: executable not found")
	})

	t.Run("fails when the output directory cannot be created", func(t *testing.T) {
		// Arrange
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		uc := NewCollectBundleUseCase(nil, nil, nil)

		// Act
		_, err := uc.Execute(context.Background(), CollectBundleInput{Output: outputdir.New(filepath.Join(blocker, "out"), 0, 0)})

		// Assert
		assert.Error(t, err)
	})
}
