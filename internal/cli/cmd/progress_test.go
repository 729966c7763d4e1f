package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ydbtools/ydbgather/internal/application/usecase"
	"github.com/ydbtools/ydbgather/internal/cli/styles"
)

func TestRunBundle_WithoutProgressCallsDirectly(t *testing.T) {
	want := &usecase.CollectBundleOutput{OutputDir: "/tmp/bundle"}
	called := 0

	got, err := runBundle(context.Background(), styles.NewTheme(), false, "collecting",
		func(context.Context) (*usecase.CollectBundleOutput, error) {
			called++
			return want, nil
		})

	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Equal(t, 1, called)
}

func TestProgressModel(t *testing.T) {
	t.Run("shows label while running", func(t *testing.T) {
		m := newProgressModel(context.Background(), styles.NewTheme(), "inspecting", nil)

		assert.Contains(t, m.View(), "inspecting")
	})

	t.Run("done message stores result and quits", func(t *testing.T) {
		// Arrange
		m := newProgressModel(context.Background(), styles.NewTheme(), "collecting", nil)
		out := &usecase.CollectBundleOutput{OutputDir: "/tmp/bundle"}
		runErr := errors.New("boom")

		// Act
		next, cmd := m.Update(bundleDoneMsg{output: out, err: runErr})

		// Assert
		require.NotNil(t, cmd)
		final, ok := next.(progressModel)
		require.True(t, ok)
		assert.True(t, final.done)
		assert.Same(t, out, final.output)
		assert.ErrorIs(t, final.err, runErr)
		assert.Empty(t, final.View())
	})

	t.Run("ticks stop after completion", func(t *testing.T) {
		m := newProgressModel(context.Background(), styles.NewTheme(), "collecting", nil)
		m.done = true

		_, cmd := m.Update(spinner.TickMsg{})

		assert.Nil(t, cmd)
	})

	t.Run("execute runs the bundle step with the model context", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		var seen context.Context
		m := newProgressModel(ctx, styles.NewTheme(), "collecting", func(c context.Context) (*usecase.CollectBundleOutput, error) {
			seen = c
			return nil, nil
		})

		msg := m.execute()()

		_, ok := msg.(bundleDoneMsg)
		assert.True(t, ok)
		assert.Equal(t, "v", seen.Value(key{}))
	})
}
