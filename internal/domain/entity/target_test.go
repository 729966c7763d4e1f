package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTarget_ExistingFileIsCore(t *testing.T) {
	dir := t.TempDir()
	core := filepath.Join(dir, "core.4242")
	require.NoError(t, os.WriteFile(core, []byte("ELF"), 0o600))

	target := NewTarget(core)

	assert.True(t, target.IsCore())
	assert.Equal(t, "core.4242", target.BaseName())
	assert.Equal(t, "core.4242_file.txt", target.IdentityFile())
	assert.Equal(t, "core.4242_gdb.txt", target.DebuggerFile())
	_, ok := target.PID()
	assert.False(t, ok)
}

func TestNewTarget_DirectoryIsNotCore(t *testing.T) {
	target := NewTarget(t.TempDir())

	assert.Equal(t, TargetKindProcess, target.Kind)
	_, ok := target.PID()
	assert.False(t, ok)
}

func TestNewTarget_NumericIsProcess(t *testing.T) {
	target := NewTarget(" 31337 ")

	assert.Equal(t, TargetKindProcess, target.Kind)
	pid, ok := target.PID()
	require.True(t, ok)
	assert.Equal(t, 31337, pid)
	assert.Equal(t, "31337_gdb.txt", target.DebuggerFile())
}

func TestTarget_PIDRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "-4", "0", "12ab"} {
		_, ok := NewTarget(raw).PID()
		assert.False(t, ok, raw)
	}
}
