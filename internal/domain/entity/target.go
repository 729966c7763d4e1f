package entity

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TargetKind distinguishes live processes from on-disk core dumps.
type TargetKind string

const (
	TargetKindProcess TargetKind = "process"
	TargetKindCore    TargetKind = "core"
)

// Target names a program instance to inspect: a PID or a core dump path.
type Target struct {
	Raw        string
	Kind       TargetKind
	Executable string
}

// NewTarget classifies raw as a core dump when it names an existing regular
// file and as a live process otherwise.
func NewTarget(raw string) Target {
	raw = strings.TrimSpace(raw)
	kind := TargetKindProcess
	if info, err := os.Stat(raw); err == nil && info.Mode().IsRegular() {
		kind = TargetKindCore
	}
	return Target{Raw: raw, Kind: kind}
}

// IsCore reports whether the target is a core dump.
func (t Target) IsCore() bool {
	return t.Kind == TargetKindCore
}

// PID returns the numeric process id for process targets.
func (t Target) PID() (int, bool) {
	if t.Kind != TargetKindProcess {
		return 0, false
	}
	pid, err := strconv.Atoi(t.Raw)
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// BaseName is the stem used for the target's transcript files.
func (t Target) BaseName() string {
	base := filepath.Base(t.Raw)
	if base == "." || base == string(filepath.Separator) {
		return "target"
	}
	return base
}

// IdentityFile is the transcript name for the file-type identification step.
func (t Target) IdentityFile() string {
	return t.BaseName() + "_file.txt"
}

// DebuggerFile is the transcript name for the backtrace and frame dump.
func (t Target) DebuggerFile() string {
	return t.BaseName() + "_gdb.txt"
}
