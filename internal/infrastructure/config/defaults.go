package config

import (
	"fmt"
	"time"
)

const (
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultDirPerm         = "0755"
	defaultFilePerm        = "0644"
	defaultDebugger        = "gdb"
	defaultFileInspector   = "file"
	defaultProcRoot        = "/proc"
	defaultFrameWindow     = 50
	defaultCorePatternPath = "/proc/sys/kernel/core_pattern"
	defaultJournalSince    = "-24h"

	outputDirPrefix = "ydbgather_"
	outputDirLayout = "20060102_150405"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Output: OutputConfig{
			DirPerm:  defaultDirPerm,
			FilePerm: defaultFilePerm,
		},
		Inspector: InspectorConfig{
			Debugger:      defaultDebugger,
			FileInspector: defaultFileInspector,
			ProcRoot:      defaultProcRoot,
			FrameWindow:   defaultFrameWindow,
		},
		System: SystemConfig{
			EnvPrefixes:     []string{"ydb_", "gtm"},
			CorePatternPath: defaultCorePatternPath,
		},
		Captures: CapturesConfig{
			Enabled:      true,
			JournalSince: defaultJournalSince,
		},
	}
}

// DefaultOutputDir names a bundle directory after the collection time.
func DefaultOutputDir(now time.Time) string {
	return fmt.Sprintf("%s%s", outputDirPrefix, now.Format(outputDirLayout))
}
