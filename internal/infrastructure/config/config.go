// Package config loads ydbgather settings from TOML files and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config is the complete ydbgather configuration.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
	Output    OutputConfig    `mapstructure:"output" toml:"output" json:"output"`
	Inspector InspectorConfig `mapstructure:"inspector" toml:"inspector" json:"inspector"`
	System    SystemConfig    `mapstructure:"system" toml:"system" json:"system"`
	Captures  CapturesConfig  `mapstructure:"captures" toml:"captures" json:"captures"`
}

// LoggingConfig controls the diagnostic log written to stderr.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// OutputConfig controls where collected files are written.
type OutputConfig struct {
	// Dir is the bundle directory. Empty selects a timestamped directory in
	// the working directory.
	Dir      string `mapstructure:"dir" toml:"dir" json:"dir" jsonschema:"description=Bundle directory; empty creates ydbgather_<timestamp> in the working directory"`
	DirPerm  string `mapstructure:"dir_perm" toml:"dir_perm" json:"dir_perm" jsonschema:"pattern=^0?[0-7]{3}$,default=0755"`
	FilePerm string `mapstructure:"file_perm" toml:"file_perm" json:"file_perm" jsonschema:"pattern=^0?[0-7]{3}$,default=0644"`
}

// InspectorConfig controls stack inspection of processes and core dumps.
type InspectorConfig struct {
	Debugger      string `mapstructure:"debugger" toml:"debugger" json:"debugger" jsonschema:"default=gdb"`
	FileInspector string `mapstructure:"file_inspector" toml:"file_inspector" json:"file_inspector" jsonschema:"default=file"`
	ProcRoot      string `mapstructure:"proc_root" toml:"proc_root" json:"proc_root" jsonschema:"default=/proc"`
	// FrameWindow is the number of frames dumped from each end of a deep stack.
	FrameWindow int `mapstructure:"frame_window" toml:"frame_window" json:"frame_window" jsonschema:"minimum=1,default=50"`
}

// SystemConfig controls the host snapshot.
type SystemConfig struct {
	EnvPrefixes     []string `mapstructure:"env_prefixes" toml:"env_prefixes" json:"env_prefixes"`
	CorePatternPath string   `mapstructure:"core_pattern_path" toml:"core_pattern_path" json:"core_pattern_path"`
}

// CapturesConfig controls host command captures.
type CapturesConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled" jsonschema:"default=true"`
	// Include limits captures to these names. Empty runs all of them.
	Include      []string `mapstructure:"include" toml:"include" json:"include"`
	JournalSince string   `mapstructure:"journal_since" toml:"journal_since" json:"journal_since" jsonschema:"default=-24h"`
}

// DirMode returns the parsed directory permission bits.
func (o OutputConfig) DirMode() os.FileMode {
	mode, err := parsePerm(o.DirPerm)
	if err != nil {
		return dirPerm
	}
	return mode
}

// FileMode returns the parsed file permission bits.
func (o OutputConfig) FileMode() os.FileMode {
	mode, err := parsePerm(o.FilePerm)
	if err != nil {
		return filePerm
	}
	return mode
}

func parsePerm(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	if v == 0 || v > 0o777 {
		return 0, fmt.Errorf("permission %s out of range", s)
	}
	return os.FileMode(v), nil
}
