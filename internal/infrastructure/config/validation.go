package config

import (
	"fmt"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error", "disabled", "off"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig collects every problem instead of stopping at the first.
func validateConfig(cfg *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(cfg)...)
	validationErrors = append(validationErrors, validateOutput(cfg)...)
	validationErrors = append(validationErrors, validateInspector(cfg)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(cfg *Config) []string {
	var errs []string
	if !contains(validLogLevels, cfg.Logging.Level) {
		errs = append(errs, fmt.Sprintf("logging.level must be one of %s", strings.Join(validLogLevels, ", ")))
	}
	if !contains(validLogFormats, cfg.Logging.Format) {
		errs = append(errs, fmt.Sprintf("logging.format must be one of %s", strings.Join(validLogFormats, ", ")))
	}
	return errs
}

func validateOutput(cfg *Config) []string {
	var errs []string
	if _, err := parsePerm(cfg.Output.DirPerm); err != nil {
		errs = append(errs, fmt.Sprintf("output.dir_perm %q is not an octal permission", cfg.Output.DirPerm))
	}
	if _, err := parsePerm(cfg.Output.FilePerm); err != nil {
		errs = append(errs, fmt.Sprintf("output.file_perm %q is not an octal permission", cfg.Output.FilePerm))
	}
	return errs
}

func validateInspector(cfg *Config) []string {
	var errs []string
	if cfg.Inspector.FrameWindow < 1 {
		errs = append(errs, "inspector.frame_window must be at least 1")
	}
	if strings.ContainsAny(cfg.Inspector.Debugger, " \t") {
		errs = append(errs, "inspector.debugger must be a program name or path without arguments")
	}
	return errs
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
