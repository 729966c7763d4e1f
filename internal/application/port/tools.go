// Package port defines interfaces for external dependencies.
package port

import (
	"errors"
	"fmt"
)

// ErrToolMissing indicates an external program is not installed on the host.
var ErrToolMissing = errors.New("tool missing")

// ToolMissingError names the external program that could not be found.
type ToolMissingError struct {
	Tool string
}

func (e *ToolMissingError) Error() string {
	if e == nil {
		return ErrToolMissing.Error()
	}
	return fmt.Sprintf("%s: %s not found in PATH", ErrToolMissing, e.Tool)
}

func (e *ToolMissingError) Unwrap() error {
	return ErrToolMissing
}

// ToolStatus is the cached answer for one external program.
type ToolStatus struct {
	Name  string
	Path  string
	Found bool
}

// ToolProbe answers whether external programs are available.
//
// Implementations query the host once per tool and cache the result for the
// lifetime of the probe.
type ToolProbe interface {
	Lookup(name string) (path string, found bool)
}
