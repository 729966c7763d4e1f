// Package tools detects and runs the external programs the collector relies on.
package tools

import (
	"os/exec"
	"sync"

	"github.com/ydbtools/ydbgather/internal/application/port"
)

// LookPathFunc resolves a program name to an absolute path.
type LookPathFunc func(name string) (string, error)

// Probe implements port.ToolProbe on top of PATH lookups. Each program is
// looked up once; later queries return the cached answer.
type Probe struct {
	lookPath LookPathFunc

	mu    sync.Mutex
	cache map[string]port.ToolStatus
}

// NewProbe creates a probe backed by exec.LookPath.
func NewProbe() *Probe {
	return NewProbeWithLookPath(exec.LookPath)
}

// NewProbeWithLookPath creates a probe with a custom lookup, used by tests.
func NewProbeWithLookPath(lookPath LookPathFunc) *Probe {
	return &Probe{
		lookPath: lookPath,
		cache:    make(map[string]port.ToolStatus),
	}
}

// Lookup returns the path of name and whether it was found.
func (p *Probe) Lookup(name string) (string, bool) {
	st := p.Status(name)
	return st.Path, st.Found
}

// Status returns the cached status for name, probing the host on first use.
func (p *Probe) Status(name string) port.ToolStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	if st, ok := p.cache[name]; ok {
		return st
	}

	st := port.ToolStatus{Name: name}
	if path, err := p.lookPath(name); err == nil {
		st.Path = path
		st.Found = true
	}
	p.cache[name] = st
	return st
}

var _ port.ToolProbe = (*Probe)(nil)
