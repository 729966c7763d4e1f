// Package procfs resolves live processes through the /proc filesystem.
package procfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ydbtools/ydbgather/internal/application/port"
)

// DefaultRoot is the proc filesystem mount point.
const DefaultRoot = "/proc"

// Resolver implements port.ProcessResolver by reading <root>/<pid>/exe.
type Resolver struct {
	root string
}

// NewResolver creates a resolver rooted at root. An empty root selects DefaultRoot.
func NewResolver(root string) *Resolver {
	if root == "" {
		root = DefaultRoot
	}
	return &Resolver{root: root}
}

// Executable returns the target of the process's exe link unchanged. A binary
// replaced after the process started keeps the kernel's " (deleted)" marker,
// so the result never names the replacement file.
func (r *Resolver) Executable(_ context.Context, pid int) (string, error) {
	if pid <= 0 {
		return "", fmt.Errorf("invalid pid %d", pid)
	}
	link := filepath.Join(r.root, strconv.Itoa(pid), "exe")
	exe, err := os.Readlink(link)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", link, err)
	}
	return exe, nil
}

var _ port.ProcessResolver = (*Resolver)(nil)
