// Package outputdir writes collected artifacts into a single directory.
package outputdir

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ydbtools/ydbgather/internal/application/port"
)

const (
	DefaultDirPerm  os.FileMode = 0o755
	DefaultFilePerm os.FileMode = 0o644
)

// Dir implements port.OutputDir.
type Dir struct {
	root     string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// New returns a Dir for root. Zero permissions select the defaults.
func New(root string, dirPerm, filePerm os.FileMode) *Dir {
	if dirPerm == 0 {
		dirPerm = DefaultDirPerm
	}
	if filePerm == 0 {
		filePerm = DefaultFilePerm
	}
	return &Dir{root: root, dirPerm: dirPerm, filePerm: filePerm}
}

// Root returns the directory path.
func (d *Dir) Root() string {
	return d.root
}

// Ensure creates the directory and its parents.
func (d *Dir) Ensure() error {
	if d.root == "" {
		return fmt.Errorf("output directory is not set")
	}
	if err := os.MkdirAll(d.root, d.dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// Path joins name onto the root.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.root, name)
}

// Append opens name for appending, creating it if needed.
func (d *Dir) Append(name string) (io.WriteCloser, error) {
	f, err := os.OpenFile(d.Path(name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, d.filePerm)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

// WriteFile replaces name with data.
func (d *Dir) WriteFile(name string, data []byte) error {
	if err := os.WriteFile(d.Path(name), data, d.filePerm); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

var _ port.OutputDir = (*Dir)(nil)
