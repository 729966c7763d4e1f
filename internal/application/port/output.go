package port

import "io"

// OutputDir is the caller-selected directory that receives collected files.
type OutputDir interface {
	// Root returns the directory path.
	Root() string
	// Ensure creates the directory if it does not exist.
	Ensure() error
	// Append opens name for appending, creating it if needed.
	Append(name string) (io.WriteCloser, error)
	// WriteFile replaces name with data.
	WriteFile(name string, data []byte) error
	// Path returns the full path of name inside the directory.
	Path(name string) string
}
