package main

import (
	"os"
	"runtime"

	"github.com/ydbtools/ydbgather/internal/cli/cmd"
	"github.com/ydbtools/ydbgather/internal/domain/build"
	"github.com/ydbtools/ydbgather/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	defer logging.RecoverPanic(logging.New(logging.Config{
		Level:  logging.ParseLevel("error"),
		Format: "console",
		Output: os.Stderr,
	}))

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
