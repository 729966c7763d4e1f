package port

import (
	"context"
	"io"
)

// SystemSnapshot holds operating-system facts relevant to a support request.
type SystemSnapshot struct {
	Hostname       string            `json:"hostname"`
	Sysname        string            `json:"sysname"`
	Release        string            `json:"release"`
	Version        string            `json:"version"`
	Machine        string            `json:"machine"`
	RLimitCoreSoft string            `json:"rlimit_core_soft"`
	RLimitCoreHard string            `json:"rlimit_core_hard"`
	CorePattern    string            `json:"core_pattern,omitempty"`
	Environment    map[string]string `json:"environment"`
}

// SystemProbe gathers a SystemSnapshot from the host.
type SystemProbe interface {
	Snapshot(ctx context.Context) (*SystemSnapshot, error)
}

// CommandRunner runs an external program, writing combined output to out.
type CommandRunner interface {
	Run(ctx context.Context, tool string, args []string, out io.Writer) error
}
