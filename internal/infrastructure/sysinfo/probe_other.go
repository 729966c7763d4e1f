//go:build !linux && !darwin

package sysinfo

import (
	"errors"
	"runtime"

	"github.com/ydbtools/ydbgather/internal/application/port"
)

func fillUname(snap *port.SystemSnapshot) error {
	snap.Sysname = runtime.GOOS
	snap.Machine = runtime.GOARCH
	return errors.New("uname is not supported on " + runtime.GOOS)
}

func fillCoreLimits(snap *port.SystemSnapshot) {
	snap.RLimitCoreSoft = "unsupported"
	snap.RLimitCoreHard = "unsupported"
}
