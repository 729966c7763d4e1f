//go:build linux || darwin

package sysinfo

import (
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/ydbtools/ydbgather/internal/application/port"
)

func fillUname(snap *port.SystemSnapshot) error {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return err
	}
	snap.Sysname = unix.ByteSliceToString(u.Sysname[:])
	snap.Release = unix.ByteSliceToString(u.Release[:])
	snap.Version = unix.ByteSliceToString(u.Version[:])
	snap.Machine = unix.ByteSliceToString(u.Machine[:])
	return nil
}

func fillCoreLimits(snap *port.SystemSnapshot) {
	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		snap.RLimitCoreSoft = "unknown"
		snap.RLimitCoreHard = "unknown"
		return
	}
	snap.RLimitCoreSoft = formatRlimit(limit.Cur)
	snap.RLimitCoreHard = formatRlimit(limit.Max)
}

func formatRlimit(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "infinity"
	}
	return strconv.FormatUint(value, 10)
}
