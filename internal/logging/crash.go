package logging

import (
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace and re-panics. It must be
// deferred directly.
func RecoverPanic(logger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logger.Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("panic")
	panic(r)
}
