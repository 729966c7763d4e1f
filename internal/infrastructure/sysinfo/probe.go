// Package sysinfo gathers host facts for a support bundle.
package sysinfo

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/ydbtools/ydbgather/internal/application/port"
	"github.com/ydbtools/ydbgather/internal/logging"
)

// DefaultCorePatternPath is where Linux exposes the kernel core pattern.
const DefaultCorePatternPath = "/proc/sys/kernel/core_pattern"

// DefaultEnvPrefixes select the database runtime's environment variables.
var DefaultEnvPrefixes = []string{"ydb_", "gtm"}

// Probe implements port.SystemProbe.
type Probe struct {
	corePatternPath string
	envPrefixes     []string
	environ         func() []string
	hostname        func() (string, error)
}

// Option configures a Probe.
type Option func(*Probe)

// WithCorePatternPath overrides the core pattern file location.
func WithCorePatternPath(path string) Option {
	return func(p *Probe) { p.corePatternPath = path }
}

// WithEnvPrefixes overrides the environment variable prefixes.
func WithEnvPrefixes(prefixes []string) Option {
	return func(p *Probe) { p.envPrefixes = prefixes }
}

// WithEnviron replaces os.Environ, for tests.
func WithEnviron(fn func() []string) Option {
	return func(p *Probe) { p.environ = fn }
}

// NewProbe creates a host probe.
func NewProbe(opts ...Option) *Probe {
	p := &Probe{
		corePatternPath: DefaultCorePatternPath,
		envPrefixes:     DefaultEnvPrefixes,
		environ:         os.Environ,
		hostname:        os.Hostname,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Snapshot collects what it can. Individual facts that cannot be read are
// left empty and logged; an error is returned only if every source failed.
func (p *Probe) Snapshot(ctx context.Context) (*port.SystemSnapshot, error) {
	log := logging.FromContext(logging.WithComponent(ctx, "sysinfo"))
	snap := &port.SystemSnapshot{}

	var errs []error
	if host, err := p.hostname(); err != nil {
		errs = append(errs, err)
		log.Debug().Err(err).Msg("hostname unavailable")
	} else {
		snap.Hostname = host
	}

	if err := fillUname(snap); err != nil {
		errs = append(errs, err)
		log.Debug().Err(err).Msg("uname unavailable")
	}
	fillCoreLimits(snap)

	if p.corePatternPath != "" {
		raw, err := os.ReadFile(p.corePatternPath)
		if err != nil {
			log.Debug().Err(err).Str("path", p.corePatternPath).Msg("core pattern unavailable")
		} else {
			snap.CorePattern = strings.TrimSpace(string(raw))
		}
	}

	snap.Environment = FilterEnvironment(p.environ(), p.envPrefixes)

	if len(errs) == 2 && snap.CorePattern == "" && len(snap.Environment) == 0 {
		return snap, errors.Join(errs...)
	}
	return snap, nil
}

// FilterEnvironment keeps KEY=VALUE entries whose key starts with one of the
// prefixes, compared case-insensitively.
func FilterEnvironment(environ []string, prefixes []string) map[string]string {
	env := make(map[string]string)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		lower := strings.ToLower(key)
		for _, prefix := range prefixes {
			if prefix != "" && strings.HasPrefix(lower, strings.ToLower(prefix)) {
				env[key] = value
				break
			}
		}
	}
	return env
}

var _ port.SystemProbe = (*Probe)(nil)
