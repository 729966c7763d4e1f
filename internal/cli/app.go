// Package cli wires configuration, logging and use cases for the commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ydbtools/ydbgather/internal/application/usecase"
	"github.com/ydbtools/ydbgather/internal/cli/styles"
	"github.com/ydbtools/ydbgather/internal/domain/build"
	"github.com/ydbtools/ydbgather/internal/domain/entity"
	"github.com/ydbtools/ydbgather/internal/domain/stack"
	"github.com/ydbtools/ydbgather/internal/infrastructure/config"
	"github.com/ydbtools/ydbgather/internal/infrastructure/fileinfo"
	"github.com/ydbtools/ydbgather/internal/infrastructure/gdb"
	"github.com/ydbtools/ydbgather/internal/infrastructure/outputdir"
	"github.com/ydbtools/ydbgather/internal/infrastructure/procfs"
	"github.com/ydbtools/ydbgather/internal/infrastructure/sysinfo"
	"github.com/ydbtools/ydbgather/internal/infrastructure/tools"
	"github.com/ydbtools/ydbgather/internal/logging"
)

// Options are the global command-line overrides.
type Options struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info
	Logger     zerolog.Logger

	Probe  *tools.Probe
	Runner *tools.Runner

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp loads configuration and builds the shared adapters.
func NewApp(opts Options) (*App, error) {
	var managerOpts []config.ManagerOption
	if opts.ConfigFile != "" {
		managerOpts = append(managerOpts, config.WithConfigFile(opts.ConfigFile))
	}
	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	level, format := cfg.Logging.Level, cfg.Logging.Format
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		format = opts.LogFormat
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logging.WithContext(ctx, logger)

	probe := tools.NewProbe()
	logger.Debug().Str("config_file", mgr.ConfigFileUsed()).Msg("configuration loaded")

	return &App{
		Config:     cfg,
		ConfigFile: mgr.ConfigFileUsed(),
		Theme:      styles.NewTheme(),
		Logger:     logger,
		Probe:      probe,
		Runner:     tools.NewRunner(probe),
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// Ctx returns the context carrying the logger. It is cancelled on SIGINT or
// SIGTERM.
func (a *App) Ctx() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// Close releases the signal handler.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	return nil
}

// OutputDir resolves the bundle directory: the flag value, then the config
// value, then a timestamped directory in the working directory.
func (a *App) OutputDir(flagValue string) *outputdir.Dir {
	dir := flagValue
	if dir == "" {
		dir = a.Config.Output.Dir
	}
	if dir == "" {
		dir = config.DefaultOutputDir(time.Now())
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return outputdir.New(dir, a.Config.Output.DirMode(), a.Config.Output.FileMode())
}

// InspectTargetUseCase builds the stack inspector from configuration.
func (a *App) InspectTargetUseCase() *usecase.InspectTargetUseCase {
	ic := a.Config.Inspector
	return usecase.NewInspectTargetUseCase(
		a.Probe,
		fileinfo.New(a.Runner, ic.FileInspector),
		procfs.NewResolver(ic.ProcRoot),
		gdb.New(a.Runner, ic.Debugger),
		stack.NewPlanner(ic.FrameWindow),
	)
}

// CollectSystemInfoUseCase builds the host snapshot step.
func (a *App) CollectSystemInfoUseCase() *usecase.CollectSystemInfoUseCase {
	sc := a.Config.System
	return usecase.NewCollectSystemInfoUseCase(sysinfo.NewProbe(
		sysinfo.WithCorePatternPath(sc.CorePatternPath),
		sysinfo.WithEnvPrefixes(sc.EnvPrefixes),
	))
}

// RunCapturesUseCase builds the host command capture step.
func (a *App) RunCapturesUseCase() *usecase.RunCapturesUseCase {
	return usecase.NewRunCapturesUseCase(a.Probe, a.Runner)
}

// Captures returns the configured capture catalogue, empty when disabled.
func (a *App) Captures() []entity.Capture {
	cc := a.Config.Captures
	if !cc.Enabled {
		return nil
	}
	return entity.FilterCaptures(entity.DefaultCaptures(cc.JournalSince), cc.Include)
}

// RequiredTools lists every external program the collector may invoke.
func (a *App) RequiredTools() []usecase.ToolRequirement {
	reqs := []usecase.ToolRequirement{
		{Name: a.Config.Inspector.Debugger, Purpose: "backtrace and frame dump", Required: true},
		{Name: a.Config.Inspector.FileInspector, Purpose: "core dump identification", Required: true},
	}
	for _, c := range entity.DefaultCaptures(a.Config.Captures.JournalSince) {
		reqs = append(reqs, usecase.ToolRequirement{Name: c.Tool, Purpose: fmt.Sprintf("%s capture", c.Name)})
	}
	return reqs
}
