// Package cmd provides the cobra commands for ydbgather.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ydbtools/ydbgather/internal/cli"
	"github.com/ydbtools/ydbgather/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	globals   cli.Options

	rootCmd = &cobra.Command{
		Use:   "ydbgather",
		Short: "Collect diagnostics for YottaDB and GT.M support requests",
		Long: `ydbgather collects the information a support engineer needs to investigate
a YottaDB or GT.M problem into a single directory.

For every live process id or core dump given, it identifies the executable,
captures a debugger backtrace and dumps locals and registers for each frame.
Very deep stacks are trimmed to the frames at both ends.

The collect command also records host facts (uname, core dump limits, the
kernel core pattern, ydb_* and gtm* environment variables) and the output of
common OS commands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "__complete":
				return nil
			}

			var err error
			app, err = cli.NewApp(globals)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globals.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/ydbgather/config.toml)")
	flags.StringVar(&globals.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	flags.StringVar(&globals.LogFormat, "log-format", "", "log format: console, json")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}
