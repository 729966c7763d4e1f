package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ydbtools/ydbgather/internal/application/usecase"
	"github.com/ydbtools/ydbgather/internal/cli/styles"
)

var (
	inspectOutputDir string
	inspectProgress  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pid|core> [pid|core...]",
	Short: "Capture backtraces and frame dumps for processes or core dumps",
	Long: `Inspect resolves each target to its executable and runs the debugger twice:
once for a backtrace and once to dump locals and registers frame by frame.

A target naming an existing file is treated as a core dump; anything else is
treated as a process id. Problems with one target are reported as warnings
and never stop the others.

Examples:
  ydbgather inspect 4242
  ydbgather inspect /var/crash/core.mumps.1234 -o ./bundle`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectOutputDir, "output", "o", "", "output directory (default ydbgather_<timestamp>)")
	inspectCmd.Flags().BoolVar(&inspectProgress, "progress", false, "show a spinner on stderr while inspecting")
}

func runInspect(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewCollectBundleUseCase(nil, nil, app.InspectTargetUseCase())
	input := usecase.CollectBundleInput{
		Output:  app.OutputDir(inspectOutputDir),
		Targets: args,
		Version: app.BuildInfo.Version,
	}
	result, err := runBundle(app.Ctx(), app.Theme, inspectProgress, "inspecting", func(ctx context.Context) (*usecase.CollectBundleOutput, error) {
		return uc.Execute(ctx, input)
	})
	if err != nil {
		return err
	}

	fmt.Println(styles.NewCollectRenderer(app.Theme).Render(styles.CollectSummary{
		OutputDir: result.OutputDir,
		Targets:   targetSummaries(result.Targets),
		Files:     result.Files,
		Warnings:  result.Warnings,
	}))
	return nil
}
