package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ydbtools/ydbgather/internal/application/usecase"
	"github.com/ydbtools/ydbgather/internal/cli/styles"
)

var (
	collectOutputDir  string
	collectNoSystem   bool
	collectNoCaptures bool
	collectProgress   bool
)

var collectCmd = &cobra.Command{
	Use:   "collect [pid|core...]",
	Short: "Collect host facts, OS command output and target stacks",
	Long: `Collect runs every step in order into one output directory:

  1. system_info.json and system_info.md (uname, core limits, environment)
  2. OS command captures (df, free, ps, ipcs, dmesg, journalctl, ...)
  3. the inspect step for every pid or core dump given

Missing tools are skipped with a warning. The command fails only when the
output directory cannot be written.

Examples:
  ydbgather collect
  ydbgather collect 4242 4243 /tmp/core.99 -o /tmp/case-1234
  ydbgather collect --no-captures 4242`,
	RunE: runCollect,
}

func init() {
	rootCmd.AddCommand(collectCmd)
	collectCmd.Flags().StringVarP(&collectOutputDir, "output", "o", "", "output directory (default ydbgather_<timestamp>)")
	collectCmd.Flags().BoolVar(&collectNoSystem, "no-system", false, "skip the system snapshot")
	collectCmd.Flags().BoolVar(&collectNoCaptures, "no-captures", false, "skip OS command captures")
	collectCmd.Flags().BoolVar(&collectProgress, "progress", false, "show a spinner on stderr while collecting")
}

func runCollect(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var system *usecase.CollectSystemInfoUseCase
	if !collectNoSystem {
		system = app.CollectSystemInfoUseCase()
	}
	input := usecase.CollectBundleInput{
		Output:  app.OutputDir(collectOutputDir),
		Targets: args,
		Version: app.BuildInfo.Version,
	}
	if !collectNoCaptures {
		input.Captures = app.Captures()
	}

	uc := usecase.NewCollectBundleUseCase(system, app.RunCapturesUseCase(), app.InspectTargetUseCase())
	result, err := runBundle(app.Ctx(), app.Theme, collectProgress, "collecting", func(ctx context.Context) (*usecase.CollectBundleOutput, error) {
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
