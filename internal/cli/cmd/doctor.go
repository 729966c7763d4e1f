package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ydbtools/ydbgather/internal/application/usecase"
	"github.com/ydbtools/ydbgather/internal/cli/styles"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which external tools are available",
	Long: `Doctor reports whether the debugger, the file-type inspector and the OS
commands used for captures are on PATH.

The command fails when a required tool (debugger or file inspector) is missing.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewCheckToolsUseCase(app.Probe)
	out, err := uc.Execute(app.Ctx(), usecase.CheckToolsInput{Tools: app.RequiredTools()})
	if err != nil {
		return err
	}

	report := styles.DoctorReport{OverallOK: out.OK, ConfigFile: app.ConfigFile}
	for _, c := range out.Checks {
		report.Tools = append(report.Tools, styles.DoctorToolCheck{
			Name:     c.Name,
			Purpose:  c.Purpose,
			Required: c.Required,
			Found:    c.Found,
			Path:     c.Path,
		})
	}
	fmt.Println(styles.NewDoctorRenderer(app.Theme).Render(report))

	if !out.OK {
		return fmt.Errorf("required tools missing")
	}
	return nil
}
