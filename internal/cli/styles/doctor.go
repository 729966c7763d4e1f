package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorRenderer renders tool availability checks.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a renderer.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// DoctorReport is what the doctor command shows.
type DoctorReport struct {
	OverallOK  bool
	ConfigFile string
	Tools      []DoctorToolCheck
}

// DoctorToolCheck is one external program.
type DoctorToolCheck struct {
	Name     string
	Purpose  string
	Required bool
	Found    bool
	Path     string
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK)

	lines := make([]string, 0, len(report.Tools)+1)
	for _, c := range report.Tools {
		lines = append(lines, r.renderTool(c))
	}
	tools := r.theme.Box.Render(
		r.theme.BoxHeader.Render(fmt.Sprintf("%s Tools", r.theme.Highlight.Render(IconWrench))) + "\n" + strings.Join(lines, "\n"),
	)

	configFile := report.ConfigFile
	if configFile == "" {
		configFile = "(defaults, no file)"
	}
	cfg := fmt.Sprintf("%s %s %s", r.theme.Highlight.Render(IconConfig), r.theme.Subtle.Render("Config"), r.theme.Normal.Render(configFile))

	return lipgloss.JoinVertical(lipgloss.Left, header, "", tools, cfg)
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}
	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderTool(c DoctorToolCheck) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "Found"
	detail := c.Path

	if !c.Found {
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
		status = "Missing"
		if c.Required {
			icon = IconX
			statusStyle = r.theme.ErrorStyle
		}
		detail = "not in PATH"
	}

	purpose := ""
	if c.Purpose != "" {
		purpose = " " + r.theme.Subtle.Render(c.Purpose)
	}

	return fmt.Sprintf("%s %s %s%s\n  %s",
		statusStyle.Render(icon),
		r.theme.Normal.Render(c.Name),
		r.theme.BadgeMuted.Render(statusStyle.Render(status)),
		purpose,
		r.theme.Subtle.Render(detail),
	)
}
