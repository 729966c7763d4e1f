package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ydbtools/ydbgather/internal/domain/build"
)

// AboutRenderer renders build information.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info next to a small logo.
func (r *AboutRenderer) Render(info build.Info) string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true).MarginLeft(2)
	logo := logoStyle.Render(`█   █
 █ █
  █
  █
  █`)

	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		r.theme.Title.Render("ydbgather"),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Version"), valStyle.Render(orUnknown(info.Version))),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGitBranch), keyStyle.Render("Commit"), valStyle.Render(orUnknown(info.Commit))),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconCalendar), keyStyle.Render("Built"), valStyle.Render(orUnknown(info.BuildDate))),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), keyStyle.Render("Go"), valStyle.Render(orUnknown(info.GoVersion))),
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", strings.Join(lines, "\n"))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
