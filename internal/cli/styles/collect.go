package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CollectRenderer summarizes a collection run.
type CollectRenderer struct {
	theme *Theme
}

// NewCollectRenderer creates a renderer.
func NewCollectRenderer(theme *Theme) *CollectRenderer {
	return &CollectRenderer{theme: theme}
}

// CollectSummary is the data shown after collect or inspect.
type CollectSummary struct {
	OutputDir string
	Targets   []TargetSummary
	Files     []string
	Warnings  []string
}

// TargetSummary describes one inspected target.
type TargetSummary struct {
	Target      string
	Kind        string
	Executable  string
	FrameCount  int
	Dumped      int
	DebuggerRan bool
}

func (r *CollectRenderer) Render(s CollectSummary) string {
	statusStyle := r.theme.SuccessStyle
	status := "Complete"
	if len(s.Warnings) > 0 {
		statusStyle = r.theme.WarningStyle
		status = fmt.Sprintf("%d warning(s)", len(s.Warnings))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconFolder), r.theme.Title.Render(s.OutputDir)),
		" ",
		r.theme.BadgeMuted.Render(statusStyle.Render(status)),
	)

	sections := []string{header}
	if len(s.Targets) > 0 {
		sections = append(sections, r.section(IconBug, "Targets", r.renderTargets(s.Targets)))
	}
	if len(s.Files) > 0 {
		files := make([]string, 0, len(s.Files))
		for _, f := range s.Files {
			files = append(files, fmt.Sprintf("%s %s", r.theme.Subtle.Render(IconFile), r.theme.Normal.Render(filepath.Base(f))))
		}
		sections = append(sections, r.section(IconFile, "Files", strings.Join(files, "\n")))
	}
	if len(s.Warnings) > 0 {
		warnings := make([]string, 0, len(s.Warnings))
		for _, w := range s.Warnings {
			warnings = append(warnings, fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Normal.Render(w)))
		}
		sections = append(sections, r.section(IconWarning, "Warnings", strings.Join(warnings, "\n")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *CollectRenderer) section(icon, title, body string) string {
	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(icon), title)) + "\n" + body)
}

func (r *CollectRenderer) renderTargets(targets []TargetSummary) string {
	lines := make([]string, 0, len(targets))
	for _, t := range targets {
		exe := t.Executable
		if exe == "" {
			exe = "unresolved"
		}
		detail := "debugger skipped"
		if t.DebuggerRan {
			detail = fmt.Sprintf("%d frames, %d dumped", t.FrameCount, t.Dumped)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s\n  %s",
			r.theme.Normal.Render(t.Target),
			r.theme.BadgeMuted.Render(t.Kind),
			r.theme.Subtle.Render(exe),
			r.theme.Subtle.Render(detail),
		))
	}
	return strings.Join(lines, "\n")
}
