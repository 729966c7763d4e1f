package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ydbtools/ydbgather/internal/application/usecase"
	"github.com/ydbtools/ydbgather/internal/cli/styles"
)

type bundleFunc func(ctx context.Context) (*usecase.CollectBundleOutput, error)

// bundleDoneMsg is sent when the bundle step returns.
type bundleDoneMsg struct {
	output *usecase.CollectBundleOutput
	err    error
}

// progressModel shows a spinner on stderr while a bundle step runs.
type progressModel struct {
	spinner spinner.Model
	label   string
	run     bundleFunc
	ctx     context.Context

	output *usecase.CollectBundleOutput
	err    error
	done   bool
}

func newProgressModel(ctx context.Context, theme *styles.Theme, label string, run bundleFunc) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return progressModel{
		spinner: s,
		label:   label,
		run:     run,
		ctx:     ctx,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.execute())
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case bundleDoneMsg:
		m.done = true
		m.output = msg.output
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label + "\n"
}

func (m progressModel) execute() tea.Cmd {
	return func() tea.Msg {
		output, err := m.run(m.ctx)
		return bundleDoneMsg{output: output, err: err}
	}
}

// runBundle executes run directly, or behind a spinner when progress is set.
// The spinner never reads stdin and leaves signal handling to the app context.
func runBundle(ctx context.Context, theme *styles.Theme, progress bool, label string, run bundleFunc) (*usecase.CollectBundleOutput, error) {
	if !progress {
		return run(ctx)
	}

	p := tea.NewProgram(
		newProgressModel(ctx, theme, label, run),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(os.Stderr),
		tea.WithoutSignalHandler(),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("progress display: %w", err)
	}

	m, ok := final.(progressModel)
	if !ok {
		return nil, fmt.Errorf("progress display: unexpected model %T", final)
	}
	return m.output, m.err
}
