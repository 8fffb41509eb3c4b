package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/predprey/internal/experiment"
	"github.com/san-kum/predprey/internal/viz"
)

const (
	minSpan = 2

	// room taken by the y-axis labels, title, time axis, legend and help line
	chromeWidth  = 12
	chromeHeight = 10
)

var helpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#666688")).
	Italic(true)

// model pans and zooms over a finished trajectory. It never mutates the
// trajectory; each frame is a window into it.
type model struct {
	labels experiment.Labels
	traj   *experiment.Trajectory
	chart  viz.Chart

	offset int
	span   int
}

func newModel(labels experiment.Labels, traj *experiment.Trajectory, chart viz.Chart) model {
	return model{
		labels: labels,
		traj:   traj,
		chart:  chart,
		span:   traj.Len(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.chart.Width = max(10, msg.Width-chromeWidth)
		m.chart.Height = max(4, msg.Height-chromeHeight)
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.offset -= m.panStep()
	case "right", "l":
		m.offset += m.panStep()
	case "+", "=":
		m.span = max(minSpan, m.span/2)
	case "-", "_":
		m.span *= 2
	case "0":
		m.offset = 0
		m.span = m.traj.Len()
	}
	m.clamp()
	return m, nil
}

func (m model) panStep() int {
	return max(1, m.span/10)
}

func (m *model) clamp() {
	n := m.traj.Len()
	m.span = min(m.span, n)
	m.offset = max(0, min(m.offset, n-m.span))
}

func (m model) window() *experiment.Trajectory {
	return m.traj.Window(m.offset, m.offset+m.span)
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.chart.Plot(m.labels, m.window()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"samples %d–%d of %d   ←/→ pan   +/- zoom   0 reset   q quit",
		m.offset, m.offset+m.span, m.traj.Len())))
	b.WriteString("\n")
	return b.String()
}

// Run shows the chart full screen until the user quits.
func Run(labels experiment.Labels, traj *experiment.Trajectory, chart viz.Chart) error {
	p := tea.NewProgram(newModel(labels, traj, chart), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
