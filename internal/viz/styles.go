package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Series colours: gold for prey, crimson for predators, in both the
// asciigraph palette and lipgloss hex form.
const (
	PreyHex     = "#FFD700"
	PredatorHex = "#DC143C"
)

var (
	PreyColor     = asciigraph.Gold
	PredatorColor = asciigraph.Crimson

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	AxisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	WarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	PreySwatch     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(PreyHex))
	PredatorSwatch = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(PredatorHex))
)
