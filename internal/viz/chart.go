package viz

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/predprey/internal/experiment"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 20

	YAxisLabel = "population (thousands)"
	TimeUnit   = "weeks"
)

// Chart draws the prey and predator series against a shared time axis.
// Zero Width or Height fall back to the defaults.
type Chart struct {
	Title  string
	Width  int
	Height int
}

func (c Chart) size() (int, int) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func (c Chart) title(labels experiment.Labels) string {
	if c.Title != "" {
		return c.Title
	}
	return fmt.Sprintf("Lotka–Volterra: %s vs %s", labels.Prey, labels.Predator)
}

// Plot returns the chart as a string: title, graph with legend, time axis.
func (c Chart) Plot(labels experiment.Labels, traj *experiment.Trajectory) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(c.title(labels)))
	b.WriteString("\n\n")

	if traj == nil || traj.Len() == 0 {
		b.WriteString(Subtle.Render("no samples: the time period is shorter than one time step"))
		b.WriteString("\n")
		return b.String()
	}

	prey := sanitize(traj.Prey)
	pred := sanitize(traj.Predator)
	if !anyFinite(prey) && !anyFinite(pred) {
		b.WriteString(WarnStyle.Render("nothing to plot: every sample is NaN or infinite"))
		b.WriteString("\n")
		return b.String()
	}

	w, h := c.size()
	graph := asciigraph.PlotMany([][]float64{prey, pred},
		asciigraph.Height(h),
		asciigraph.Width(w),
		asciigraph.LowerBound(0),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(PreyColor, PredatorColor),
		asciigraph.SeriesLegends(labels.Prey, labels.Predator),
		asciigraph.Caption(YAxisLabel),
	)
	b.WriteString(graph)
	b.WriteString("\n")
	b.WriteString(c.timeAxis(traj))
	b.WriteString("\n")
	b.WriteString(Legend(labels))
	b.WriteString("\n")

	return b.String()
}

// Render writes the chart to w.
func (c Chart) Render(w io.Writer, labels experiment.Labels, traj *experiment.Trajectory) error {
	_, err := io.WriteString(w, c.Plot(labels, traj))
	return err
}

// Legend renders "■ prey  ■ predator" in the series colours.
func Legend(labels experiment.Labels) string {
	return PreySwatch.Render("■ "+labels.Prey) + "  " + PredatorSwatch.Render("■ "+labels.Predator)
}

func (c Chart) timeAxis(traj *experiment.Trajectory) string {
	return AxisStyle.Render(fmt.Sprintf("t: %s … %s %s (%d samples)",
		formatTime(traj.Times[0]), formatTime(traj.End()), TimeUnit, traj.Len()))
}

func formatTime(t float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", t), "0"), ".")
}

// sanitize maps infinities to NaN, which asciigraph leaves as gaps.
func sanitize(series []float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}

func anyFinite(series []float64) bool {
	for _, v := range series {
		if !math.IsNaN(v) {
			return true
		}
	}
	return false
}
