// Package viz renders predator-prey trajectories as terminal line charts.
//
// [Chart] draws both populations with asciigraph on one time axis, prey in
// gold and predators in crimson, followed by a lipgloss-styled time axis and
// legend. Output goes straight to the terminal; nothing is written to disk.
package viz
