// Package ui formats simulation figures for display. The drawing half needs
// the ebiten build tag; the text layout below is shared with the terminal
// runner.
package ui

import (
	"fmt"
	"strings"

	"sparse-life/internal/core"
)

// Timing carries host loop measurements.
type Timing struct {
	FPS, TPS float64
	Visible  int
}

// DiagnosticsLines renders the run figures of snap, one line each.
func DiagnosticsLines(snap core.ParameterSnapshot, tm Timing) []string {
	get := func(key string) string {
		if p, ok := snap.Lookup(key); ok {
			return p.Value
		}
		return "--"
	}
	lines := []string{
		fmt.Sprintf("%s  gen %s", strings.ToUpper(get("phase")), get("generation")),
		fmt.Sprintf("pop %s (peak %s, avg %s)", get("population"), get("peak_population"), get("average_population")),
		fmt.Sprintf("+%s -%s", get("births"), get("deaths")),
	}
	if tm.FPS > 0 || tm.TPS > 0 {
		lines = append(lines, fmt.Sprintf("FPS %.1f  TPS %.1f", tm.FPS, tm.TPS))
	}
	if tm.Visible > 0 {
		lines = append(lines, fmt.Sprintf("visible %d", tm.Visible))
	}
	return lines
}

// StatusLine joins the diagnostics into one line for terminal output.
func StatusLine(snap core.ParameterSnapshot, tm Timing) string {
	return strings.Join(DiagnosticsLines(snap, tm), " | ")
}

// ParameterLines lists the groups of snap by name, skipping any in skip.
func ParameterLines(snap core.ParameterSnapshot, skip ...string) []string {
	var lines []string
	for _, g := range snap.Groups {
		if contains(skip, g.Name) {
			continue
		}
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
