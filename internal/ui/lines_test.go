package ui

import (
	"strings"
	"testing"

	"sparse-life/internal/core"
)

func snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Rule", Params: []core.Parameter{core.IntParam("rule_lower", "Survive min", 2)}},
		{Name: "Run", Params: []core.Parameter{
			core.StringParam("phase", "Phase", "paused"),
			core.IntParam("generation", "Generation", 12),
			core.IntParam("population", "Population", 40),
			core.IntParam("peak_population", "Peak population", 55),
			core.FloatParam("average_population", "Average population", 47.5),
			core.IntParam("births", "Births", 3),
			core.IntParam("deaths", "Deaths", 4),
		}},
	}}
}

func TestDiagnosticsLines(t *testing.T) {
	lines := DiagnosticsLines(snapshot(), Timing{})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines without timing, got %q", lines)
	}
	if lines[0] != "PAUSED  gen 12" || lines[1] != "pop 40 (peak 55, avg 47.5)" || lines[2] != "+3 -4" {
		t.Fatalf("unexpected diagnostics %q", lines)
	}

	lines = DiagnosticsLines(snapshot(), Timing{FPS: 59.94, TPS: 60, Visible: 9})
	if len(lines) != 5 || lines[3] != "FPS 59.9  TPS 60.0" || lines[4] != "visible 9" {
		t.Fatalf("unexpected timing lines %q", lines)
	}
}

func TestDiagnosticsMissingKeys(t *testing.T) {
	line := StatusLine(core.ParameterSnapshot{}, Timing{})
	if !strings.Contains(line, "gen --") {
		t.Fatalf("missing values should render as --, got %q", line)
	}
}

func TestParameterLinesSkipsGroups(t *testing.T) {
	lines := ParameterLines(snapshot(), "Run")
	if len(lines) != 2 || lines[0] != "Rule" || lines[1] != "  Survive min: 2" {
		t.Fatalf("unexpected parameter lines %q", lines)
	}
}
