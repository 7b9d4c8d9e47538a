package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/mapramp/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"SCALE", "STOPS"})

	table.AddRow([]string{"marker", "7"})
	table.AddRow([]string{"polyline"})
	table.AddRow([]string{"custom", "3", "extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d columns, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"POSITION", "COLOUR"})
	table.AddRow([]string{"0", "blue"})
	table.AddRow([]string{"0.25", "rgb(64, 96, 0)"})

	lines := strings.Split(table.Render(), "\n")
	if len(lines) < 4 {
		t.Fatalf("Expected at least 4 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "--------") {
		t.Errorf("Expected separator line with dashes, got: %q", lines[1])
	}
	if len(lines[1]) != len(lines[0]) {
		t.Errorf("Separator length (%d) should match header length (%d)", len(lines[1]), len(lines[0]))
	}
	if !strings.Contains(lines[3], "rgb(64, 96, 0)") {
		t.Errorf("row = %q", lines[3])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := (&Table{}).Render(); out != "" {
		t.Errorf("Expected empty string for empty table, got: %q", out)
	}
}

func TestTableAlignsColouredCells(t *testing.T) {
	defer func(prev bool) { colour.DisableColourOutput = prev }(colour.DisableColourOutput)
	colour.DisableColourOutput = false

	swatch := colour.ColourPreview(colour.MustNamed("red").RGB, 2)
	table := NewTable([]string{"COLOUR", "HEX"})
	table.AddRow([]string{swatch + " red", "#ff0000"})
	table.AddRow([]string{"plain", "#000000"})

	lines := strings.Split(table.Render(), "\n")
	// Both rows must start their HEX column at the same visible offset.
	first := visibleWidth(lines[2][:strings.Index(lines[2], "#")])
	second := visibleWidth(lines[3][:strings.Index(lines[3], "#")])
	if first != second {
		t.Errorf("HEX column at %d and %d, want equal", first, second)
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"marker", 6},
		{"◀▶", 2},
		{"\033[48;2;255;0;0m  \033[0m", 2},
		{"\033[38;2;139;0;0m▶\033[0m x", 3},
	}
	for _, tt := range tests {
		if got := visibleWidth(tt.input); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"red", 6, "red   "},
		{"yellow", 6, "yellow"},
		{"darkred", 3, "darkred"},
		{"", 2, "  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("blue teal green chartreuse", 10)
	want := []string{"blue teal", "green", "chartreuse"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("wrapText() = %q, want %q", got, want)
	}
}
