package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/mapramp/internal/config"
	"github.com/jmylchreest/mapramp/internal/legend"
)

// resetFlags restores every flag to its default so tests can share the
// package-level commands.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{config.EnvLegendPosition, config.EnvBarWidth, config.EnvStripWidth, config.EnvWorkers} {
		t.Setenv(name, "")
	}

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--colour", colourNever}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "marker", args: []string{"classify", "0.5"}, want: "chartreuse\n"},
		{name: "marker overflow", args: []string{"classify", "1.001"}, want: "darkred\n"},
		{name: "polyline overflow", args: []string{"classify", "-k", "polyline", "1.5"}, want: "red\n"},
		{name: "unknown category", args: []string{"classify", "--category", "building", "0.5"}, want: "grey\n"},
		{name: "several values", args: []string{"classify", "0", "1"}, want: "blue\nred\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestClassifyPreview(t *testing.T) {
	out, err := execute(t, "classify", "--preview", "0.5")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if want := "  0.5     chartreuse\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestClassifyRejectsNonNumeric(t *testing.T) {
	if _, err := execute(t, "classify", "high"); err == nil {
		t.Error("classify should reject a non-numeric value")
	}
}

func TestSampleCommand(t *testing.T) {
	out, err := execute(t, "sample", "--scale", "polyline", "0", "1")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	for _, want := range []string{"POSITION", "green", "#008000", "red", "#ff0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "sample", "NaN", "Inf")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if n := strings.Count(out, "rgb(0, 0, 0)"); n != 2 {
		t.Errorf("non-finite positions gave %d undefined colours, want 2:\n%s", n, out)
	}

	if _, err := execute(t, "sample", "--scale", "rainbow", "0"); err == nil {
		t.Error("sample should reject an unknown scale")
	}
}

func TestScalesCommand(t *testing.T) {
	out, err := execute(t, "scales")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	for _, want := range []string{"marker", "polyline", "[0, 1]", "0.00:blue", "1.00:red"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLegendJSON(t *testing.T) {
	out, err := execute(t, "legend", "--format", "json")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}

	var spec legend.Spec
	if err := json.Unmarshal([]byte(out), &spec); err != nil {
		t.Fatalf("output is not a legend: %v", err)
	}
	if got := strings.Join(spec.Labels(), ","); got != "0.0,0.2,0.3,0.5,0.7,0.8,1.0" {
		t.Errorf("labels = %s", got)
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLegendLayoutFlags(t *testing.T) {
	out, err := execute(t, "legend", "--format", "json", "--divisions", "4", "--position", "topright")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}

	var spec legend.Spec
	if err := json.Unmarshal([]byte(out), &spec); err != nil {
		t.Fatalf("output is not a legend: %v", err)
	}
	if len(spec.Ticks) != 5 || spec.Position != legend.PositionTopRight {
		t.Errorf("got %d ticks at %s", len(spec.Ticks), spec.Position)
	}

	if _, err := execute(t, "legend", "--position", "middle"); err == nil {
		t.Error("legend should reject an invalid position")
	}
}

func TestLegendEnvConfig(t *testing.T) {
	resetFlags(rootCmd)
	t.Setenv(config.EnvBarWidth, "200")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--colour", colourNever, "legend", "--format", "json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	var spec legend.Spec
	if err := json.Unmarshal(out.Bytes(), &spec); err != nil {
		t.Fatalf("output is not a legend: %v", err)
	}
	if spec.Bar.WidthPx != 200 {
		t.Errorf("bar width = %d, want 200", spec.Bar.WidthPx)
	}
}

func TestLegendFormats(t *testing.T) {
	out, err := execute(t, "legend", "--format", "html")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if strings.Count(out, `class="legend-tick"`) != 7 {
		t.Errorf("html output:\n%s", out)
	}

	out, err = execute(t, "legend")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "Start") || !strings.Contains(out, "End") || strings.Contains(out, "\033[") {
		t.Errorf("ansi output:\n%s", out)
	}

	if _, err := execute(t, "legend", "--format", "png"); err == nil {
		t.Error("png without --output should fail")
	}

	path := filepath.Join(t.TempDir(), "legend.png")
	if _, err := execute(t, "legend", "--format", "png", "--output", path); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}

	if _, err := execute(t, "legend", "--format", "svg"); err == nil {
		t.Error("legend should reject an unknown format")
	}
}

func TestLegendMount(t *testing.T) {
	out, err := execute(t, "legend", "--mount")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "Mounted legend control-1 at bottomleft") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "0 controls remain") {
		t.Errorf("output = %q", out)
	}
}

func TestColorizeCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "features.json")
	body := `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {"severity": 50}},
  {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}, "properties": {"severity": 200}}
]}`
	if err := os.WriteFile(in, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	outPath := filepath.Join(dir, "out.json")

	if _, err := execute(t, "colorize", in, "--value", "severity", "--min", "0", "--max", "100", "--output", outPath); err != nil {
		t.Fatalf("execute() error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	var coll struct {
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &coll); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got := coll.Features[0].Properties["color"]; got != "chartreuse" {
		t.Errorf("marker colour = %v, want chartreuse", got)
	}
	if got := coll.Features[1].Properties["color"]; got != "red" {
		t.Errorf("polyline colour = %v, want red", got)
	}

	if _, err := execute(t, "colorize", filepath.Join(dir, "missing.json")); err == nil {
		t.Error("colorize should fail for a missing file")
	}
}

func TestColourMode(t *testing.T) {
	if _, err := execute(t, "--colour", "sometimes", "scales"); err == nil {
		t.Error("invalid colour mode should fail")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.HasPrefix(out, "mapramp version") {
		t.Errorf("output = %q", out)
	}
}
