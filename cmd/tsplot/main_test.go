package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/gogpu/tsplot"
	"github.com/gogpu/tsplot/chart"
	"github.com/gogpu/tsplot/raster"
	"github.com/gogpu/tsplot/series"
)

func parse(t *testing.T, args ...string) (chart.Config, *options, error) {
	t.Helper()
	fs := pflag.NewFlagSet("tsplot", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	o := &options{}
	o.register(fs)
	err := fs.Parse(args)
	return o.config(fs), o, err
}

func TestConfigDefaults(t *testing.T) {
	cfg, o, err := parse(t, "a.txt")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogScale != nil || cfg.MinAvg != nil || cfg.MinHeight != nil || cfg.MaxHeight != nil {
		t.Errorf("optional floats should be unset: %+v", cfg)
	}
	if cfg.Width != 4000 || cfg.Height != 2000 || cfg.Supersample != 1 {
		t.Errorf("size = %dx%d x%d", cfg.Width, cfg.Height, cfg.Supersample)
	}
	if cfg.RunningAvg != 0 || cfg.PlotLine {
		t.Errorf("overlays should be off: %+v", cfg)
	}
	if o.output != "graph.ppm" {
		t.Errorf("output = %q", o.output)
	}
}

func TestConfigFlags(t *testing.T) {
	cfg, o, err := parse(t,
		"-l", "2", "--min-avg", "0.5", "-M", "10",
		"-r", "5", "-L", "-o", "out.png",
		"--width", "800", "--height", "400", "--supersample", "2", "-v",
		"a.txt", "b.txt")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogScale == nil || *cfg.LogScale != 2 {
		t.Errorf("LogScale = %v", cfg.LogScale)
	}
	if cfg.MinAvg == nil || *cfg.MinAvg != 0.5 {
		t.Errorf("MinAvg = %v", cfg.MinAvg)
	}
	if cfg.MaxHeight == nil || *cfg.MaxHeight != 10 {
		t.Errorf("MaxHeight = %v", cfg.MaxHeight)
	}
	if cfg.MinHeight != nil {
		t.Errorf("MinHeight = %v, want unset", *cfg.MinHeight)
	}
	if cfg.RunningAvg != 5 || !cfg.PlotLine {
		t.Errorf("RunningAvg %d PlotLine %v", cfg.RunningAvg, cfg.PlotLine)
	}
	if cfg.Width != 800 || cfg.Height != 400 || cfg.Supersample != 2 {
		t.Errorf("size = %dx%d x%d", cfg.Width, cfg.Height, cfg.Supersample)
	}
	if o.output != "out.png" || !o.verbose {
		t.Errorf("output %q verbose %v", o.output, o.verbose)
	}
}

func TestConfigZeroIsSet(t *testing.T) {
	cfg, _, err := parse(t, "--min", "0")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinHeight == nil || *cfg.MinHeight != 0 {
		t.Errorf("explicit --min 0 should be set, got %v", cfg.MinHeight)
	}
}

func TestFlagErrors(t *testing.T) {
	tests := [][]string{
		{"--log"},
		{"--min", "low"},
		{"-r", "1.5"},
		{"--unknown"},
	}
	for _, args := range tests {
		if _, _, err := parse(t, args...); err == nil {
			t.Errorf("parse(%q) should fail", args)
		}
	}
}

func TestWithEnvDefaults(t *testing.T) {
	args, err := withEnvDefaults(`--width 10 -L -o "my chart.png"`, []string{"--width", "20", "a.txt"})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"--width", "10", "-L", "-o", "my chart.png", "--width", "20", "a.txt"}
	if strings.Join(args, "|") != strings.Join(want, "|") {
		t.Errorf("args = %q, want %q", args, want)
	}

	cfg, o, err := parse(t, args...)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 20 || !cfg.PlotLine || o.output != "my chart.png" {
		t.Errorf("explicit flags should win: width %d line %v output %q", cfg.Width, cfg.PlotLine, o.output)
	}
}

func TestWithEnvDefaultsEmpty(t *testing.T) {
	args, err := withEnvDefaults("", []string{"a"})
	if err != nil || len(args) != 1 {
		t.Errorf("got %q, %v", args, err)
	}
}

func TestWithEnvDefaultsBadQuoting(t *testing.T) {
	if _, err := withEnvDefaults(`--output "unterminated`, nil); err == nil {
		t.Error("expected error for unterminated quote")
	}
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "a.txt")
	out := filepath.Join(dir, "a.ppm")
	if err := os.WriteFile(in, []byte("step 2\n1.0\n3.0\n5.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "--width", "120", "--height", "60", "-L", "-r", "2", "-o", out, in); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, h, err := raster.DecodePPMConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if w != 120 || h != 60 {
		t.Errorf("output is %dx%d, want 120x60", w, h)
	}
}

func TestRunExclusiveOptions(t *testing.T) {
	dir := t.TempDir()
	// The input is never read: the conflict is reported first.
	err := execute(t, "--min-avg", "1", "--min", "0", "-o", filepath.Join(dir, "x.ppm"), filepath.Join(dir, "missing.txt"))

	var ex *chart.ExclusiveOptionsError
	if !errors.As(err, &ex) {
		t.Errorf("error = %v, want *chart.ExclusiveOptionsError", err)
	}
}

func TestRunParseError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(in, []byte("1\nabc\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := execute(t, "-o", filepath.Join(dir, "x.ppm"), in)
	var pe *series.ParseError
	if !errors.As(err, &pe) || pe.Text != "abc" {
		t.Errorf("error = %v, want *series.ParseError for %q", err, "abc")
	}
}

func TestRunRequiresFiles(t *testing.T) {
	if err := execute(t); err == nil {
		t.Error("expected error without input files")
	}
}

func TestVersionFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), tsplot.Version) {
		t.Errorf("version output %q does not contain %q", out.String(), tsplot.Version)
	}
}
