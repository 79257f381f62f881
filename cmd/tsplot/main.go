// Command tsplot renders numeric time series files into a line chart.
//
// Usage:
//
//	tsplot [flags] FILE...
//
// Each FILE holds one series, one sample per line, optionally with
// "step <x>" lines that set the x distance between samples. "-" reads
// standard input and .xlsx files are read from their first sheet.
//
// Default flags can be set in the TSPLOT_FLAGS environment variable, for
// example TSPLOT_FLAGS='--width 1600 --height 800 -L'. Flags given on the
// command line take precedence.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/tsplot"
	"github.com/gogpu/tsplot/chart"
)

// envFlags names the variable holding default flags.
const envFlags = "TSPLOT_FLAGS"

// options mirrors the command-line flags.
type options struct {
	logScale  float64
	minAvg    float64
	minHeight float64
	maxHeight float64

	runningAvg  int
	plotLine    bool
	output      string
	width       int
	height      int
	supersample int
	verbose     bool
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.Float64VarP(&o.logScale, "log", "l", 0, "log-scale exponent applied to normalized y")
	fs.Float64Var(&o.minAvg, "min-avg", 0, "extend the bottom below the minimum by scale*|mean-min|")
	fs.Float64VarP(&o.minHeight, "min", "m", 0, "fixed bottom of the y axis")
	fs.Float64VarP(&o.maxHeight, "max", "M", 0, "fixed top of the y axis")
	fs.IntVarP(&o.runningAvg, "running-avg", "r", 0, "running average window (0 disables)")
	fs.BoolVarP(&o.plotLine, "line", "L", false, "draw the least-squares line of each series")
	fs.StringVarP(&o.output, "output", "o", "graph.ppm", "output image (.ppm, .png, .bmp, .tiff)")
	fs.IntVar(&o.width, "width", chart.DefaultWidth, "image width in pixels")
	fs.IntVar(&o.height, "height", chart.DefaultHeight, "image height in pixels")
	fs.IntVar(&o.supersample, "supersample", 1, "render at N times the size and downscale")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging to stderr")
}

// config resolves the parsed flags. Float options are set only when the
// flag was given.
func (o *options) config(fs *pflag.FlagSet) chart.Config {
	optional := func(name string, v float64) *float64 {
		if !fs.Changed(name) {
			return nil
		}
		return &v
	}

	return chart.Config{
		LogScale:    optional("log", o.logScale),
		MinAvg:      optional("min-avg", o.minAvg),
		MinHeight:   optional("min", o.minHeight),
		MaxHeight:   optional("max", o.maxHeight),
		RunningAvg:  o.runningAvg,
		PlotLine:    o.plotLine,
		Width:       o.width,
		Height:      o.height,
		Supersample: o.supersample,
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "tsplot [flags] FILE...",
		Short: "Render numeric time series into a line chart",
		Long: `tsplot reads one series per file and draws them into a single chart
with guide lines, axis labels and optional running average and best-fit
overlays.`,
		Version:       tsplot.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}
	o.register(cmd.Flags())

	return cmd
}

func run(cmd *cobra.Command, o *options, paths []string) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	tsplot.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	defer tsplot.SetLogger(nil)

	cfg := o.config(cmd.Flags())
	g, err := chart.New(cfg)
	if err != nil {
		return err
	}

	if err := g.Load(paths...); err != nil {
		return err
	}

	return g.Save(o.output)
}

// withEnvDefaults prepends the shell-split contents of env to args.
func withEnvDefaults(env string, args []string) ([]string, error) {
	if env == "" {
		return args, nil
	}

	defaults, err := shellquote.Split(env)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", envFlags, err)
	}
	return append(defaults, args...), nil
}

func main() {
	args, err := withEnvDefaults(os.Getenv(envFlags), os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "tsplot:", err)
		os.Exit(1)
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tsplot:", err)
		os.Exit(1)
	}
}
