// Command peakfind detects peaks in intensity traces.
//
// Usage:
//
//	peakfind [flags] [trace-file]
//
// The trace file holds comma, semicolon or tab separated numbers; '#' starts
// a comment line. Without a file the trace is read from stdin. Rows are
// joined into one trace unless -column selects a single column.
//
// Examples:
//
//	peakfind -min-width 2 -max-width 12 run01.csv
//	peakfind -column 3 -snr 6 -format csv run01.csv
//	peakfind -method zscore -lag 20 run01.csv
//	peakfind -fill -bin 250 run01.csv
//	peakfind -demo
//
// Defaults come from PEAKFIND_* environment variables or a .env file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mdobak/go-xerrors"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
	"github.com/cwbudde/algo-peaks/dsp/signal"
	"github.com/cwbudde/algo-peaks/internal/config"
	"github.com/cwbudde/algo-peaks/internal/logging"
	"github.com/cwbudde/algo-peaks/internal/traceio"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("peakfind failed", zap.Error(xerrors.New(err)))
		_ = logger.Sync()
		os.Exit(1)
	}
}

type options struct {
	method   string
	column   int
	format   string
	demo     bool
	seed     int64
	minWidth int
	maxWidth int

	snr           float64
	height        string
	integration   string
	edges         string
	minArea       float64
	minHeight     float64
	minPeakWidth  float64
	minProminence float64

	lag       int
	threshold float64
	influence float64
	base      string

	fill   bool
	bin    int
	perBin int
}

func parseFlags(cfg config.Config, args []string, stderr io.Writer) (options, []string, error) {
	var o options
	fs := flag.NewFlagSet("peakfind", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.method, "method", cfg.Method, "detector: cwt or zscore")
	fs.IntVar(&o.column, "column", -1, "analyze one column (0-based) instead of all rows joined")
	fs.StringVar(&o.format, "format", "table", "output format: table or csv")
	fs.BoolVar(&o.demo, "demo", false, "analyze a generated trace instead of reading input")
	fs.Int64Var(&o.seed, "seed", 1, "noise seed for -demo")
	fs.IntVar(&o.minWidth, "min-width", cfg.MinWidth, "smallest wavelet width in samples (cwt)")
	fs.IntVar(&o.maxWidth, "max-width", cfg.MaxWidth, "largest wavelet width in samples (cwt)")

	fs.Float64Var(&o.snr, "snr", cfg.MinSNR, "minimum ridge signal-to-noise ratio (cwt)")
	fs.StringVar(&o.height, "height", string(peaks.HeightMaxima), "peak top: maxima or cwt (cwt)")
	fs.StringVar(&o.integration, "integration", string(peaks.IntegrateBase), "area baseline: base or prominence (cwt)")
	fs.StringVar(&o.edges, "edges", string(peaks.EdgeReject), "peaks overlapping the trace ends: reject or clamp (cwt)")
	fs.Float64Var(&o.minArea, "min-area", 0, "minimum peak area")
	fs.Float64Var(&o.minHeight, "min-height", 0, "minimum peak height")
	fs.Float64Var(&o.minPeakWidth, "min-peak-width", 0, "minimum peak width")
	fs.Float64Var(&o.minProminence, "min-prominence", 0, "minimum peak prominence (cwt)")

	zs := peaks.DefaultZScoreConfig()
	fs.IntVar(&o.lag, "lag", zs.Lag, "trailing window in samples (zscore)")
	fs.Float64Var(&o.threshold, "threshold", zs.Threshold, "standard deviations that mark a sample (zscore)")
	fs.Float64Var(&o.influence, "influence", zs.Influence, "weight of marked samples in the running statistics (zscore)")
	fs.StringVar(&o.base, "base", string(zs.Base), "base level: baseline, edge, minima, prominence or zero (zscore)")

	fs.BoolVar(&o.fill, "fill", false, "insert zero-area peaks into gaps of regularly spaced peaks")
	fs.IntVar(&o.bin, "bin", 0, "lay peaks out on a grid of bins this many samples wide")
	fs.IntVar(&o.perBin, "per-bin", 1, "peak slots per bin, used with -bin")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: peakfind [flags] [trace-file]\n\n")
		fmt.Fprintf(stderr, "Detects peaks in an intensity trace and prints one row per peak.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}
	return o, fs.Args(), nil
}

func run(cfg config.Config, args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	o, files, err := parseFlags(cfg, args, os.Stderr)
	if err != nil {
		return err
	}
	if len(files) > 1 {
		return fmt.Errorf("expected at most one trace file, got %d", len(files))
	}

	trace, err := loadTrace(o, files, stdin)
	if err != nil {
		return err
	}
	logger.Info("trace loaded", zap.Int("samples", len(trace)), zap.String("method", o.method))

	found, err := detect(o, trace, logger)
	if err != nil {
		return err
	}
	logger.Info("peaks detected", zap.Int("count", len(found)))

	if o.fill {
		found = peaks.InsertMissing(found, 0, 0)
	}
	if o.bin > 0 {
		found, err = peaks.BinPeaks(found, len(trace), o.bin, o.perBin, 0)
		if err != nil {
			return err
		}
	}

	switch o.format {
	case "csv":
		return traceio.WritePeaks(stdout, found)
	case "table":
		return printTable(stdout, found)
	default:
		return fmt.Errorf("unknown format %q, valid values are 'table', 'csv'", o.format)
	}
}

func loadTrace(o options, files []string, stdin io.Reader) ([]float64, error) {
	if o.demo {
		g := signal.NewGenerator(signal.WithSeed(o.seed), signal.WithBaseline(0.5), signal.WithNoise(0.05))
		return g.Trace(1000,
			signal.PeakShape{Center: 120, Sigma: 2, Height: 10},
			signal.PeakShape{Center: 400, Sigma: 3, Height: 6},
			signal.PeakShape{Center: 430, Sigma: 2, Height: 4},
			signal.PeakShape{Center: 800, Sigma: 4, Height: 8},
		)
	}

	r := stdin
	if len(files) == 1 {
		f, err := os.Open(files[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	m, err := traceio.Load(r)
	if err != nil {
		return nil, err
	}
	if o.column >= 0 {
		return traceio.Column(m, o.column)
	}
	return traceio.Flatten(m), nil
}

func detect(o options, trace []float64, logger *zap.Logger) ([]peaks.Peak, error) {
	switch o.method {
	case "cwt":
		return peaks.FindPeaks(trace, o.minWidth, o.maxWidth,
			peaks.WithRidgeMinSNR(o.snr),
			peaks.WithHeightMethod(peaks.HeightMethod(o.height)),
			peaks.WithIntegrationMethod(peaks.IntegrationMethod(o.integration)),
			peaks.WithEdgePolicy(peaks.EdgePolicy(o.edges)),
			peaks.WithMinArea(o.minArea),
			peaks.WithMinHeight(o.minHeight),
			peaks.WithMinWidth(o.minPeakWidth),
			peaks.WithMinProminence(o.minProminence),
			peaks.WithLogger(logger),
		)
	case "zscore":
		zs := peaks.DefaultZScoreConfig()
		zs.Lag = o.lag
		zs.Threshold = o.threshold
		zs.Influence = o.influence
		zs.Base = peaks.BaseMethod(o.base)
		zs.Thresholds = peaks.Thresholds{MinArea: o.minArea, MinHeight: o.minHeight, MinWidth: o.minPeakWidth}
		return peaks.FindPeaksZScore(trace, zs)
	default:
		return nil, fmt.Errorf("unknown method %q, valid values are 'cwt', 'zscore'", o.method)
	}
}

func printTable(w io.Writer, found []peaks.Peak) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Top\tLeft\tRight\tWidth\tHeight\tArea\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---\t----\t-----\t-----\t------\t----\n"); err != nil {
		return err
	}
	for _, p := range found {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.4g\t%.4g\n",
			p.Top, p.Left, p.Right, p.Width, p.Height, p.Area,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
