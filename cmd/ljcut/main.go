package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/ljlab/ljcut/internal/analysis"
	"github.com/ljlab/ljcut/internal/config"
	"github.com/ljlab/ljcut/internal/cutoff"
	"github.com/ljlab/ljcut/internal/export"
	"github.com/ljlab/ljcut/internal/potential"
	"github.com/ljlab/ljcut/internal/viz"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	epsilon    float64
	sigma      float64
	configFile string
	preset     string
	noColor    bool
	chartWidth int
	// curve command
	rMin     float64
	rMax     float64
	samples  int
	tailView bool
	// analyze / scaling targets
	suggestPct float64
	targetPct  float64
	// table command
	wide bool
	// export command
	format   string
	outPath  string
	scanView bool
)

// main is the entry point for the ljcut CLI; it registers commands and flags and
// runs the full analysis when no subcommand is provided.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ljcut",
		Short: "lennard-jones cutoff analysis",
		RunE:  runAnalyze,
	}

	rootCmd.PersistentFlags().Float64Var(&epsilon, "epsilon", potential.DefaultEpsilon, "well depth ε")
	rootCmd.PersistentFlags().Float64Var(&sigma, "sigma", potential.DefaultSigma, "zero-crossing distance σ")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().IntVar(&chartWidth, "width", 0, "chart width (0 = fit terminal)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "full cutoff comparison report",
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().Float64Var(&suggestPct, "suggest", 0, "also suggest the smallest cutoff with tail below this % of ε")

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot the potential curve",
		RunE:  runCurve,
	}
	curveCmd.Flags().Float64Var(&rMin, "rmin", config.DefaultCurveMin, "lower distance bound (units of σ)")
	curveCmd.Flags().Float64Var(&rMax, "rmax", config.DefaultCurveMax, "upper distance bound (units of σ)")
	curveCmd.Flags().IntVar(&samples, "samples", config.DefaultCurveSamples, "sample count")
	curveCmd.Flags().BoolVar(&tailView, "tail", false, "zoom on the tail region")

	scalingCmd := &cobra.Command{
		Use:   "scaling",
		Short: "tail magnitude and cost across cutoff radii",
		RunE:  runScaling,
	}
	scalingCmd.Flags().Float64Var(&targetPct, "target", 0, "report the smallest cutoff with tail below this % of ε")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "comparison table only",
		RunE:  runTable,
	}
	tableCmd.Flags().BoolVar(&wide, "wide", false, "include neighbor and cost columns")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write analysis data to a file",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&format, "format", "svg", "output format (svg, csv, json)")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")
	exportCmd.Flags().BoolVar(&scanView, "scan", false, "export the cutoff sweep instead of the curve")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(analyzeCmd, curveCmd, scalingCmd, tableCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file and CLI flags, in that
// order of precedence (lowest first).
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Sigma = sigma
	}
	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	lj := cfg.Potential()
	rows := cfg.Comparator().Compare()
	w := plotWidth()

	fmt.Printf("lennard-jones cutoff analysis (ε=%g, σ=%g)\n\n", cfg.Epsilon, cfg.Sigma)

	curve := lj.Sample(cfg.Curve.Min, cfg.Curve.Max, cfg.Curve.Samples)
	fmt.Print(viz.Chart(curve, rows, w, 14, viz.CurveViewYMin, viz.CurveViewYMax))
	fmt.Println(caption(fmt.Sprintf("potential with cutoff markers, r ∈ [%.1fσ, %.1fσ]", cfg.Curve.Min, cfg.Curve.Max)))
	fmt.Println()

	tail := lj.Sample(cfg.Tail.Min, cfg.Tail.Max, cfg.Tail.Samples)
	fmt.Println(plot(tail.V, w, "tail region (zoomed)", viz.TailViewYMin, viz.TailViewYMax))
	fmt.Println()

	fmt.Println(viz.RenderReport(cutoff.Report(rows), !noColor))

	if suggestPct > 0 {
		rc, err := analysis.MinimalCutoff(lj, suggestPct, cfg.Scan.Min, cfg.Scan.Max)
		if err != nil {
			return err
		}
		fmt.Printf("\nsmallest cutoff with tail under %.2f%% of ε: %.3fσ\n", suggestPct, rc)
	}
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lj := cfg.Potential()

	rng := cfg.Curve
	lo, hi := viz.CurveViewYMin, viz.CurveViewYMax
	label := "lennard-jones potential"
	if tailView {
		rng = cfg.Tail
		lo, hi = viz.TailViewYMin, viz.TailViewYMax
		label = "tail region (zoomed)"
	}
	if cmd.Flags().Changed("rmin") {
		rng.Min = rMin
	}
	if cmd.Flags().Changed("rmax") {
		rng.Max = rMax
	}
	if cmd.Flags().Changed("samples") {
		rng.Samples = samples
	}

	curve := lj.Sample(rng.Min, rng.Max, rng.Samples)
	fmt.Println(plot(curve.V, plotWidth(), label, lo, hi))
	return nil
}

func runScaling(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lj := cfg.Potential()

	scan := analysis.ScanCutoffs(lj, cfg.Scan.Min, cfg.Scan.Max, cfg.Scan.Samples, cfg.ScanReference)
	w := plotWidth()

	fmt.Printf("cutoff scaling, rc ∈ [%.1fσ, %.1fσ]\n\n", cfg.Scan.Min, cfg.Scan.Max)

	graph := asciigraph.Plot(viz.LogSeries(scan.Magnitudes(), -6),
		asciigraph.Height(12),
		asciigraph.Width(w),
		asciigraph.Caption("log10 |V| at cutoff"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(scan.Costs(),
		asciigraph.Height(12),
		asciigraph.Width(w),
		asciigraph.Caption(fmt.Sprintf("cost relative to %.1fσ", scan.Reference)),
	)
	fmt.Println(graph)
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CUTOFF\t|V|\tTAIL %\tCOST")
	for _, spec := range cfg.Specs() {
		fmt.Fprintf(tw, "%s\t%.6f\t%.3f\t%.2fx\n",
			spec.Label,
			math.Abs(lj.At(spec.Distance)),
			lj.TailPercent(spec.Distance),
			cutoff.RelativeCost(spec.Distance, cfg.ScanReference),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if targetPct > 0 {
		rc, err := analysis.MinimalCutoff(lj, targetPct, cfg.Scan.Min, cfg.Scan.Max)
		if err != nil {
			return err
		}
		fmt.Printf("\nsmallest cutoff with tail under %.2f%% of ε: %.3fσ\n", targetPct, rc)
	}
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rows := cfg.Comparator().Compare()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if wide {
		fmt.Fprintln(tw, "CUTOFF\tPOTENTIAL\t% OF ε\tSIGNIFICANCE\tNEIGHBORS\tCOST")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%.6f\t%.3f\t%s\t~%.0f\t%.2fx\n",
				row.Spec.Label, row.Potential, row.Percent, row.Tier, row.Neighbors, row.Cost)
		}
	} else {
		fmt.Fprintln(tw, "CUTOFF\tPOTENTIAL\t% OF ε\tSIGNIFICANCE")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%.6f\t%.3f\t%s\n",
				row.Spec.Label, row.Potential, row.Percent, row.Tier)
		}
	}
	return tw.Flush()
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lj := cfg.Potential()

	get := export.Get
	if scanView {
		get = export.GetScan
	}
	write, err := get(format)
	if err != nil {
		return err
	}

	payload := export.Payload{
		LJ:    lj,
		Curve: lj.Sample(cfg.Curve.Min, cfg.Curve.Max, cfg.Curve.Samples),
		Rows:  cfg.Comparator().Compare(),
		Scan:  analysis.ScanCutoffs(lj, cfg.Scan.Min, cfg.Scan.Max, cfg.Scan.Samples, cfg.ScanReference),
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return write(out, payload)
}

// plot clips a series to the viewport and renders it as a line chart.
func plot(values []float64, width int, label string, lo, hi float64) string {
	return asciigraph.Plot(viz.ClampSeries(values, lo, hi),
		asciigraph.Height(12),
		asciigraph.Width(width),
		asciigraph.Caption(label),
	)
}

func caption(s string) string {
	if noColor {
		return s
	}
	return viz.CaptionStyle.Render(s)
}

const (
	defaultChartWidth = 80
	minChartWidth     = 40
	maxChartWidth     = 120
)

// plotWidth picks a chart width from the flag, falling back to the terminal
// width with room for the y-axis labels.
func plotWidth() int {
	if chartWidth > 0 {
		return chartWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultChartWidth
	}
	w -= 10
	if w < minChartWidth {
		return minChartWidth
	}
	if w > maxChartWidth {
		return maxChartWidth
	}
	return w
}
