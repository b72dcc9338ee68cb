package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/san-kum/tabula/internal/chart"
	"github.com/san-kum/tabula/internal/config"
	"github.com/san-kum/tabula/internal/curves"
	"github.com/san-kum/tabula/internal/explore"
	"github.com/san-kum/tabula/internal/export"
	"github.com/san-kum/tabula/internal/grid"
	"github.com/san-kum/tabula/internal/quad"
	"github.com/san-kum/tabula/internal/roots"
	"github.com/san-kum/tabula/internal/storage"
	"github.com/san-kum/tabula/internal/viz"
)

var styles = viz.NewStyles(viz.ThemeMinimal)

func newLogger() l.Wrapper {
	if verbose {
		return l.NewConsoleLoggerWrapper()
	}
	return l.NewNopLoggerWrapper()
}

func openStore() (*storage.Store, error) {
	st := storage.New(dataDir, 0, newLogger())
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func loadSettings() (*config.Settings, error) {
	if settingsFile == "" {
		return config.DefaultSettings(), nil
	}
	s, err := config.LoadSettings(settingsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return s, nil
}

func parseCoords(args []string) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, a := range args {
		v, err := cast.ToFloat64E(a)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		xs[i] = v
	}
	return xs, nil
}

// bounds resolves --from and --to against the axis range.
func bounds(cmd *cobra.Command, xs []float64) (float64, float64) {
	lo, hi := xs[0], xs[len(xs)-1]
	if cmd.Flags().Changed("from") {
		lo = from
	}
	if cmd.Flags().Changed("to") {
		hi = to
	}
	return lo, hi
}

func evalTable(cmd *cobra.Command, args []string) error {
	xs, err := parseCoords(args[1:])
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}

	var v float64
	if direct {
		t, err := st.Load(args[0])
		if err != nil {
			return err
		}
		v, err = directLookup(t, xs)
		if err != nil {
			return err
		}
	} else {
		m, err := st.Interpolator(args[0])
		if err != nil {
			return err
		}
		v, err = m.Eval(xs...)
		if err != nil {
			return fmt.Errorf("table %s has rank %d: %w", args[0], m.Rank(), err)
		}
	}

	fmt.Printf("%.10g\n", v)
	return nil
}

func directLookup(t *config.Table, xs []float64) (float64, error) {
	if len(xs) != t.Rank() {
		return 0, fmt.Errorf("table %s has rank %d: %w", t.Name, t.Rank(), grid.ErrArity)
	}
	axes := t.AxisValues()
	switch t.Rank() {
	case 1:
		return grid.Lookup(axes[0], t.Values, xs[0]), nil
	case 2:
		rows, err := t.Rows()
		if err != nil {
			return 0, err
		}
		return grid.Interpolate2DLinear(axes[0], axes[1], rows, xs[0], xs[1])
	case 3:
		pages, err := t.Pages()
		if err != nil {
			return 0, err
		}
		return grid.Interpolate3DLinear(axes[0], axes[1], axes[2], pages, xs[0], xs[1], xs[2])
	}
	return 0, fmt.Errorf("direct lookup supports rank 1 to 3, table %s has rank %d", t.Name, t.Rank())
}

func loadSeries(st *storage.Store, name string) ([]float64, []float64, error) {
	t, err := st.Load(name)
	if err != nil {
		return nil, nil, err
	}
	return t.Series()
}

func integrateTable(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("method") {
		method = settings.Quadrature.Method
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	xs, ys, err := loadSeries(st, args[0])
	if err != nil {
		return err
	}

	a, b := bounds(cmd, xs)
	v, err := quad.Integrate(quad.Method(method), xs, ys, a, b, settings.Quadrature.Options())
	if err != nil {
		return err
	}

	fmt.Printf("%s %s over [%g, %g] = %.10g\n", method, args[0], a, b, v)
	return nil
}

func intersectTables(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}

	var fs [2]*grid.Multilinear
	lo, hi := math.Inf(-1), math.Inf(1)
	for i, name := range args {
		m, err := st.Interpolator(name)
		if err != nil {
			return err
		}
		if m.Rank() != 1 {
			return fmt.Errorf("table %s has rank %d, want 1", name, m.Rank())
		}
		mlo, mhi := m.Bounds()
		lo, hi = math.Max(lo, mlo[0]), math.Min(hi, mhi[0])
		fs[i] = m
	}
	if !(lo < hi) {
		return fmt.Errorf("tables %s and %s share no axis range", args[0], args[1])
	}

	s1, err := chart.Sample(args[0], func(x float64) float64 { return fs[0].MustEval(x) }, lo, hi, intersectSamples)
	if err != nil {
		return err
	}
	s2, err := chart.Sample(args[1], func(x float64) float64 { return fs[1].MustEval(x) }, lo, hi, intersectSamples)
	if err != nil {
		return err
	}

	var pts []curves.Point
	if refine {
		pts, err = curves.Refine(s1.X, s1.Y, s2.Y, settings.Roots.Options())
	} else {
		pts, err = curves.Intersections(s1.X, s1.Y, s2.Y)
	}
	if err != nil {
		return err
	}

	if len(pts) == 0 {
		fmt.Println("no intersections")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X\tY")
	for _, p := range pts {
		fmt.Fprintf(w, "%.10g\t%.10g\n", p.X, p.Y)
	}
	return w.Flush()
}

func findRoots(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	m, err := st.Interpolator(args[0])
	if err != nil {
		return err
	}
	if m.Rank() != 1 {
		return fmt.Errorf("table %s has rank %d, want 1", args[0], m.Rank())
	}

	axis := m.Axes()[0]
	a, b := bounds(cmd, axis)
	f := roots.Level(func(x float64) float64 { return m.MustEval(x) }, target)
	xs, err := roots.FindAll(f, a, b, settings.Roots.Samples, settings.Roots.Options())
	if err != nil {
		return err
	}

	if len(xs) == 0 {
		fmt.Printf("%s does not reach %g on [%g, %g]\n", args[0], target, a, b)
		return nil
	}
	for _, x := range xs {
		fmt.Printf("%.10g\n", x)
	}
	return nil
}

// curveSeries samples a 1D table as one curve, or a higher-rank table as a
// family over its two innermost axes with the outer axes at --fix.
func curveSeries(st *storage.Store, name string, n int) ([]chart.Series, *config.Table, error) {
	t, err := st.Load(name)
	if err != nil {
		return nil, nil, err
	}
	m, err := st.Interpolator(name)
	if err != nil {
		return nil, nil, err
	}

	if m.Rank() == 1 {
		s, err := chart.Slice(m, nil, 0, n)
		if err != nil {
			return nil, nil, err
		}
		s.Label = name
		return []chart.Series{s}, t, nil
	}

	fam, err := chart.Family(m, fixed, n)
	if err != nil {
		return nil, nil, err
	}
	family := t.AxisNames()[m.Rank()-2]
	for i := range fam {
		fam[i].Label = family + "=" + fam[i].Label
	}
	return fam, t, nil
}

func resolveSamples(settings *config.Settings) int {
	if curveSamples > 0 {
		return curveSamples
	}
	return settings.Plot.Samples
}

func plotTable(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	series, t, err := curveSeries(st, args[0], resolveSamples(settings))
	if err != nil {
		return err
	}

	fmt.Println(styles.Title.Render(t.Name))
	switch {
	case braille:
		fmt.Print(viz.Braille(series, settings.Plot.Width/2, settings.Plot.Height/2))
	case len(series) == 1:
		fmt.Println(viz.Plot(series[0], settings.Plot.Width, settings.Plot.Height))
	default:
		fmt.Println(viz.PlotMany(series, settings.Plot.Width, settings.Plot.Height, t.AxisNames()[t.Rank()-1]))
	}
	return nil
}

func sweepTable(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	m, err := st.Interpolator(args[0])
	if err != nil {
		return err
	}
	ext, err := chart.Sweep(m, sweepSamples)
	if err != nil {
		return err
	}

	fmt.Printf("evaluations: %d\n", ext.Evaluations)
	fmt.Printf("min: %.10g at %v\n", ext.Min, ext.ArgMin)
	fmt.Printf("max: %.10g at %v\n", ext.Max, ext.ArgMax)
	return nil
}

func listTables(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	tables, err := st.List()
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		fmt.Println("no tables found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRANK\tSHAPE\tAXES\tDESCRIPTION")
	for _, t := range tables {
		fmt.Fprintf(w, "%s\t%d\t%v\t%s\t%s\n",
			t.Name,
			t.Rank,
			t.Shape,
			strings.Join(t.Axes, ","),
			t.Description,
		)
	}
	return w.Flush()
}

func showTable(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	t, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Println(styles.Header.Render(t.Name))
	if t.Description != "" {
		fmt.Println(styles.Subtle.Render(t.Description))
	}
	fmt.Println()
	leaf, _ := grid.ParseLeafKind(t.Leaf)
	fmt.Println(styles.Label.Render("leaf") + styles.Value.Render(leaf.String()))
	if t.Output != "" {
		fmt.Println(styles.Label.Render("output") + styles.Value.Render(t.Output))
	}
	for i, a := range t.Axes {
		name := t.AxisNames()[i]
		if a.Unit != "" {
			name += " (" + a.Unit + ")"
		}
		fmt.Println(styles.Label.Render(name) + fmt.Sprintf("%d points  [%g, %g]", len(a.Values), a.Values[0], a.Values[len(a.Values)-1]))
	}
	if t.Rank() == 1 {
		fmt.Println("\n" + viz.SparklineChart(t.Values, 40))
	}
	return nil
}

func deleteTable(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func importTable(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	t, err := st.Import(args[0], args[1], columns)
	if err != nil {
		return err
	}
	fmt.Printf("imported %s: %d points\n", t.Name, len(t.Values))
	return nil
}

func exportTo(write func(io.Writer, []chart.Series) error, name string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	series, _, err := curveSeries(st, name, resolveSamples(settings))
	if err != nil {
		return err
	}

	if outFile == "" {
		return write(os.Stdout, series)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f, series); err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", name, outFile)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return exportTo(export.ExportCSV, args[0])
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return exportTo(export.ExportJSON, args[0])
}

func listPresets(cmd *cobra.Command, args []string) error {
	fmt.Println("available presets:")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Printf("  %-14s %dD  %s\n", name, p.Rank(), p.Description)
	}
	return nil
}

func installPreset(cmd *cobra.Command, args []string) error {
	p := config.GetPreset(args[0])
	if p == nil {
		return fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, args[0], config.ListPresets())
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Save(p); err != nil {
		return err
	}
	fmt.Printf("installed %s\n", p.Name)
	return nil
}

func exploreTable(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	t, err := st.Load(args[0])
	if err != nil {
		return err
	}
	m, err := st.Interpolator(args[0])
	if err != nil {
		return err
	}
	return explore.Run(t.Name, m, t.AxisNames())
}
