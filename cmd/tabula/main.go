package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir      string
	settingsFile string
	verbose      bool

	// eval
	direct bool
	// integrate, root
	from   float64
	to     float64
	method string
	target float64
	// intersect
	refine bool
	// intersect, sweep, plot and export each keep their own sample count
	intersectSamples int
	sweepSamples     int
	curveSamples     int
	// plot, export
	fixed   []float64
	braille bool
	outFile string
	// import
	columns []int
)

// main registers the tabula commands and exits with status 1 when a command
// fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "tabula",
		Short:         "structured table lookup and interpolation",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tabula", "table directory")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (ini)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to the console")

	evalCmd := &cobra.Command{
		Use:   "eval [table] [x...]",
		Short: "evaluate a table at one point",
		Args:  cobra.MinimumNArgs(2),
		RunE:  evalTable,
	}
	evalCmd.Flags().BoolVar(&direct, "direct", false, "use the direct lookup instead of a built interpolator (rank 1 to 3)")

	integrateCmd := &cobra.Command{
		Use:   "integrate [table]",
		Short: "integrate a 1D table",
		Args:  cobra.ExactArgs(1),
		RunE:  integrateTable,
	}
	integrateCmd.Flags().Float64Var(&from, "from", 0, "lower bound (default axis minimum)")
	integrateCmd.Flags().Float64Var(&to, "to", 0, "upper bound (default axis maximum)")
	integrateCmd.Flags().StringVar(&method, "method", "", "trapezoid, simpson, gauss-legendre or rk45")

	intersectCmd := &cobra.Command{
		Use:   "intersect [table] [table]",
		Short: "find where two 1D tables cross",
		Args:  cobra.ExactArgs(2),
		RunE:  intersectTables,
	}
	intersectCmd.Flags().IntVar(&intersectSamples, "samples", 200, "points on the shared axis")
	intersectCmd.Flags().BoolVar(&refine, "refine", false, "refine each crossing with Brent's method")

	rootsCmd := &cobra.Command{
		Use:   "root [table]",
		Short: "find where a 1D table reaches a target value",
		Args:  cobra.ExactArgs(1),
		RunE:  findRoots,
	}
	rootsCmd.Flags().Float64Var(&target, "target", 0, "target value")
	rootsCmd.Flags().Float64Var(&from, "from", 0, "lower bound (default axis minimum)")
	rootsCmd.Flags().Float64Var(&to, "to", 0, "upper bound (default axis maximum)")

	plotCmd := &cobra.Command{
		Use:   "plot [table]",
		Short: "plot a curve or a curve family",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTable,
	}
	plotCmd.Flags().Float64SliceVar(&fixed, "fix", nil, "coordinates of the outer axes for rank 3 and above")
	plotCmd.Flags().IntVar(&curveSamples, "samples", 0, "points per curve (default from settings)")
	plotCmd.Flags().BoolVar(&braille, "braille", false, "compact braille rendering")

	sweepCmd := &cobra.Command{
		Use:   "sweep [table]",
		Short: "find the extrema of a table on a uniform grid",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepTable,
	}
	sweepCmd.Flags().IntVar(&sweepSamples, "samples", 21, "points per axis")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list tables",
		RunE:  listTables,
	}

	showCmd := &cobra.Command{
		Use:   "show [table]",
		Short: "describe a table",
		Args:  cobra.ExactArgs(1),
		RunE:  showTable,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [table]",
		Short: "delete a table",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteTable,
	}

	importCmd := &cobra.Command{
		Use:   "import [name] [file]",
		Short: "import a 1D table from a whitespace column file",
		Args:  cobra.ExactArgs(2),
		RunE:  importTable,
	}
	importCmd.Flags().IntSliceVar(&columns, "cols", []int{0, 1}, "axis and value column indices")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [table]",
		Short: "export sampled curves to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportJSONCmd := &cobra.Command{
		Use:   "export-json [table]",
		Short: "export sampled curves to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	for _, c := range []*cobra.Command{exportCSVCmd, exportJSONCmd} {
		c.Flags().Float64SliceVar(&fixed, "fix", nil, "coordinates of the outer axes for rank 3 and above")
		c.Flags().IntVar(&curveSamples, "samples", 0, "points per curve (default from settings)")
		c.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in tables",
		RunE:  listPresets,
	}

	installCmd := &cobra.Command{
		Use:   "install-preset [name]",
		Short: "save a built-in table to the table directory",
		Args:  cobra.ExactArgs(1),
		RunE:  installPreset,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [table]",
		Short: "probe a table interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  exploreTable,
	}

	rootCmd.AddCommand(evalCmd, integrateCmd, intersectCmd, rootsCmd, plotCmd, sweepCmd,
		listCmd, showCmd, deleteCmd, importCmd, exportCSVCmd, exportJSONCmd,
		presetsCmd, installCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
