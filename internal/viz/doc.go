// Package viz renders tables and sampled curves in the terminal.
//
//   - [Plot] and [PlotMany]: line charts of chart.Series via asciigraph
//   - [Canvas]: Braille-based pixel canvas, used by [Braille] for compact
//     curve previews
//   - [SparklineChart]: one-line sparkline of a value slice
//   - [Theme] and [Styles]: lipgloss color schemes for the CLI and the probe
package viz
