package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tabula/internal/chart"
)

// Plot draws one series as an ASCII line chart. The x range goes into the
// caption; asciigraph spaces samples uniformly.
func Plot(s chart.Series, width, height int) string {
	if len(s.Y) == 0 {
		return ""
	}
	return asciigraph.Plot(s.Y,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(3),
		asciigraph.Caption(caption(s.Label, s.X)),
	)
}

// PlotMany draws several series on shared axes, followed by a legend in
// series order.
func PlotMany(series []chart.Series, width, height int, title string) string {
	data := make([][]float64, 0, len(series))
	for _, s := range series {
		if len(s.Y) > 0 {
			data = append(data, s.Y)
		}
	}
	if len(data) == 0 {
		return ""
	}

	var x []float64
	if len(series) > 0 {
		x = series[0].X
	}
	graph := asciigraph.PlotMany(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(3),
		asciigraph.Caption(caption(title, x)),
	)

	labels := make([]string, len(series))
	for i, s := range series {
		labels[i] = s.Label
	}
	return graph + "\n" + strings.Join(labels, "  ")
}

func caption(label string, x []float64) string {
	if len(x) == 0 {
		return label
	}
	span := fmt.Sprintf("x: %g .. %g", x[0], x[len(x)-1])
	if label == "" {
		return span
	}
	return label + "  " + span
}

// Braille draws series as a compact Braille line chart of width by height
// characters, scaled to the joint bounds of all series.
func Braille(series []chart.Series, width, height int) string {
	c := NewCanvas(width, height)
	if xmin, xmax, ymin, ymax, ok := bounds(series); ok {
		c.SetViewport(xmin, xmax, ymin, ymax)
		for _, s := range series {
			c.Polyline(s.X, s.Y)
		}
	}
	return c.String()
}

func bounds(series []chart.Series) (xmin, xmax, ymin, ymax float64, ok bool) {
	for _, s := range series {
		for i := range s.X {
			if !ok {
				xmin, xmax, ymin, ymax = s.X[i], s.X[i], s.Y[i], s.Y[i]
				ok = true
				continue
			}
			xmin = min(xmin, s.X[i])
			xmax = max(xmax, s.X[i])
			ymin = min(ymin, s.Y[i])
			ymax = max(ymax, s.Y[i])
		}
	}
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}
	return
}
