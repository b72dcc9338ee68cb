// Package export writes sampled table curves as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/tabula/internal/chart"
)

// ExportCSV writes series in long form with the header series,x,y.
func ExportCSV(w io.Writer, series []chart.Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"series", "x", "y"}); err != nil {
		return err
	}
	for _, s := range series {
		for i := range s.X {
			row := []string{
				s.Label,
				strconv.FormatFloat(s.X[i], 'g', -1, 64),
				strconv.FormatFloat(s.Y[i], 'g', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportJSON writes series as an indented JSON array.
func ExportJSON(w io.Writer, series []chart.Series) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(series)
}
