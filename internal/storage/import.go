package storage

import (
	"fmt"

	"github.com/phil-mansfield/table"
	"github.com/sgostarter/i/l"

	"github.com/san-kum/tabula/internal/config"
)

// Import reads a whitespace-separated column file and saves it as a 1D
// table. cols names the axis column and the value column, in that order;
// nil means the first two columns.
func (s *Store) Import(name, path string, cols []int) (*config.Table, error) {
	if cols == nil {
		cols = []int{0, 1}
	}
	if len(cols) != 2 {
		return nil, fmt.Errorf("storage: import needs 2 columns, have %d", len(cols))
	}

	data, err := table.ReadTable(path, cols, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}

	t := &config.Table{
		Name:        name,
		Description: fmt.Sprintf("imported from %s", path),
		Axes:        []config.AxisSpec{{Name: "x", Values: data[0]}},
		Values:      data[1],
	}
	if err := s.Save(t); err != nil {
		return nil, err
	}

	s.logger.WithFields(l.StringField("table", name), l.StringField("file", path),
		l.IntField("points", len(data[0]))).Info("table imported")
	return t, nil
}
