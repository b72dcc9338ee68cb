package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tabula/internal/grid"
)

// AxisSpec is one named axis of a table file.
type AxisSpec struct {
	Name   string    `yaml:"name"`
	Unit   string    `yaml:"unit,omitempty"`
	Values []float64 `yaml:"values,flow"`
}

// Table is the on-disk form of a structured table. Values are stored flat in
// row-major order: the last axis varies fastest.
type Table struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Output      string     `yaml:"output,omitempty"`
	Leaf        string     `yaml:"leaf,omitempty"`
	Axes        []AxisSpec `yaml:"axes"`
	Values      []float64  `yaml:"values,flow"`
}

func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Table, error) {
	t := &Table{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func Save(path string, t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (t *Table) Rank() int { return len(t.Axes) }

// Shape returns the number of points on each axis.
func (t *Table) Shape() []int {
	shape := make([]int, len(t.Axes))
	for i, a := range t.Axes {
		shape[i] = len(a.Values)
	}
	return shape
}

// AxisValues returns the coordinate slices of every axis, outermost first.
func (t *Table) AxisValues() [][]float64 {
	axes := make([][]float64, len(t.Axes))
	for i, a := range t.Axes {
		axes[i] = a.Values
	}
	return axes
}

func (t *Table) AxisNames() []string {
	names := make([]string, len(t.Axes))
	for i, a := range t.Axes {
		names[i] = a.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("x%d", i)
		}
	}
	return names
}

// Validate checks the table can be built. Axis problems are reported before
// a value count mismatch.
func (t *Table) Validate() error {
	if t.Name == "" {
		return ErrNoName
	}
	if len(t.Axes) == 0 {
		return fmt.Errorf("table %q: %w", t.Name, ErrNoAxes)
	}
	if _, ok := grid.ParseLeafKind(t.Leaf); !ok {
		return fmt.Errorf("table %q: %w: %s", t.Name, ErrUnknownLeaf, t.Leaf)
	}

	size := 1
	for i, a := range t.Axes {
		if _, err := grid.NewAxis(a.Values); err != nil {
			return fmt.Errorf("table %q: axis %d (%s): %w", t.Name, i, a.Name, err)
		}
		size *= len(a.Values)
	}
	if size != len(t.Values) {
		return fmt.Errorf("table %q: %w: have %d, want %d", t.Name, ErrValueCount, len(t.Values), size)
	}
	return nil
}

// Build validates the table and constructs its interpolator.
func (t *Table) Build() (*grid.Multilinear, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	leaf, _ := grid.ParseLeafKind(t.Leaf)
	g, err := grid.NewGrid(t.Shape(), t.Values)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", t.Name, err)
	}
	m, err := grid.NewMultilinear(t.AxisValues(), g, grid.WithLeaf(leaf))
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", t.Name, err)
	}
	return m, nil
}

// Series returns the axis and values of a one-dimensional table.
func (t *Table) Series() ([]float64, []float64, error) {
	if len(t.Axes) != 1 {
		return nil, nil, fmt.Errorf("table %q: rank %d, want 1", t.Name, len(t.Axes))
	}
	return t.Axes[0].Values, t.Values, nil
}

// Rows returns the values of a two-dimensional table as data[row][col].
func (t *Table) Rows() ([][]float64, error) {
	if len(t.Axes) != 2 {
		return nil, fmt.Errorf("table %q: rank %d, want 2", t.Name, len(t.Axes))
	}
	cols := len(t.Axes[1].Values)
	rows := make([][]float64, len(t.Axes[0].Values))
	for r := range rows {
		rows[r] = t.Values[r*cols : (r+1)*cols]
	}
	return rows, nil
}

// Pages returns the values of a three-dimensional table as
// data[page][row][col].
func (t *Table) Pages() ([][][]float64, error) {
	if len(t.Axes) != 3 {
		return nil, fmt.Errorf("table %q: rank %d, want 3", t.Name, len(t.Axes))
	}
	rows, cols := len(t.Axes[1].Values), len(t.Axes[2].Values)
	pages := make([][][]float64, len(t.Axes[0].Values))
	for p := range pages {
		pages[p] = make([][]float64, rows)
		for r := range pages[p] {
			off := (p*rows + r) * cols
			pages[p][r] = t.Values[off : off+cols]
		}
	}
	return pages, nil
}
