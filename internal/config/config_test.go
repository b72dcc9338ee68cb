package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/tabula/internal/grid"
)

func sampleTable() *Table {
	return &Table{
		Name: "sample",
		Axes: []AxisSpec{
			{Name: "mach", Values: []float64{0, 1}},
			{Name: "alpha", Values: []float64{0, 1, 2}},
		},
		Values: []float64{0, 1, 2, 1, 2, 3},
	}
}

func TestTable_Build(t *testing.T) {
	m, err := sampleTable().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if m.Rank() != 2 {
		t.Errorf("Rank() = %d, want 2", m.Rank())
	}
	if got := m.MustEval(1, 0.5); got != 1.5 {
		t.Errorf("MustEval(1, 0.5) = %v, want 1.5", got)
	}
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Table)
		want   error
	}{
		{"no name", func(t *Table) { t.Name = "" }, ErrNoName},
		{"no axes", func(t *Table) { t.Axes = nil }, ErrNoAxes},
		{"bad leaf", func(t *Table) { t.Leaf = "quintic" }, ErrUnknownLeaf},
		{"short axis", func(t *Table) { t.Axes[0].Values = []float64{0} }, grid.ErrAxisTooShort},
		{"unsorted axis", func(t *Table) { t.Axes[1].Values = []float64{0, 2, 1} }, grid.ErrNonMonotonicAxis},
		{"value count", func(t *Table) { t.Values = t.Values[:5] }, ErrValueCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := sampleTable()
			tt.mutate(tbl)
			if err := tbl.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	want := sampleTable()
	want.Description = "test table"

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != want.Name || got.Description != want.Description {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
	if len(got.Values) != len(want.Values) {
		t.Errorf("len(Values) = %d, want %d", len(got.Values), len(want.Values))
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("name: broken\naxes:\n  - name: x\n    values: [0, 1]\nvalues: [1]\n"))
	if !errors.Is(err, ErrValueCount) {
		t.Errorf("Parse() error = %v, want %v", err, ErrValueCount)
	}
}

func TestTable_RowsPages(t *testing.T) {
	rows, err := sampleTable().Rows()
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	if rows[1][2] != 3 {
		t.Errorf("Rows()[1][2] = %v, want 3", rows[1][2])
	}

	p := GetPreset("thrust-lapse")
	pages, err := p.Pages()
	if err != nil {
		t.Fatalf("Pages() error = %v", err)
	}
	if got, want := pages[1][2][0], p.Values[1*4*3+2*3]; got != want {
		t.Errorf("Pages()[1][2][0] = %v, want %v", got, want)
	}

	if _, _, err := sampleTable().Series(); err == nil {
		t.Error("Series() on a 2D table should fail")
	}
}

func TestGetPreset(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			p := GetPreset(name)
			if p == nil {
				t.Fatal("expected preset, got nil")
			}
			if _, err := p.Build(); err != nil {
				t.Errorf("Build() error = %v", err)
			}
		})
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPreset_Fresh(t *testing.T) {
	a := GetPreset("atmosphere")
	a.Values[0] = -1
	if b := GetPreset("atmosphere"); b.Values[0] != 1 {
		t.Errorf("preset shared state: Values[0] = %v, want 1", b.Values[0])
	}
}

func TestListPresets(t *testing.T) {
	want := []string{"atmosphere", "drag-polar", "sfc", "thrust-lapse"}
	got := ListPresets()
	if len(got) != len(want) {
		t.Fatalf("ListPresets() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListPresets()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if s.Quadrature.Method != "trapezoid" {
		t.Errorf("Quadrature.Method = %s, want trapezoid", s.Quadrature.Method)
	}
}

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings("[quadrature]\nmethod = rk45\nreltol = 1e-6\n\n[plot]\nwidth = 40\n")
	if err != nil {
		t.Fatalf("ParseSettings() error = %v", err)
	}
	if s.Quadrature.Method != "rk45" {
		t.Errorf("Quadrature.Method = %s, want rk45", s.Quadrature.Method)
	}
	if s.Quadrature.RelTol != 1e-6 {
		t.Errorf("Quadrature.RelTol = %v, want 1e-6", s.Quadrature.RelTol)
	}
	if s.Plot.Width != 40 {
		t.Errorf("Plot.Width = %d, want 40", s.Plot.Width)
	}
	if s.Plot.Height != DefaultSettings().Plot.Height {
		t.Errorf("Plot.Height = %d, want default", s.Plot.Height)
	}
	if s.Roots.Options().MaxEval != DefaultSettings().Roots.MaxEval {
		t.Error("Roots.Options() lost MaxEval")
	}
}

func TestParseSettings_Invalid(t *testing.T) {
	_, err := ParseSettings("[quadrature]\nmethod = midpoint\n")
	if !errors.Is(err, ErrBadSettings) {
		t.Errorf("ParseSettings() error = %v, want %v", err, ErrBadSettings)
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabula.ini")
	if err := os.WriteFile(path, []byte("[roots]\nmaxeval = 40\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Roots.MaxEval != 40 {
		t.Errorf("Roots.MaxEval = %d, want 40", s.Roots.MaxEval)
	}
}
