package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/san-kum/tabula/internal/quad"
	"github.com/san-kum/tabula/internal/roots"
)

// Settings holds tool-wide numeric settings, read from an INI-style file:
//
//	[quadrature]
//	method = simpson
//	reltol = 1e-9
//
//	[roots]
//	abstol = 1e-12
//
//	[plot]
//	width = 72
type Settings struct {
	Quadrature QuadratureSettings
	Roots      RootSettings
	Plot       PlotSettings
}

type QuadratureSettings struct {
	Method  string  `gcfg:"method"`
	RelTol  float64 `gcfg:"reltol"`
	MaxIter int     `gcfg:"maxiter"`
	Nodes   int     `gcfg:"nodes"`
	Panels  int     `gcfg:"panels"`
}

type RootSettings struct {
	AbsTol  float64 `gcfg:"abstol"`
	RelTol  float64 `gcfg:"reltol"`
	FTol    float64 `gcfg:"ftol"`
	MaxEval int     `gcfg:"maxeval"`
	// Samples is the number of points scanned for sign changes.
	Samples int `gcfg:"samples"`
}

type PlotSettings struct {
	Width   int `gcfg:"width"`
	Height  int `gcfg:"height"`
	Samples int `gcfg:"samples"`
}

func DefaultSettings() *Settings {
	q := quad.DefaultOptions()
	r := roots.DefaultOptions()
	return &Settings{
		Quadrature: QuadratureSettings{
			Method:  string(quad.Trapezoid),
			RelTol:  q.RelTol,
			MaxIter: q.MaxIter,
			Nodes:   q.Nodes,
			Panels:  q.Panels,
		},
		Roots: RootSettings{
			AbsTol:  r.AbsTol,
			RelTol:  r.RelTol,
			FTol:    r.FTol,
			MaxEval: r.MaxEval,
			Samples: 200,
		},
		Plot: PlotSettings{
			Width:   70,
			Height:  15,
			Samples: 100,
		},
	}
}

// LoadSettings reads path over the defaults. Keys absent from the file keep
// their default values.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if err := gcfg.ReadFileInto(s, path); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseSettings is LoadSettings for in-memory text.
func ParseSettings(text string) (*Settings, error) {
	s := DefaultSettings()
	if err := gcfg.ReadStringInto(s, text); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if _, err := quad.NewRegistry().Get(quad.Method(s.Quadrature.Method)); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSettings, err)
	}
	switch {
	case s.Quadrature.RelTol <= 0:
		return fmt.Errorf("%w: quadrature reltol must be positive", ErrBadSettings)
	case s.Quadrature.MaxIter <= 0:
		return fmt.Errorf("%w: quadrature maxiter must be positive", ErrBadSettings)
	case s.Roots.AbsTol < 0 || s.Roots.RelTol < 0 || s.Roots.FTol < 0:
		return fmt.Errorf("%w: root tolerances must not be negative", ErrBadSettings)
	case s.Roots.MaxEval <= 0:
		return fmt.Errorf("%w: roots maxeval must be positive", ErrBadSettings)
	case s.Roots.Samples < 2:
		return fmt.Errorf("%w: roots samples must be at least 2", ErrBadSettings)
	case s.Plot.Width <= 0 || s.Plot.Height <= 0:
		return fmt.Errorf("%w: plot size must be positive", ErrBadSettings)
	case s.Plot.Samples < 2:
		return fmt.Errorf("%w: plot samples must be at least 2", ErrBadSettings)
	}
	return nil
}

func (q QuadratureSettings) Options() quad.Options {
	return quad.Options{
		RelTol:  q.RelTol,
		MaxIter: q.MaxIter,
		Nodes:   q.Nodes,
		Panels:  q.Panels,
	}
}

func (r RootSettings) Options() roots.Options {
	return roots.Options{
		AbsTol:  r.AbsTol,
		RelTol:  r.RelTol,
		FTol:    r.FTol,
		MaxEval: r.MaxEval,
	}
}
