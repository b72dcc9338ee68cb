package quad

import (
	"fmt"
	"sort"

	"github.com/san-kum/tabula/internal/grid"
)

// Method names an integration rule.
type Method string

const (
	Trapezoid     Method = "trapezoid"
	Simpson       Method = "simpson"
	GaussLegendre Method = "gauss-legendre"
	RK45          Method = "rk45"
)

// Options tunes the integrators. Zero fields take their DefaultOptions value.
type Options struct {
	// RelTol is the RK45 local error tolerance, and the agreement Simpson
	// and Gauss-Legendre require between two successive refinements.
	RelTol float64
	// MaxIter caps the number of RK45 steps over the whole range, and the
	// number of refinements per segment for Simpson and Gauss-Legendre.
	MaxIter int
	// Nodes is the initial Gauss-Legendre node count per segment.
	Nodes int
	// Panels is the initial Simpson panel count per segment.
	Panels int
}

func DefaultOptions() Options {
	return Options{
		RelTol:  1e-8,
		MaxIter: 10000,
		Nodes:   5,
		Panels:  16,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.RelTol <= 0 {
		o.RelTol = d.RelTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = d.MaxIter
	}
	if o.Nodes <= 0 {
		o.Nodes = d.Nodes
	}
	if o.Panels <= 0 {
		o.Panels = d.Panels
	}
	return o
}

// Integrator integrates f over [lo, hi]. breaks lists abscissae where f may
// lose smoothness; the integrator treats each span between them separately.
type Integrator interface {
	Integrate(f func(float64) float64, lo, hi float64, breaks []float64, opts Options) (float64, error)
	// Leaf is the interpolant kind the integrator expects for tables.
	Leaf() grid.LeafKind
}

// Registry maps method names to integrator constructors.
type Registry struct {
	integrators map[Method]func() Integrator
}

func NewRegistry() *Registry {
	r := &Registry{integrators: make(map[Method]func() Integrator)}

	r.integrators[Trapezoid] = func() Integrator { return trapezoid{} }
	r.integrators[Simpson] = func() Integrator { return simpson{} }
	r.integrators[GaussLegendre] = func() Integrator { return gaussLegendre{} }
	r.integrators[RK45] = func() Integrator { return newRK45() }

	return r
}

func (r *Registry) Get(m Method) (Integrator, error) {
	fn, ok := r.integrators[m]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.integrators))
	for m := range r.integrators {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}

// Integrate integrates the interpolant of the table (xs, ys) from a to b
// with method m. Outside the table the interpolant is clamped to the end
// values.
func Integrate(m Method, xs, ys []float64, a, b float64, opts Options) (float64, error) {
	in, err := NewRegistry().Get(m)
	if err != nil {
		return 0, err
	}
	if len(xs) != len(ys) {
		return 0, ErrLengthMismatch
	}
	if len(xs) < 2 {
		return 0, ErrTooFewPoints
	}
	if !grid.IsAscending(xs) {
		return 0, nil
	}

	f := func(x float64) float64 { return grid.Lookup(xs, ys, x) }
	if in.Leaf() != grid.LeafLinear {
		a1, err := grid.NewAxis1D(xs, ys)
		if err != nil {
			return 0, err
		}
		f = a1.Value
	}
	return integrateRange(in, f, a, b, xs, opts)
}

// Func integrates an arbitrary function from a to b with method m. breaks
// may be nil.
func Func(m Method, f func(float64) float64, a, b float64, breaks []float64, opts Options) (float64, error) {
	in, err := NewRegistry().Get(m)
	if err != nil {
		return 0, err
	}
	return integrateRange(in, f, a, b, breaks, opts)
}

func integrateRange(in Integrator, f func(float64) float64, a, b float64, breaks []float64, opts Options) (float64, error) {
	if a == b {
		return 0, nil
	}
	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}
	v, err := in.Integrate(f, a, b, breaks, opts.withDefaults())
	return sign * v, err
}

// segments returns lo, every break strictly inside (lo, hi) in order, and hi.
func segments(lo, hi float64, breaks []float64) []float64 {
	pts := []float64{lo}
	for _, x := range breaks {
		if x > pts[len(pts)-1] && x < hi {
			pts = append(pts, x)
		}
	}
	return append(pts, hi)
}
