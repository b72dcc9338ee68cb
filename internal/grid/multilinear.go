package grid

import "math"

type options struct {
	leaf LeafKind
}

// Option configures interpolator construction.
type Option func(*options)

// WithLeaf selects the interpolant along the innermost axis. The default is
// LeafLinear, which makes the interpolator multilinear in every axis.
func WithLeaf(k LeafKind) Option {
	return func(o *options) { o.leaf = k }
}

// Multilinear is an n-dimensional interpolator over a structured grid. A
// rank-n interpolator over axes (a0, a1, ..., a(n-1)) holds len(a0)
// interpolators of rank n-1 over (a1, ..., a(n-1)) and blends them linearly
// along a0. Rank 1 is an Axis1D leaf.
type Multilinear struct {
	axis     Axis
	children []*Multilinear
	leaf     *Axis1D
}

// NewMultilinear builds an interpolator for g, whose extent along dimension
// d must equal len(axes[d]). All axes are validated before the shape, so a
// short or unsorted axis is reported ahead of a size mismatch.
func NewMultilinear(axes [][]float64, g *Grid, opts ...Option) (*Multilinear, error) {
	o := options{leaf: LeafLinear}
	for _, opt := range opts {
		opt(&o)
	}

	if axes == nil || g == nil {
		return nil, ErrNilInput
	}
	for d, ax := range axes {
		if err := checkAxis(ax); err != nil {
			return nil, wrapAt(d, nil, err)
		}
	}
	if len(axes) != g.Rank() {
		return nil, wrapAt(0, nil, ErrDimensionMismatch)
	}
	for d, ax := range axes {
		if len(ax) != g.shape[d] {
			return nil, wrapAt(d, nil, ErrDimensionMismatch)
		}
	}

	return build(axes, g, o.leaf, 0, nil)
}

func build(axes [][]float64, g *Grid, leaf LeafKind, depth int, index []int) (*Multilinear, error) {
	ax, err := NewAxis(axes[0])
	if err != nil {
		return nil, wrapAt(depth, index, err)
	}
	m := &Multilinear{axis: ax}

	if len(axes) == 1 {
		m.leaf, err = newAxis1D(axes[0], g.Line(), leaf)
		if err != nil {
			return nil, wrapAt(depth, index, err)
		}
		return m, nil
	}

	m.children = make([]*Multilinear, ax.Len())
	for i := range m.children {
		m.children[i], err = build(axes[1:], g.Sub(i), leaf, depth+1, append(index, i))
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Rank returns the number of axes.
func (m *Multilinear) Rank() int {
	if m.leaf != nil {
		return 1
	}
	return 1 + m.children[0].Rank()
}

// Axes returns a copy of every axis, outermost first.
func (m *Multilinear) Axes() [][]float64 {
	axes := [][]float64{m.axis.Values()}
	if m.leaf == nil {
		axes = append(axes, m.children[0].Axes()...)
	}
	return axes
}

// Bounds returns the minimum and maximum of every axis, outermost first.
func (m *Multilinear) Bounds() (lo, hi []float64) {
	for n := m; n != nil; {
		lo = append(lo, n.axis.Min())
		hi = append(hi, n.axis.Max())
		if n.leaf != nil {
			break
		}
		n = n.children[0]
	}
	return lo, hi
}

// Leaf reports the interpolant kind along the innermost axis.
func (m *Multilinear) Leaf() LeafKind {
	n := m
	for n.leaf == nil {
		n = n.children[0]
	}
	return n.leaf.Kind()
}

// Eval evaluates the interpolator at one coordinate per axis, outermost
// first. Every coordinate is clamped into its axis range. A coordinate count
// other than Rank() returns ErrArity.
func (m *Multilinear) Eval(xs ...float64) (float64, error) {
	if len(xs) != m.Rank() {
		return math.NaN(), ErrArity
	}
	return m.eval(xs), nil
}

// MustEval is Eval for callers that have already checked the arity. It
// panics on a wrong coordinate count.
func (m *Multilinear) MustEval(xs ...float64) float64 {
	v, err := m.Eval(xs...)
	if err != nil {
		panic(err)
	}
	return v
}

func (m *Multilinear) eval(xs []float64) float64 {
	if m.leaf != nil {
		return m.leaf.Value(xs[0])
	}

	x, inner := xs[0], xs[1:]
	n := m.axis.Len()
	switch {
	case x <= m.axis.Min():
		return m.children[0].eval(inner)
	case x >= m.axis.Max():
		return m.children[n-1].eval(inner)
	}

	// Only the bracketing pair contributes to the linear blend.
	i, t := m.axis.Bracket(x)
	return lerp(m.children[i].eval(inner), m.children[i+1].eval(inner), t)
}

// Intermediate evaluates every child at the inner coordinates and returns one
// value per point of the outermost axis. Eval(x0, inner...) equals
// Lookup(axis0, Intermediate(inner...), x0).
func (m *Multilinear) Intermediate(inner ...float64) ([]float64, error) {
	if m.leaf != nil || len(inner) != m.Rank()-1 {
		return nil, ErrArity
	}
	out := make([]float64, len(m.children))
	for i, c := range m.children {
		out[i] = c.eval(inner)
	}
	return out, nil
}

// EvalAll evaluates the interpolator at points[i], each holding one
// coordinate per axis. If an output slice is given the result is written
// there and returned; only the first is used.
func (m *Multilinear) EvalAll(points [][]float64, out ...[]float64) ([]float64, error) {
	rank := m.Rank()
	for _, p := range points {
		if len(p) != rank {
			return nil, ErrArity
		}
	}
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(points))}
	}
	for i, p := range points {
		out[0][i] = m.eval(p)
	}
	return out[0], nil
}
