package grid_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tabula/internal/grid"
)

const eps = 1e-9

var _ = Describe("Axis1D", func() {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, 4, 9, 16}

	It("returns stored values at grid points", func() {
		for _, leaf := range []func([]float64, []float64) (*grid.Axis1D, error){grid.NewAxis1D, grid.NewLinear1D} {
			a, err := leaf(xs, ys)
			Expect(err).NotTo(HaveOccurred())
			for i := range xs {
				Expect(a.Value(xs[i])).To(BeNumerically("~", ys[i], eps))
			}
		}
	})

	It("clamps outside the axis range", func() {
		a, err := grid.NewAxis1D(xs, ys)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Value(-10)).To(Equal(0.0))
		Expect(a.Value(10)).To(Equal(16.0))
	})

	It("picks a spline for four or more points", func() {
		a, err := grid.NewAxis1D(xs, ys)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Kind()).To(Equal(grid.LeafSpline))

		b, err := grid.NewAxis1D([]float64{0, 1, 2}, []float64{0, 1, 4})
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Kind()).To(Equal(grid.LeafLinear))
		Expect(b.Value(0.5)).To(BeNumerically("~", 0.5, eps))
	})

	It("evaluates into a caller buffer", func() {
		a, err := grid.NewLinear1D(xs, ys)
		Expect(err).NotTo(HaveOccurred())
		buf := make([]float64, 3)
		out := a.Values([]float64{-1, 0.5, 5}, buf)
		Expect(out).To(Equal([]float64{0, 0.5, 16}))
		Expect(&out[0]).To(BeIdenticalTo(&buf[0]))
	})

	It("rejects bad tables", func() {
		_, err := grid.NewAxis1D([]float64{0}, []float64{1})
		Expect(errors.Is(err, grid.ErrAxisTooShort)).To(BeTrue())

		_, err = grid.NewAxis1D([]float64{0, 2, 1}, []float64{1, 2, 3})
		Expect(errors.Is(err, grid.ErrNonMonotonicAxis)).To(BeTrue())

		_, err = grid.NewAxis1D([]float64{0, 1, 2}, []float64{1, 2})
		Expect(errors.Is(err, grid.ErrDimensionMismatch)).To(BeTrue())

		_, err = grid.NewAxis1D(nil, []float64{1, 2})
		Expect(errors.Is(err, grid.ErrNilInput)).To(BeTrue())
	})

	It("copies its inputs", func() {
		x := []float64{0, 1}
		y := []float64{0, 10}
		a, err := grid.NewLinear1D(x, y)
		Expect(err).NotTo(HaveOccurred())
		y[1] = 99
		Expect(a.Value(1)).To(Equal(10.0))
	})
})

var _ = Describe("Bilinear", func() {
	rows := []float64{0, 1}
	cols := []float64{0, 1, 2}
	data := [][]float64{
		{0, 1, 2},
		{1, 2, 3},
	}

	It("generalises along both dimensions", func() {
		b, err := grid.NewBilinear(rows, cols, data)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Value(1, 0.5)).To(BeNumerically("~", 1.5, eps))
		Expect(b.Value(0.5, 1)).To(BeNumerically("~", 1.5, eps))
		Expect(b.Value(0.5, 0.5)).To(BeNumerically("~", 1.0, eps))
	})

	It("interpolates along columns on a three-row table", func() {
		b, err := grid.NewBilinear([]float64{0, 1, 2}, []float64{0, 1}, [][]float64{
			{0, 1},
			{1, 2},
			{2, 3},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Value(1, 0.5)).To(BeNumerically("~", 1.5, eps))
	})

	It("returns stored values at grid points", func() {
		b, err := grid.NewBilinear(rows, cols, data)
		Expect(err).NotTo(HaveOccurred())
		for r := range rows {
			for c := range cols {
				Expect(b.Value(rows[r], cols[c])).To(BeNumerically("~", data[r][c], eps))
			}
		}
	})

	It("clamps both coordinates", func() {
		b, err := grid.NewBilinear(rows, cols, data)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Value(-5, -5)).To(Equal(0.0))
		Expect(b.Value(5, 5)).To(Equal(3.0))
		Expect(b.Value(5, 0.5)).To(Equal(b.Value(1, 0.5)))
	})

	It("agrees with the direct lookup", func() {
		b, err := grid.NewBilinear(rows, cols, data)
		Expect(err).NotTo(HaveOccurred())
		for _, p := range [][2]float64{{0.25, 0.75}, {0.9, 1.9}, {-1, 1.3}, {2, 3}} {
			want, err := grid.Interpolate2DLinear(rows, cols, data, p[0], p[1])
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Value(p[0], p[1])).To(Equal(want))
		}
	})

	DescribeTable("construction failures",
		func(r, c []float64, d [][]float64, want error) {
			_, err := grid.NewBilinear(r, c, d)
			Expect(errors.Is(err, want)).To(BeTrue(), "got %v", err)
		},
		Entry("single row", []float64{0}, []float64{0, 1}, [][]float64{{1, 2}}, grid.ErrAxisTooShort),
		Entry("row count", []float64{0, 1, 2}, []float64{0, 1}, [][]float64{{1, 2}, {3, 4}}, grid.ErrDimensionMismatch),
		Entry("ragged row", []float64{0, 1}, []float64{0, 1}, [][]float64{{1, 2}, {3}}, grid.ErrDimensionMismatch),
		Entry("descending columns", []float64{0, 1}, []float64{1, 0}, [][]float64{{1, 2}, {3, 4}}, grid.ErrNonMonotonicAxis),
		Entry("repeated row", []float64{1, 1}, []float64{0, 1}, [][]float64{{1, 2}, {3, 4}}, grid.ErrNonMonotonicAxis),
		Entry("nil data", []float64{0, 1}, []float64{0, 1}, nil, grid.ErrNilInput),
	)

	It("reports where construction failed", func() {
		_, err := grid.NewBilinear([]float64{0, 1}, []float64{0, 1}, [][]float64{{1, 2}, {3}})
		var ce *grid.ConstructionError
		Expect(errors.As(err, &ce)).To(BeTrue())
		Expect(ce.Depth).To(Equal(1))
		Expect(ce.Index).To(Equal([]int{1}))
	})
})

var _ = Describe("Trilinear", func() {
	pages := []float64{0, 10, 20}
	rows := []float64{0, 1}
	cols := []float64{0, 1, 2}
	page := [][]float64{
		{0, 1, 2},
		{1, 2, 3},
	}

	It("equals the bilinear result when every page is identical", func() {
		t, err := grid.NewTrilinear(pages, rows, cols, [][][]float64{page, page, page})
		Expect(err).NotTo(HaveOccurred())
		b, err := grid.NewBilinear(rows, cols, page)
		Expect(err).NotTo(HaveOccurred())
		for _, p := range []float64{-5, 0, 3.3, 10, 17, 25} {
			Expect(t.Value(p, 0.4, 1.7)).To(BeNumerically("~", b.Value(0.4, 1.7), eps))
		}
	})

	It("blends linearly between pages", func() {
		shifted := [][]float64{{10, 11, 12}, {11, 12, 13}}
		t, err := grid.NewTrilinear([]float64{0, 1}, rows, cols, [][][]float64{page, shifted})
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Value(0.5, 1, 0.5)).To(BeNumerically("~", 6.5, eps))
	})

	It("agrees with the direct lookup", func() {
		data := [][][]float64{
			{{0, 1, 2}, {1, 2, 3}},
			{{4, 2, 0}, {3, 3, 3}},
			{{9, 8, 1}, {0, 5, 7}},
		}
		t, err := grid.NewTrilinear(pages, rows, cols, data)
		Expect(err).NotTo(HaveOccurred())
		for _, p := range [][3]float64{{3, 0.2, 0.1}, {15, 0.8, 1.9}, {-4, 2, 1}, {30, -1, 5}} {
			want, err := grid.Interpolate3DLinear(pages, rows, cols, data, p[0], p[1], p[2])
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Value(p[0], p[1], p[2])).To(Equal(want))
		}
	})

	It("rejects a ragged page", func() {
		_, err := grid.NewTrilinear([]float64{0, 1}, rows, cols, [][][]float64{page, {{1, 2, 3}}})
		Expect(errors.Is(err, grid.ErrDimensionMismatch)).To(BeTrue())
	})
})

var _ = Describe("Quadrilinear", func() {
	// f(a, b, c, d) = a + 2b + 3c + 4d is reproduced exactly by a
	// multilinear interpolant.
	axis := []float64{0, 1, 2}
	f := func(a, b, c, d float64) float64 { return a + 2*b + 3*c + 4*d }

	build := func() [][][][]float64 {
		data := make([][][][]float64, len(axis))
		for i, a := range axis {
			data[i] = make([][][]float64, len(axis))
			for j, b := range axis {
				data[i][j] = make([][]float64, len(axis))
				for k, c := range axis {
					data[i][j][k] = make([]float64, len(axis))
					for m, d := range axis {
						data[i][j][k][m] = f(a, b, c, d)
					}
				}
			}
		}
		return data
	}

	It("reproduces a linear function", func() {
		q, err := grid.NewQuadrilinear(axis, axis, axis, axis, build())
		Expect(err).NotTo(HaveOccurred())
		Expect(q.Value(0.5, 1.5, 0.25, 1.75)).To(BeNumerically("~", f(0.5, 1.5, 0.25, 1.75), eps))
		Expect(q.Value(-1, 3, 1, 1)).To(BeNumerically("~", f(0, 2, 1, 1), eps))
	})

	It("exposes its axes and bounds", func() {
		q, err := grid.NewQuadrilinear(axis, axis, axis, axis, build())
		Expect(err).NotTo(HaveOccurred())
		m := q.Multilinear()
		Expect(m.Rank()).To(Equal(4))
		Expect(m.Axes()).To(HaveLen(4))
		lo, hi := m.Bounds()
		Expect(lo).To(Equal([]float64{0, 0, 0, 0}))
		Expect(hi).To(Equal([]float64{2, 2, 2, 2}))
	})
})

var _ = Describe("Multilinear", func() {
	It("handles five dimensions", func() {
		shape := []int{2, 2, 2, 2, 2}
		axes := make([][]float64, len(shape))
		for d := range axes {
			axes[d] = []float64{0, 1}
		}
		data := make([]float64, 32)
		for i := range data {
			// Sum of the index bits.
			for b := 0; b < 5; b++ {
				data[i] += float64((i >> b) & 1)
			}
		}
		g, err := grid.NewGrid(shape, data)
		Expect(err).NotTo(HaveOccurred())
		m, err := grid.NewMultilinear(axes, g)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.MustEval(0.5, 0.5, 0.5, 0.5, 0.5)).To(BeNumerically("~", 2.5, eps))
		Expect(m.MustEval(1, 1, 1, 1, 1)).To(Equal(5.0))
	})

	It("rejects the wrong number of coordinates", func() {
		g, err := grid.FromRows([][]float64{{0, 1}, {2, 3}})
		Expect(err).NotTo(HaveOccurred())
		m, err := grid.NewMultilinear([][]float64{{0, 1}, {0, 1}}, g)
		Expect(err).NotTo(HaveOccurred())

		_, err = m.Eval(0.5)
		Expect(err).To(MatchError(grid.ErrArity))
		Expect(func() { m.MustEval(1, 2, 3) }).To(Panic())
	})

	It("blends the full intermediate vector like a 1D lookup", func() {
		rows := []float64{0, 1, 3}
		cols := []float64{0, 2, 4, 6}
		g, err := grid.FromRows([][]float64{{1, 2, 3, 4}, {2, 0, 2, 0}, {5, 5, 6, 9}})
		Expect(err).NotTo(HaveOccurred())
		m, err := grid.NewMultilinear([][]float64{rows, cols}, g)
		Expect(err).NotTo(HaveOccurred())

		inner, err := m.Intermediate(2.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(inner).To(HaveLen(3))
		for _, x := range []float64{-1, 0.3, 1, 2.2, 4} {
			Expect(m.MustEval(x, 2.5)).To(Equal(grid.Lookup(rows, inner, x)))
		}
	})

	It("checks axes before shape", func() {
		g, err := grid.NewGrid([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
		Expect(err).NotTo(HaveOccurred())
		_, err = grid.NewMultilinear([][]float64{{0}, {0, 1}}, g)
		Expect(errors.Is(err, grid.ErrAxisTooShort)).To(BeTrue())
		_, err = grid.NewMultilinear([][]float64{{0, 1}, {0, 1}}, g)
		Expect(errors.Is(err, grid.ErrDimensionMismatch)).To(BeTrue())
	})

	It("uses spline leaves on request", func() {
		cols := []float64{0, 1, 2, 3, 4}
		g, err := grid.FromRows([][]float64{{0, 1, 4, 9, 16}, {0, 1, 4, 9, 16}})
		Expect(err).NotTo(HaveOccurred())
		m, err := grid.NewMultilinear([][]float64{{0, 1}, cols}, g, grid.WithLeaf(grid.LeafAuto))
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Leaf()).To(Equal(grid.LeafSpline))
		Expect(m.MustEval(0.5, 2)).To(BeNumerically("~", 4, eps))

		lin, err := grid.NewMultilinear([][]float64{{0, 1}, cols}, g)
		Expect(err).NotTo(HaveOccurred())
		Expect(lin.Leaf()).To(Equal(grid.LeafLinear))
		Expect(lin.MustEval(0.5, 2.5)).To(BeNumerically("~", 6.5, eps))
	})

	It("evaluates NaN as NaN", func() {
		b, err := grid.NewBilinear([]float64{0, 1}, []float64{0, 1}, [][]float64{{0, 1}, {2, 3}})
		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsNaN(b.Value(math.NaN(), 0.5))).To(BeTrue())
	})

	It("evaluates batches like single points", func() {
		b, err := grid.NewBilinear([]float64{0, 1, 2}, []float64{0, 10}, [][]float64{{0, 10}, {1, 11}, {2, 12}})
		Expect(err).NotTo(HaveOccurred())
		m := b.Multilinear()

		points := [][]float64{{0, 0}, {0.5, 5}, {2, 10}, {-1, 20}}
		got, err := m.EvalAll(points)
		Expect(err).NotTo(HaveOccurred())
		for i, p := range points {
			Expect(got[i]).To(Equal(m.MustEval(p...)))
		}

		out := make([]float64, len(points))
		_, err = m.EvalAll(points, out)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(got))

		_, err = m.EvalAll([][]float64{{0, 0}, {1}})
		Expect(err).To(MatchError(grid.ErrArity))
	})
})

var _ = Describe("Interpolate2DLinear", func() {
	It("rejects a grid with a single column", func() {
		_, err := grid.Interpolate2DLinear([]float64{0}, []float64{0, 1}, [][]float64{{1, 2}}, 0, 0)
		Expect(err).To(MatchError(grid.ErrAxisTooShort))
	})

	It("rejects nil input", func() {
		_, err := grid.Interpolate2DLinear(nil, []float64{0, 1}, [][]float64{{1, 2}}, 0, 0)
		Expect(err).To(MatchError(grid.ErrNilInput))
	})

	It("rejects a shape mismatch", func() {
		_, err := grid.Interpolate3DLinear([]float64{0, 1}, []float64{0, 1}, []float64{0, 1},
			[][][]float64{{{1, 2}, {3, 4}}}, 0, 0, 0)
		Expect(err).To(MatchError(grid.ErrDimensionMismatch))
	})
})

var _ = Describe("Interpolate3DLinear", func() {
	axis := []float64{0, 1, 2}
	square := [][]float64{{0, 1}, {2, 3}}
	pages := [][][]float64{square, square, {{0, 1}}}

	It("checks only the pages it blends", func() {
		v, err := grid.Interpolate3DLinear(axis, []float64{0, 1}, []float64{0, 1}, pages, 0.5, 1, 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 2.5, eps))

		_, err = grid.Interpolate3DLinear(axis, []float64{0, 1}, []float64{0, 1}, pages, 1.5, 1, 0.5)
		Expect(err).To(MatchError(grid.ErrDimensionMismatch))
	})
})
