package grid

// Bilinear interpolates a table indexed by row and column.
type Bilinear struct {
	m *Multilinear
}

// NewBilinear builds an interpolator over data[row][col]. data must hold
// len(rowsAxis) rows of len(colsAxis) values.
func NewBilinear(rowsAxis, colsAxis []float64, data [][]float64, opts ...Option) (*Bilinear, error) {
	if err := checkAxes(rowsAxis, colsAxis); err != nil {
		return nil, err
	}
	if err := checkRows(data, len(rowsAxis), len(colsAxis), 0, nil); err != nil {
		return nil, err
	}
	g, err := FromRows(data)
	if err != nil {
		return nil, err
	}
	m, err := NewMultilinear([][]float64{rowsAxis, colsAxis}, g, opts...)
	if err != nil {
		return nil, err
	}
	return &Bilinear{m: m}, nil
}

// Value interpolates at (rowX, colX), clamping both into range.
func (b *Bilinear) Value(rowX, colX float64) float64 {
	xs := [2]float64{rowX, colX}
	return b.m.eval(xs[:])
}

// Multilinear returns the underlying rank-2 interpolator.
func (b *Bilinear) Multilinear() *Multilinear { return b.m }

// Trilinear interpolates a table indexed by page, row and column.
type Trilinear struct {
	m *Multilinear
}

// NewTrilinear builds an interpolator over data[page][row][col].
func NewTrilinear(pageAxis, rowsAxis, colsAxis []float64, data [][][]float64, opts ...Option) (*Trilinear, error) {
	if err := checkAxes(pageAxis, rowsAxis, colsAxis); err != nil {
		return nil, err
	}
	if err := checkPages(data, len(pageAxis), len(rowsAxis), len(colsAxis), 0, nil); err != nil {
		return nil, err
	}
	g, err := FromPages(data)
	if err != nil {
		return nil, err
	}
	m, err := NewMultilinear([][]float64{pageAxis, rowsAxis, colsAxis}, g, opts...)
	if err != nil {
		return nil, err
	}
	return &Trilinear{m: m}, nil
}

// Value interpolates at (pageX, rowX, colX), clamping each into range.
func (t *Trilinear) Value(pageX, rowX, colX float64) float64 {
	xs := [3]float64{pageX, rowX, colX}
	return t.m.eval(xs[:])
}

// Multilinear returns the underlying rank-3 interpolator.
func (t *Trilinear) Multilinear() *Multilinear { return t.m }

// Quadrilinear interpolates a four-dimensional table.
type Quadrilinear struct {
	m *Multilinear
}

// NewQuadrilinear builds an interpolator over data[i0][i1][i2][i3].
func NewQuadrilinear(a0, a1, a2, a3 []float64, data [][][][]float64, opts ...Option) (*Quadrilinear, error) {
	if err := checkAxes(a0, a1, a2, a3); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNilInput
	}
	if len(data) != len(a0) {
		return nil, wrapAt(0, nil, ErrDimensionMismatch)
	}
	for i, block := range data {
		if err := checkPages(block, len(a1), len(a2), len(a3), 1, []int{i}); err != nil {
			return nil, err
		}
	}
	g, err := FromBlocks(data)
	if err != nil {
		return nil, err
	}
	m, err := NewMultilinear([][]float64{a0, a1, a2, a3}, g, opts...)
	if err != nil {
		return nil, err
	}
	return &Quadrilinear{m: m}, nil
}

// Value interpolates at (x0, x1, x2, x3), clamping each into range.
func (q *Quadrilinear) Value(x0, x1, x2, x3 float64) float64 {
	xs := [4]float64{x0, x1, x2, x3}
	return q.m.eval(xs[:])
}

// Multilinear returns the underlying rank-4 interpolator.
func (q *Quadrilinear) Multilinear() *Multilinear { return q.m }

func checkAxes(axes ...[]float64) error {
	for d, ax := range axes {
		if err := checkAxis(ax); err != nil {
			return wrapAt(d, nil, err)
		}
	}
	return nil
}

func checkRows(data [][]float64, rows, cols, depth int, index []int) error {
	if data == nil {
		return ErrNilInput
	}
	if len(data) != rows {
		return wrapAt(depth, index, ErrDimensionMismatch)
	}
	for r, row := range data {
		if len(row) != cols {
			return wrapAt(depth+1, append(index, r), ErrDimensionMismatch)
		}
	}
	return nil
}

func checkPages(data [][][]float64, pages, rows, cols, depth int, index []int) error {
	if data == nil {
		return ErrNilInput
	}
	if len(data) != pages {
		return wrapAt(depth, index, ErrDimensionMismatch)
	}
	for p, page := range data {
		if err := checkRows(page, rows, cols, depth+1, append(index, p)); err != nil {
			return err
		}
	}
	return nil
}
