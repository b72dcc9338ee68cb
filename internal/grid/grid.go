package grid

// Grid is a dense n-dimensional array of values stored in row-major order:
// the last dimension varies fastest.
type Grid struct {
	shape   []int
	strides []int
	data    []float64
}

// NewGrid copies data into a Grid of the given shape.
func NewGrid(shape []int, data []float64) (*Grid, error) {
	if shape == nil || data == nil {
		return nil, ErrNilInput
	}
	if len(shape) == 0 {
		return nil, ErrDimensionMismatch
	}
	size := 1
	for _, n := range shape {
		if n < 2 {
			return nil, ErrAxisTooShort
		}
		size *= n
	}
	if size != len(data) {
		return nil, ErrDimensionMismatch
	}

	g := &Grid{
		shape: make([]int, len(shape)),
		data:  make([]float64, len(data)),
	}
	copy(g.shape, shape)
	copy(g.data, data)
	g.strides = stridesOf(g.shape)
	return g, nil
}

func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= shape[i]
	}
	return strides
}

// FromRows builds a 2D grid from data[row][col].
func FromRows(data [][]float64) (*Grid, error) {
	if data == nil {
		return nil, ErrNilInput
	}
	if len(data) == 0 {
		return nil, ErrAxisTooShort
	}
	cols := len(data[0])
	flat := make([]float64, 0, len(data)*cols)
	for _, row := range data {
		if len(row) != cols {
			return nil, ErrDimensionMismatch
		}
		flat = append(flat, row...)
	}
	return NewGrid([]int{len(data), cols}, flat)
}

// FromPages builds a 3D grid from data[page][row][col].
func FromPages(data [][][]float64) (*Grid, error) {
	if data == nil {
		return nil, ErrNilInput
	}
	if len(data) == 0 {
		return nil, ErrAxisTooShort
	}
	var shape []int
	var flat []float64
	for _, page := range data {
		g, err := FromRows(page)
		if err != nil {
			return nil, err
		}
		if shape == nil {
			shape = g.shape
		} else if !sameShape(shape, g.shape) {
			return nil, ErrDimensionMismatch
		}
		flat = append(flat, g.data...)
	}
	return NewGrid(append([]int{len(data)}, shape...), flat)
}

// FromBlocks builds a 4D grid from data[block][page][row][col].
func FromBlocks(data [][][][]float64) (*Grid, error) {
	if data == nil {
		return nil, ErrNilInput
	}
	if len(data) == 0 {
		return nil, ErrAxisTooShort
	}
	var shape []int
	var flat []float64
	for _, block := range data {
		g, err := FromPages(block)
		if err != nil {
			return nil, err
		}
		if shape == nil {
			shape = g.shape
		} else if !sameShape(shape, g.shape) {
			return nil, ErrDimensionMismatch
		}
		flat = append(flat, g.data...)
	}
	return NewGrid(append([]int{len(data)}, shape...), flat)
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Rank returns the number of dimensions.
func (g *Grid) Rank() int { return len(g.shape) }

// Shape returns a copy of the extents.
func (g *Grid) Shape() []int {
	s := make([]int, len(g.shape))
	copy(s, g.shape)
	return s
}

// At returns the value at the given index, one entry per dimension.
func (g *Grid) At(idx ...int) float64 {
	off := 0
	for i, k := range idx {
		off += k * g.strides[i]
	}
	return g.data[off]
}

// Sub returns the (n-1)-dimensional slice at outer index i. The result
// shares storage with g.
func (g *Grid) Sub(i int) *Grid {
	stride := g.strides[0]
	return &Grid{
		shape:   g.shape[1:],
		strides: g.strides[1:],
		data:    g.data[i*stride : (i+1)*stride],
	}
}

// Line returns the values of a 1D grid. The result shares storage with g.
func (g *Grid) Line() []float64 {
	return g.data
}
