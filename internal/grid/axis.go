package grid

// Axis is one strictly ascending coordinate dimension of a table.
type Axis struct {
	values   []float64
	min, max float64
}

// NewAxis copies values into a new Axis.
func NewAxis(values []float64) (Axis, error) {
	if err := checkAxis(values); err != nil {
		return Axis{}, err
	}
	v := make([]float64, len(values))
	copy(v, values)
	return Axis{values: v, min: v[0], max: v[len(v)-1]}, nil
}

func (a Axis) Len() int         { return len(a.values) }
func (a Axis) At(i int) float64 { return a.values[i] }
func (a Axis) Min() float64     { return a.min }
func (a Axis) Max() float64     { return a.max }

// Values returns a copy of the axis coordinates.
func (a Axis) Values() []float64 {
	v := make([]float64, len(a.values))
	copy(v, a.values)
	return v
}

// Clamp clamps x into [Min(), Max()].
func (a Axis) Clamp(x float64) float64 {
	return Clamp(x, a.min, a.max)
}

// Bracket returns the lower bracketing index and fraction of x on the axis.
func (a Axis) Bracket(x float64) (int, float64) {
	return Bracket(a.values, x)
}
