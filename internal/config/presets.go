package config

import (
	"math"
	"sort"
)

// presets returns fresh copies of the built-in tables on every call.
func presets() map[string]func() *Table {
	return map[string]func() *Table{
		"atmosphere":   atmosphere,
		"drag-polar":   dragPolar,
		"thrust-lapse": thrustLapse,
		"sfc":          specificFuelConsumption,
	}
}

// GetPreset returns the named built-in table, or nil.
func GetPreset(name string) *Table {
	fn, ok := presets()[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	p := presets()
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// densityRatio is the standard-atmosphere density ratio at altitude h in km.
func densityRatio(h float64) float64 {
	if h <= 11 {
		return math.Pow(1-h/44.3308, 4.2559)
	}
	return densityRatio(11) * math.Exp(-(h-11)/6.3416)
}

func atmosphere() *Table {
	alt := []float64{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20}
	vals := make([]float64, len(alt))
	for i, h := range alt {
		vals[i] = round4(densityRatio(h))
	}
	return &Table{
		Name:        "atmosphere",
		Description: "standard atmosphere density ratio",
		Output:      "sigma",
		Leaf:        "auto",
		Axes:        []AxisSpec{{Name: "altitude", Unit: "km", Values: alt}},
		Values:      vals,
	}
}

func dragPolar() *Table {
	mach := []float64{0.2, 0.5, 0.7, 0.8, 0.85, 0.9}
	cl := []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0}

	vals := make([]float64, 0, len(mach)*len(cl))
	for _, m := range mach {
		cd0 := 0.018
		if m > 0.75 {
			// Wave drag rise beyond the drag-divergence Mach number.
			cd0 += 0.1 * math.Pow(m-0.75, 2)
		}
		k := 0.045 * (1 + 0.3*m*m)
		for _, c := range cl {
			vals = append(vals, round4(cd0+k*c*c))
		}
	}
	return &Table{
		Name:        "drag-polar",
		Description: "drag coefficient by Mach number and lift coefficient",
		Output:      "cd",
		Axes: []AxisSpec{
			{Name: "mach", Values: mach},
			{Name: "cl", Values: cl},
		},
		Values: vals,
	}
}

func thrustLapse() *Table {
	alt := []float64{0, 3, 6, 9, 12}
	mach := []float64{0, 0.3, 0.6, 0.9}
	throttle := []float64{0.5, 0.75, 1.0}

	vals := make([]float64, 0, len(alt)*len(mach)*len(throttle))
	for _, h := range alt {
		sigma := math.Pow(densityRatio(h), 0.7)
		for _, m := range mach {
			ram := 1 - 0.45*m + 0.35*m*m
			for _, tr := range throttle {
				vals = append(vals, round4(tr*sigma*ram))
			}
		}
	}
	return &Table{
		Name:        "thrust-lapse",
		Description: "available thrust over sea-level static thrust",
		Output:      "thrust_ratio",
		Axes: []AxisSpec{
			{Name: "altitude", Unit: "km", Values: alt},
			{Name: "mach", Values: mach},
			{Name: "throttle", Values: throttle},
		},
		Values: vals,
	}
}

func specificFuelConsumption() *Table {
	alt := []float64{0, 6, 12}
	mach := []float64{0, 0.4, 0.8}
	throttle := []float64{0.6, 0.8, 1.0}
	bypass := []float64{1, 5, 9}

	vals := make([]float64, 0, 81)
	for _, h := range alt {
		for _, m := range mach {
			for _, tr := range throttle {
				for _, b := range bypass {
					sfc := (0.95 - 0.045*b) * (1 + 0.4*m) * (1 - 0.01*h) * (1 + 0.2*(1-tr))
					vals = append(vals, round4(sfc))
				}
			}
		}
	}
	return &Table{
		Name:        "sfc",
		Description: "thrust specific fuel consumption in lb/(lbf h)",
		Output:      "tsfc",
		Axes: []AxisSpec{
			{Name: "altitude", Unit: "km", Values: alt},
			{Name: "mach", Values: mach},
			{Name: "throttle", Values: throttle},
			{Name: "bypass", Values: bypass},
		},
		Values: vals,
	}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
