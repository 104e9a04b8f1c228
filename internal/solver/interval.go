package solver

import "fmt"

// Interval — отрезок [Min, Max], всегда упорядоченный
type Interval struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NewInterval строит отрезок по концам в любом порядке
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Min: a, Max: b}
}

func (iv Interval) Width() float64 {
	return iv.Max - iv.Min
}

// Mid — середина отрезка
func (iv Interval) Mid() float64 {
	return iv.Min + (iv.Max-iv.Min)/2
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Min, iv.Max)
}
