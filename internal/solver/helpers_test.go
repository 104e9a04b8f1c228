package solver

import "math"

// seqSource отдаёт заранее заданные значения по кругу
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// recordFunc запоминает все точки, в которых считалась f
type recordFunc struct {
	f       func(float64) float64
	points  []float64
	batches int
}

func (r *recordFunc) Eval(x float64) (float64, error) {
	r.points = append(r.points, x)
	return r.f(x), nil
}

func (r *recordFunc) EvalBatch(xs []float64) ([]float64, error) {
	r.batches++
	ys := make([]float64, len(xs))
	for i, x := range xs {
		r.points = append(r.points, x)
		ys[i] = r.f(x)
	}
	return ys, nil
}

func square2(x float64) float64 { return x*x - 2 }

func cubic(x float64) float64 { return x*x*x - x - 2 }

// корень x^3 - x - 2
var cubicRoot = 1.5213797068045676

func nan(float64) float64 { return math.NaN() }
