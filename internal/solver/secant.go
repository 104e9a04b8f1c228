package solver

import (
	"fmt"
	"math"
)

// RunSecant — метод секущих от пары точек (iv.Min, iv.Max).
// Смена знака не требуется и не сохраняется; итерации могут выйти за пределы iv.
// Останавливается досрочно, когда две последние точки совпали.
func RunSecant(iv Interval, f Func, maxIter int, onIter IterFunc) (float64, error) {
	prev, cur := iv.Min, iv.Max

	fprev, err := f.Eval(prev)
	if err != nil {
		return 0, err
	}

	for k := 1; k <= maxIter && prev != cur; k++ {
		fcur, err := f.Eval(cur)
		if err != nil {
			return 0, err
		}

		denom := fcur - fprev
		if denom == 0 {
			if fcur == 0 {
				// обе точки — корни
				return cur, nil
			}
			return 0, fmt.Errorf("%w: f(%g) == f(%g) == %g", ErrDegenerateIteration, prev, cur, fcur)
		}

		next := cur - fcur*(cur-prev)/denom
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, fmt.Errorf("%w: step from %g produced %g", ErrDegenerateIteration, cur, next)
		}

		prev, fprev = cur, fcur
		cur = next

		if err := onIter.emit(Iter{
			K:   k,
			A:   prev,
			B:   cur,
			X:   prev,
			FX:  fprev,
			Len: math.Abs(cur - prev),
		}); err != nil {
			return 0, err
		}
	}

	return cur, nil
}
