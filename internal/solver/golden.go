package solver

import "math"

// gamma — доля золотого сечения (3-√5)/2
var gamma = (3 - math.Sqrt(5)) / 2

// RunGoldenSection сужает отрезок золотым сечением по смене знака.
// Внутри окна [a, b] держатся две пробные точки x1 = a + γ(b-a), x2 = a + (1-γ)(b-a);
// одна из них переходит в следующую итерацию, поэтому на шаг приходится не больше одного нового вычисления f.
// Останавливается при b-a <= precision или когда окно перестало сужаться. Возвращает последний x1.
func RunGoldenSection(iv Interval, f Func, precision float64, onIter IterFunc) (float64, error) {
	a, b := iv.Min, iv.Max
	if a == b {
		return a, nil
	}

	x1 := a + gamma*(b-a)
	x2 := a + (1-gamma)*(b-a)
	if b-a <= precision {
		return x1, nil
	}

	fa, err := f.Eval(a)
	if err != nil {
		return 0, err
	}
	fx1, err := f.Eval(x1)
	if err != nil {
		return 0, err
	}
	// f(x2) известно, только если x2 досталась от прежнего x1
	var fx2 float64
	fx2Known := false

	for k := 1; b-a > precision; k++ {
		aPrev, bPrev := a, b

		if sign(fa) == sign(fx1) {
			// корень в [x1, b]
			a, fa = x1, fx1
			x1 = x2
			if fx2Known {
				fx1 = fx2
			} else if fx1, err = f.Eval(x1); err != nil {
				return 0, err
			}
			x2 = a + (1-gamma)*(b-a)
			fx2Known = false
		} else {
			// корень в [a, x2]
			b = x2
			x2, fx2, fx2Known = x1, fx1, true
			x1 = a + gamma*(b-a)
			if fx1, err = f.Eval(x1); err != nil {
				return 0, err
			}
		}

		if err := onIter.emit(Iter{
			K:   k,
			A:   a,
			B:   b,
			X:   x1,
			FX:  fx1,
			Len: b - a,
		}); err != nil {
			return 0, err
		}

		if a == aPrev && b == bPrev {
			break
		}
	}

	return x1, nil
}
