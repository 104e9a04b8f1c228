package solver

// RunBisection — метод деления отрезка пополам.
// На входе iv должен менять знак: sign(f(Min)) != sign(f(Max)).
// Итерации идут, пока ширина отрезка не станет меньше precision; возвращается середина.
func RunBisection(iv Interval, f Func, precision float64, onIter IterFunc) (float64, error) {
	left, right := iv.Min, iv.Max

	fleft, err := f.Eval(left)
	if err != nil {
		return 0, err
	}
	sleft := sign(fleft)

	for k := 1; right-left >= precision; k++ {
		mid := left + (right-left)/2
		if mid <= left || mid >= right {
			// соседние числа с плавающей точкой, делить больше нечего
			break
		}

		fmid, err := f.Eval(mid)
		if err != nil {
			return 0, err
		}

		// при left := mid знак левого конца не меняется, пересчитывать f(left) не нужно
		if sign(fmid) == sleft {
			left = mid
		} else {
			right = mid
		}

		if err := onIter.emit(Iter{
			K:   k,
			A:   left,
			B:   right,
			X:   mid,
			FX:  fmid,
			Len: right - left,
		}); err != nil {
			return 0, err
		}
	}

	return left + (right-left)/2, nil
}
