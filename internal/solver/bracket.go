package solver

import "fmt"

// Locate ищет пару точек внутри iv, на которой f меняет знак.
// Сначала проверяются концы iv, затем до nSample раз берутся две случайные точки из iv.
// Точный ноль в точке не считается сменой знака — такая пара отбрасывается.
// Возвращает упорядоченный отрезок и число сделанных выборок.
func Locate(iv Interval, f Func, nSample int, src Source) (Interval, int, error) {
	pts := []float64{iv.Min, iv.Max}
	width := iv.Width()

	for count := 0; ; count++ {
		ys, err := evalAll(f, pts)
		if err != nil {
			return Interval{}, count, err
		}
		if opposite(ys[0], ys[1]) {
			// сортируем только точки: знак едет вместе со своей точкой
			return NewInterval(pts[0], pts[1]), count, nil
		}
		if count == nSample {
			return Interval{}, count, fmt.Errorf("%w: no sign change in %v after %d samples", ErrNoBracketFound, iv, nSample)
		}

		pts = []float64{
			width*src.Float64() + iv.Min,
			width*src.Float64() + iv.Min,
		}
	}
}
