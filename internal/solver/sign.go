package solver

import "golang.org/x/exp/constraints"

// sign возвращает -1, 0 или 1; для NaN — 0
func sign[T constraints.Float](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// opposite — тест произведения знаков: true только при строго разных знаках
func opposite[T constraints.Float](fa, fb T) bool {
	return sign(fa)*sign(fb) < 0
}
