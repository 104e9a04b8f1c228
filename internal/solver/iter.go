package solver

import "errors"

// Iter — одна итерация уточняющего метода
type Iter struct {
	K   int     `json:"k"`
	A   float64 `json:"a"`
	B   float64 `json:"b"`
	X   float64 `json:"x"`
	FX  float64 `json:"fx"`
	Len float64 `json:"len"`
}

// IterFunc вызывается после каждой итерации; если вернёт ошибку — алгоритм прерывается
type IterFunc func(Iter) error

func (fn IterFunc) emit(it Iter) error {
	if fn == nil {
		return nil
	}
	if err := fn(it); err != nil {
		if errors.Is(err, ErrStopped) {
			return ErrStopped
		}
		return err
	}
	return nil
}
