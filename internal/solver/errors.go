package solver

import "errors"

var (
	// ErrInvalidParameter — некорректная конфигурация; возникает только при проверке параметров
	ErrInvalidParameter = errors.New("solver: invalid parameter")

	// ErrNoBracketFound — за отведённое число выборок не найдена смена знака
	ErrNoBracketFound = errors.New("solver: no bracket found")

	// ErrDegenerateIteration — метод секущих упёрся в деление на ноль
	ErrDegenerateIteration = errors.New("solver: degenerate iteration")

	// ErrStopped — специальная ошибка для принудительной остановки из колбэка
	ErrStopped = errors.New("solver: stopped by callback")
)
