package solver

import (
	"fmt"
	"math"
	"strings"
)

// Method — алгоритм уточнения корня
type Method string

const (
	Bisection     Method = "bisection"
	Secant        Method = "secant"
	GoldenSection Method = "golden_section"
)

// старые короткие имена тоже принимаются
var methodAliases = map[string]Method{
	"bisection":      Bisection,
	"bisect":         Bisection,
	"secant":         Secant,
	"golden_section": GoldenSection,
	"golden":         GoldenSection,
}

// ParseMethod разбирает имя алгоритма без учёта регистра
func ParseMethod(name string) (Method, error) {
	m, ok := methodAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: unknown method %q, expected one of bisection, secant, golden_section", ErrInvalidParameter, name)
	}
	return m, nil
}

// ParseSeed проверяет, что seed укладывается в [0, 2^32-1]
func ParseSeed(v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: seed expects integer between 0 and %d, got %d", ErrInvalidParameter, uint32(math.MaxUint32), v)
	}
	return uint32(v), nil
}

// Config — неизменяемый набор параметров решателя
type Config struct {
	Method    Method   `json:"method"`
	MaxIter   int      `json:"maxIter"`
	Interval  Interval `json:"interval"`
	Precision float64  `json:"precision"`
	NSample   int      `json:"nSample"`
	Seed      *uint32  `json:"seed,omitempty"`
}

// DefaultConfig — значения по умолчанию
func DefaultConfig() Config {
	return Config{
		Method:    Bisection,
		MaxIter:   10000,
		Interval:  Interval{Min: -10000, Max: 10000},
		Precision: 1e-10,
		NSample:   100000,
	}
}

// WithSeed возвращает копию конфигурации с заданным seed
func (c Config) WithSeed(seed uint32) Config {
	c.Seed = &seed
	return c
}

// Validate проверяет параметры; все ошибки оборачивают ErrInvalidParameter
func (c Config) Validate() error {
	if _, ok := methodAliases[string(c.Method)]; !ok {
		return fmt.Errorf("%w: unknown method %q", ErrInvalidParameter, c.Method)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("%w: maxIter expects integer greater than 0, got %d", ErrInvalidParameter, c.MaxIter)
	}
	if !finite(c.Interval.Min) || !finite(c.Interval.Max) {
		return fmt.Errorf("%w: interval expects two finite numbers, got %v", ErrInvalidParameter, c.Interval)
	}
	if c.Interval.Min > c.Interval.Max {
		return fmt.Errorf("%w: interval %v is not sorted", ErrInvalidParameter, c.Interval)
	}
	if !finite(c.Interval.Width()) {
		return fmt.Errorf("%w: interval %v is too wide", ErrInvalidParameter, c.Interval)
	}
	if !(c.Precision > 0) || math.IsInf(c.Precision, 1) {
		return fmt.Errorf("%w: precision expects positive number, got %g", ErrInvalidParameter, c.Precision)
	}
	if c.NSample <= 0 {
		return fmt.Errorf("%w: nSample expects integer greater than 0, got %d", ErrInvalidParameter, c.NSample)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
