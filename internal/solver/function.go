package solver

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// Func — скалярная функция f(x), корень которой ищется
type Func interface {
	Eval(x float64) (float64, error)
}

// BatchFunc — необязательная возможность Func: вычисление сразу на наборе точек.
// Результат обязан совпадать с поэлементным вызовом Eval.
type BatchFunc interface {
	Func
	EvalBatch(xs []float64) ([]float64, error)
}

// FuncOf оборачивает обычную функцию Go в Func
func FuncOf(f func(float64) float64) Func {
	return plainFunc(f)
}

type plainFunc func(float64) float64

func (f plainFunc) Eval(x float64) (float64, error) {
	return f(x), nil
}

// evalAll вычисляет f во всех точках: пакетно, если f это умеет, иначе по одной
func evalAll(f Func, xs []float64) ([]float64, error) {
	if bf, ok := f.(BatchFunc); ok {
		ys, err := bf.EvalBatch(xs)
		if err != nil {
			return nil, err
		}
		if len(ys) != len(xs) {
			return nil, fmt.Errorf("batch evaluation returned %d values for %d points", len(ys), len(xs))
		}
		return ys, nil
	}

	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := f.Eval(x)
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}
	return ys, nil
}

// countingFunc считает вызовы f в рамках одного решения
type countingFunc struct {
	f     Func
	evals int
}

func (c *countingFunc) Eval(x float64) (float64, error) {
	c.evals++
	return c.f.Eval(x)
}

func (c *countingFunc) EvalBatch(xs []float64) ([]float64, error) {
	c.evals += len(xs)
	return evalAll(c.f, xs)
}

// exprFunc — реализация Func на основе govaluate
type exprFunc struct {
	src    string
	expr   *govaluate.EvaluableExpression
	params map[string]interface{}
}

var exprFuncs = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
	"abs":  unary(math.Abs),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow: ожидается 2 аргумента, получено %d", len(args))
		}
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("ожидается 1 аргумент, получено %d", len(args))
		}
		return fn(toFloat(args[0])), nil
	}
}

// NewEvalFunc создаёт вычислимую функцию по строке f(x).
// Запятая разделяет аргументы (pow(x, 2)), дробная часть пишется через точку.
// Возвращаемое значение не годится для одновременного использования из нескольких горутин.
func NewEvalFunc(expr string) (BatchFunc, error) {
	src := strings.TrimSpace(expr)
	if src == "" {
		return nil, fmt.Errorf("%w: пустое выражение", ErrInvalidParameter)
	}

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(src, exprFuncs)
	if err != nil {
		return nil, err
	}
	for _, tok := range parsed.Tokens() {
		if tok.Kind == govaluate.VARIABLE && tok.Value != "x" {
			return nil, fmt.Errorf("неизвестная переменная %v, допустима только x", tok.Value)
		}
	}

	return &exprFunc{
		src:    src,
		expr:   parsed,
		params: map[string]interface{}{"x": 0.0},
	}, nil
}

func (f *exprFunc) String() string {
	return f.src
}

func (f *exprFunc) Eval(x float64) (float64, error) {
	f.params["x"] = x
	v, err := f.expr.Evaluate(f.params)
	if err != nil {
		return math.NaN(), err
	}

	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case bool:
		return math.NaN(), fmt.Errorf("выражение вернуло логическое значение")
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN(), err
		}
		return parsed, nil
	default:
		return math.NaN(), fmt.Errorf("выражение не вернуло число: %T", v)
	}
}

func (f *exprFunc) EvalBatch(xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := f.Eval(x)
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}
	return ys, nil
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
