package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"eqsolver/internal/report"
	"eqsolver/internal/solver"
)

type options struct {
	expr    string
	method  string
	a, b    float64
	prec    float64
	maxIter int
	nSample int
	seed    int64
	sweep   int
	verbose bool
}

func parseFlags(args []string) (options, error) {
	def := solver.DefaultConfig()
	var o options

	fs := flag.NewFlagSet("eqsolve", flag.ContinueOnError)
	fs.StringVar(&o.expr, "f", "", "функция f(x), например 'x*x - 2'")
	fs.StringVar(&o.method, "method", string(def.Method), "bisection, secant или golden_section")
	fs.Float64Var(&o.a, "a", def.Interval.Min, "левый конец интервала")
	fs.Float64Var(&o.b, "b", def.Interval.Max, "правый конец интервала")
	fs.Float64Var(&o.prec, "precision", def.Precision, "точность для bisection и golden_section")
	fs.IntVar(&o.maxIter, "max-iter", def.MaxIter, "максимум итераций для secant")
	fs.IntVar(&o.nSample, "n-sample", def.NSample, "максимум случайных выборок при поиске отрезка")
	fs.Int64Var(&o.seed, "seed", -1, "seed в [0, 2^32-1]; -1 — случайный")
	fs.IntVar(&o.sweep, "sweep", 0, "решить N раз с seed, seed+1, ... и вывести статистику")
	fs.BoolVar(&o.verbose, "v", false, "печатать итерации")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.expr == "" {
		return o, errors.New("требуется -f")
	}
	return o, nil
}

func (o options) config() (solver.Config, error) {
	m, err := solver.ParseMethod(o.method)
	if err != nil {
		return solver.Config{}, err
	}
	cfg := solver.Config{
		Method:    m,
		MaxIter:   o.maxIter,
		Interval:  solver.NewInterval(o.a, o.b),
		Precision: o.prec,
		NSample:   o.nSample,
	}
	if o.seed != -1 {
		seed, err := solver.ParseSeed(o.seed)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithSeed(seed)
	}
	return cfg, cfg.Validate()
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := o.config()
	if err != nil {
		return err
	}
	f, err := solver.NewEvalFunc(o.expr)
	if err != nil {
		return fmt.Errorf("ошибка в выражении функции: %w", err)
	}

	if o.sweep > 0 {
		return sweep(cfg, f, o.sweep, stdout)
	}

	sv, err := solver.New(cfg)
	if err != nil {
		return err
	}
	var onIter solver.IterFunc
	if o.verbose {
		onIter = func(it solver.Iter) error {
			fmt.Fprintf(stdout, "%4d  a=%.16g  b=%.16g  x=%.16g  f(x)=%.6g\n", it.K, it.A, it.B, it.X, it.FX)
			return nil
		}
	}
	res, err := sv.Trace(f, onIter)
	if err != nil {
		return err
	}
	if o.verbose {
		fmt.Fprintf(stdout, "bracket %v after %d samples, %d evaluations\n", res.Bracket, res.Samples, res.Evals)
	}
	fmt.Fprintf(stdout, "%.16g\n", res.Estimate)
	return nil
}

func sweep(cfg solver.Config, f solver.Func, n int, stdout io.Writer) error {
	var base uint32
	if cfg.Seed != nil {
		base = *cfg.Seed
	}
	if _, err := solver.ParseSeed(int64(base) + int64(n) - 1); err != nil {
		return err
	}

	var xs []float64
	failed := 0
	for i := 0; i < n; i++ {
		sv, err := solver.New(cfg.WithSeed(base + uint32(i)))
		if err != nil {
			return err
		}
		x, err := sv.Solve(f)
		if err != nil {
			// неудачей серии считается только отсутствие отрезка или вырожденная итерация
			if !errors.Is(err, solver.ErrNoBracketFound) && !errors.Is(err, solver.ErrDegenerateIteration) {
				return err
			}
			failed++
			continue
		}
		xs = append(xs, x)
	}
	if len(xs) == 0 {
		return fmt.Errorf("все %d решений завершились ошибкой", n)
	}

	s, err := report.Summarize(xs)
	if err != nil {
		return err
	}
	s.Print(stdout)
	fmt.Fprintf(stdout, "failed: %d\n", failed)
	return nil
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}
