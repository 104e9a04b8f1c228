package solver

import "fmt"

// Result — итог одного решения
type Result struct {
	Estimate   float64  `json:"estimate"`
	Bracket    Interval `json:"bracket"`
	Samples    int      `json:"samples"`
	Iterations int      `json:"iterations"`
	Evals      int      `json:"evals"`
}

// Solver ищет корень f(x) = 0: сначала Locate находит отрезок со сменой знака,
// затем выбранный метод сужает его до одного числа.
//
// Solver хранит собственный поток случайных чисел и не годится для одновременных вызовов
// из нескольких горутин; для параллельных решений нужны отдельные экземпляры.
type Solver struct {
	cfg Config
	src Source
}

// New проверяет конфигурацию и создаёт решатель.
// Если Seed задан, выборки воспроизводимы; иначе берётся crypto/rand.
func New(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var src Source
	if cfg.Seed != nil {
		src = NewSeededSource(*cfg.Seed)
	} else {
		src = NewEntropySource()
	}
	return newSolver(cfg, src), nil
}

// NewWithSource — как New, но с внешним источником случайных чисел; Seed игнорируется
func NewWithSource(cfg Config, src Source) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}
	return newSolver(cfg, src), nil
}

func newSolver(cfg Config, src Source) *Solver {
	cfg.Method = methodAliases[string(cfg.Method)]
	if cfg.Seed != nil {
		seed := *cfg.Seed
		cfg.Seed = &seed
	}
	return &Solver{cfg: cfg, src: src}
}

// Config возвращает копию конфигурации решателя
func (s *Solver) Config() Config {
	cfg := s.cfg
	if cfg.Seed != nil {
		seed := *cfg.Seed
		cfg.Seed = &seed
	}
	return cfg
}

// Solve решает f(x) = 0 и возвращает приближение корня
func (s *Solver) Solve(f Func) (float64, error) {
	res, err := s.Trace(f, nil)
	if err != nil {
		return 0, err
	}
	return res.Estimate, nil
}

// Trace — как Solve, но вызывает onIter после каждой итерации уточнения
// и возвращает подробности решения. Если onIter вернёт ErrStopped, решение прерывается.
// При ошибке Result содержит то, что успело накопиться, но не Estimate.
func (s *Solver) Trace(f Func, onIter IterFunc) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("%w: nil function", ErrInvalidParameter)
	}
	cf := &countingFunc{f: f}

	var res Result
	var err error
	res.Bracket, res.Samples, err = s.Bracket(cf)
	if err != nil {
		res.Evals = cf.evals
		return res, err
	}

	estimate, err := s.Refine(res.Bracket, cf, func(it Iter) error {
		res.Iterations = it.K
		return onIter.emit(it)
	})
	res.Evals = cf.evals
	if err != nil {
		return res, err
	}
	res.Estimate = estimate
	return res, nil
}

// Bracket ищет отрезок со сменой знака внутри сконфигурированного интервала.
// Каждый вызов продвигает поток случайных чисел решателя.
func (s *Solver) Bracket(f Func) (Interval, int, error) {
	return Locate(s.cfg.Interval, f, s.cfg.NSample, s.src)
}

// Refine сужает найденный отрезок выбранным методом
func (s *Solver) Refine(bracket Interval, f Func, onIter IterFunc) (float64, error) {
	switch s.cfg.Method {
	case Bisection:
		return RunBisection(bracket, f, s.cfg.Precision, onIter)
	case Secant:
		return RunSecant(bracket, f, s.cfg.MaxIter, onIter)
	case GoldenSection:
		return RunGoldenSection(bracket, f, s.cfg.Precision, onIter)
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidParameter, s.cfg.Method)
}
