package server

import (
	"context"
	"sync"
	"time"

	"eqsolver/internal/cache"
	"eqsolver/internal/solver"
	"eqsolver/internal/sse"
)

// параметры решения, как они приходят в JSON
type SolveParams struct {
	Func      string   `json:"func"`
	Method    string   `json:"method"`
	A         *float64 `json:"a"`
	B         *float64 `json:"b"`
	Precision float64  `json:"precision"`
	MaxIter   int      `json:"maxIter"`
	NSample   int      `json:"nSample"`
	Seed      *int64   `json:"seed"`
}

// Config превращает параметры запроса в конфигурацию решателя.
// Нулевые значения заменяются значениями по умолчанию, остальное проверяет solver.Config.Validate.
func (p SolveParams) Config() (solver.Config, error) {
	cfg := solver.DefaultConfig()

	if p.Method != "" {
		m, err := solver.ParseMethod(p.Method)
		if err != nil {
			return cfg, err
		}
		cfg.Method = m
	}
	if p.A != nil && p.B != nil {
		cfg.Interval = solver.NewInterval(*p.A, *p.B)
	} else if p.A != nil || p.B != nil {
		return cfg, errMissingBound
	}
	if p.Precision != 0 {
		cfg.Precision = p.Precision
	}
	if p.MaxIter != 0 {
		cfg.MaxIter = p.MaxIter
	}
	if p.NSample != 0 {
		cfg.NSample = p.NSample
	}
	if p.Seed != nil {
		seed, err := solver.ParseSeed(*p.Seed)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithSeed(seed)
	}

	return cfg, cfg.Validate()
}

// параметры серии решений с последовательными seed
type SweepParams struct {
	SolveParams
	Count int `json:"count"`
}

// состояние одного запуска
type RunState struct {
	ID        string
	Params    SolveParams
	CreatedAt time.Time

	mu       sync.Mutex
	bracket  solver.Interval
	lastIter solver.Iter
	iters    []solver.Iter
	err      string
	done     bool
	cancel   context.CancelFunc
}

func (rs *RunState) addIter(it solver.Iter) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.lastIter = it
	rs.iters = append(rs.iters, it)
}

func (rs *RunState) setBracket(iv solver.Interval) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.bracket = iv
}

func (rs *RunState) finish(errText string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.err = errText
	rs.done = errText == ""
}

func (rs *RunState) Bracket() solver.Interval {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.bracket
}

// Iters возвращает копию накопленных итераций
func (rs *RunState) Iters() []solver.Iter {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return append([]solver.Iter(nil), rs.iters...)
}

// Status — снимок состояния запуска
func (rs *RunState) Status() (done bool, errText string, last solver.Iter) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.done, rs.err, rs.lastIter
}

// Server держит запуски, SSE-хаб и кэш решений
type Server struct {
	cache cache.Cache
	hub   *sse.Hub

	runsMu sync.Mutex
	runs   map[string]*RunState
}

// New создаёт сервер; c == nil — кэш в памяти
func New(c cache.Cache) *Server {
	if c == nil {
		c = cache.NewMemory()
	}
	return &Server{
		cache: c,
		hub:   sse.NewHub(),
		runs:  map[string]*RunState{},
	}
}

func (s *Server) saveRun(rs *RunState) {
	s.runsMu.Lock()
	defer s.runsMu.Unlock()
	s.runs[rs.ID] = rs
}

func (s *Server) getRun(id string) *RunState {
	s.runsMu.Lock()
	defer s.runsMu.Unlock()
	return s.runs[id]
}
