package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"eqsolver/internal/cache"
	"eqsolver/internal/report"
	"eqsolver/internal/solver"
)

const (
	defaultSweepCount = 10
	maxSweepCount     = 1000
)

var errMissingBound = fmt.Errorf("%w: a and b must be given together", solver.ErrInvalidParameter)

// SolveResponse — ответ /solve
type SolveResponse struct {
	solver.Result
	Cached bool `json:"cached"`
}

// SweepResponse — ответ /sweep
type SweepResponse struct {
	Seeds     []uint32       `json:"seeds"`
	Estimates []float64      `json:"estimates"`
	Failures  map[string]int `json:"failures"`
	Summary   report.Summary `json:"summary"`
}

// statusFor переводит ошибку решателя в HTTP-статус
func statusFor(err error) int {
	switch {
	case errors.Is(err, solver.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrNoBracketFound), errors.Is(err, solver.ErrDegenerateIteration):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// decodeParams разбирает тело запроса, конфигурацию и выражение
func decodeParams(r *http.Request, dst any, p *SolveParams) (solver.Config, solver.BatchFunc, int, error) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return solver.Config{}, nil, http.StatusBadRequest, fmt.Errorf("ошибка JSON: %w", err)
	}
	cfg, err := p.Config()
	if err != nil {
		return cfg, nil, http.StatusBadRequest, err
	}
	f, err := solver.NewEvalFunc(p.Func)
	if err != nil {
		return cfg, nil, http.StatusBadRequest, fmt.Errorf("ошибка в выражении функции: %w", err)
	}
	return cfg, f, http.StatusOK, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Solve — синхронное решение; результаты с seed кэшируются
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "только POST", http.StatusMethodNotAllowed)
		return
	}

	var p SolveParams
	cfg, f, status, err := decodeParams(r, &p, &p)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	ctx := r.Context()
	key := ""
	if cfg.Seed != nil {
		key = cache.Key(p.Func, cfg)
		if raw, ok := s.cache.Get(ctx, key); ok {
			var res solver.Result
			if err := json.Unmarshal([]byte(raw), &res); err == nil {
				writeJSON(w, http.StatusOK, SolveResponse{Result: res, Cached: true})
				return
			}
			log.Printf("повреждённая запись кэша %s", key)
		}
	}

	sv, err := solver.New(cfg)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	res, err := sv.Trace(f, nil)
	if err != nil {
		http.Error(w, "ошибка при вычислении: "+err.Error(), statusFor(err))
		return
	}

	if key != "" {
		raw, _ := json.Marshal(res)
		// сохранить не удалось — не критично
		if err := s.cache.Set(ctx, key, string(raw)); err != nil {
			log.Printf("Warning: failed to cache result: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, SolveResponse{Result: res})
}

// Sweep решает одно уравнение с seed, seed+1, ... и сводит оценки в статистику
func (s *Server) Sweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "только POST", http.StatusMethodNotAllowed)
		return
	}

	var p SweepParams
	cfg, f, status, err := decodeParams(r, &p, &p.SolveParams)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	if p.Count == 0 {
		p.Count = defaultSweepCount
	}
	if p.Count < 0 || p.Count > maxSweepCount {
		http.Error(w, fmt.Sprintf("count должен быть от 1 до %d", maxSweepCount), http.StatusBadRequest)
		return
	}
	var base int64
	if p.Seed != nil {
		base = *p.Seed
	}
	if _, err := solver.ParseSeed(base + int64(p.Count) - 1); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := SweepResponse{Failures: map[string]int{}}
	for i := 0; i < p.Count; i++ {
		seed := uint32(base + int64(i))
		sv, err := solver.New(cfg.WithSeed(seed))
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		x, err := sv.Solve(f)
		if err != nil {
			if statusFor(err) != http.StatusUnprocessableEntity {
				http.Error(w, "ошибка при вычислении: "+err.Error(), statusFor(err))
				return
			}
			resp.Failures[err.Error()]++
			continue
		}
		resp.Seeds = append(resp.Seeds, seed)
		resp.Estimates = append(resp.Estimates, x)
	}

	if len(resp.Estimates) == 0 {
		http.Error(w, "ни одно решение не удалось", http.StatusUnprocessableEntity)
		return
	}
	resp.Summary, err = report.Summarize(resp.Estimates)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// StartRun запускает решение в фоне и транслирует итерации через SSE
func (s *Server) StartRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "только POST", http.StatusMethodNotAllowed)
		return
	}

	var p SolveParams
	cfg, f, status, err := decodeParams(r, &p, &p)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}
	sv, err := solver.New(cfg)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	rs := &RunState{
		ID:        id,
		Params:    p,
		CreatedAt: time.Now(),
		cancel:    cancel,
	}
	s.saveRun(rs)

	go s.run(ctx, rs, sv, f)

	writeJSON(w, http.StatusOK, map[string]any{
		"id":     id,
		"config": sv.Config(),
	})
}

func (s *Server) publish(id string, payload map[string]any) {
	msg, _ := json.Marshal(payload)
	s.hub.Publish(id, string(msg))
}

// stoppableFunc прерывает вычисления f после остановки запуска,
// в том числе посреди поиска отрезка
type stoppableFunc struct {
	ctx context.Context
	f   solver.BatchFunc
}

func (sf stoppableFunc) Eval(x float64) (float64, error) {
	if sf.ctx.Err() != nil {
		return math.NaN(), solver.ErrStopped
	}
	return sf.f.Eval(x)
}

func (sf stoppableFunc) EvalBatch(xs []float64) ([]float64, error) {
	if sf.ctx.Err() != nil {
		return nil, solver.ErrStopped
	}
	return sf.f.EvalBatch(xs)
}

// run выполняет решение; события: start, bracket, iter, done, error, stopped
func (s *Server) run(ctx context.Context, rs *RunState, sv *solver.Solver, f solver.BatchFunc) {
	defer rs.cancel()
	id := rs.ID

	s.publish(id, map[string]any{"type": "start", "id": id})

	fail := func(err error) {
		if errors.Is(err, solver.ErrStopped) {
			rs.finish("остановлено")
			s.publish(id, map[string]any{"type": "stopped"})
			return
		}
		rs.finish("ошибка при вычислении: " + err.Error())
		s.publish(id, map[string]any{"type": "error", "err": "ошибка при вычислении: " + err.Error()})
	}

	sf := stoppableFunc{ctx: ctx, f: f}
	bracket, samples, err := sv.Bracket(sf)
	if err != nil {
		fail(err)
		return
	}
	rs.setBracket(bracket)
	s.publish(id, map[string]any{
		"type":    "bracket",
		"bracket": bracket,
		"samples": samples,
	})

	x, err := sv.Refine(bracket, sf, func(it solver.Iter) error {
		select {
		case <-ctx.Done():
			return solver.ErrStopped
		default:
		}
		rs.addIter(it)
		s.publish(id, map[string]any{"type": "iter", "iter": it})
		return nil
	})
	if err != nil {
		fail(err)
		return
	}

	fx, err := f.Eval(x)
	if err != nil {
		fail(err)
		return
	}
	rs.finish("")
	s.publish(id, map[string]any{
		"type": "done",
		"x":    x,
		"fx":   fx,
	})
}

// StopRun — прерывание запуска
func (s *Server) StopRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "только POST", http.StatusMethodNotAllowed)
		return
	}
	rs, ok := s.runFromQuery(w, r)
	if !ok {
		return
	}
	rs.cancel()
	w.WriteHeader(http.StatusNoContent)
}

// RunStatus — текущее состояние запуска
func (s *Server) RunStatus(w http.ResponseWriter, r *http.Request) {
	rs, ok := s.runFromQuery(w, r)
	if !ok {
		return
	}
	done, errText, last := rs.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"id":      rs.ID,
		"done":    done,
		"err":     errText,
		"bracket": rs.Bracket(),
		"last":    last,
		"iters":   len(rs.Iters()),
	})
}

func (s *Server) runFromQuery(w http.ResponseWriter, r *http.Request) (*RunState, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return nil, false
	}
	rs := s.getRun(id)
	if rs == nil {
		http.Error(w, "неизвестный id", http.StatusNotFound)
		return nil, false
	}
	return rs, true
}

// ExportCSV — экспорт итераций в CSV
func (s *Server) ExportCSV(w http.ResponseWriter, r *http.Request) {
	rs, ok := s.runFromQuery(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=iterations_"+rs.ID+".csv")

	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"k", "a", "b", "x", "f(x)", "len"})

	for _, it := range rs.Iters() {
		_ = cw.Write([]string{
			strconv.Itoa(it.K),
			fmtFloat(it.A),
			fmtFloat(it.B),
			fmtFloat(it.X),
			fmtFloat(it.FX),
			fmtFloat(it.Len),
		})
	}
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 16, 64)
}

// Stream — SSE-стрим событий запуска
func (s *Server) Stream(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "требуется id", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.hub.Subscribe(id)
	defer cancel()

	// заголовки уходят сразу, не дожидаясь первого события
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			fmt.Fprintf(w, "event: msg\n")
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
