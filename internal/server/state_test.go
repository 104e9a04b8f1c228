package server

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eqsolver/internal/solver"
)

func ptr[T any](v T) *T { return &v }

func TestSolveParams_Defaults(t *testing.T) {
	cfg, err := SolveParams{Func: "x"}.Config()
	require.NoError(t, err)

	def := solver.DefaultConfig()
	assert.Equal(t, def, cfg)
}

func TestSolveParams_Overrides(t *testing.T) {
	p := SolveParams{
		Method:    "golden",
		A:         ptr(3.0),
		B:         ptr(-1.0),
		Precision: 1e-6,
		MaxIter:   50,
		NSample:   20,
		Seed:      ptr(int64(42)),
	}
	cfg, err := p.Config()
	require.NoError(t, err)

	assert.Equal(t, solver.GoldenSection, cfg.Method)
	assert.Equal(t, solver.Interval{Min: -1, Max: 3}, cfg.Interval)
	assert.Equal(t, 1e-6, cfg.Precision)
	assert.Equal(t, 50, cfg.MaxIter)
	assert.Equal(t, 20, cfg.NSample)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint32(42), *cfg.Seed)
}

func TestSolveParams_Invalid(t *testing.T) {
	for name, p := range map[string]SolveParams{
		"method":   {Method: "brent"},
		"only b":   {B: ptr(1.0)},
		"seed":     {Seed: ptr(int64(-7))},
		"maxIter":  {MaxIter: -1},
		"infinite": {A: ptr(0.0), B: ptr(math.Inf(1))},
	} {
		_, err := p.Config()
		assert.ErrorIs(t, err, solver.ErrInvalidParameter, name)
	}
}

func TestRunState_Accessors(t *testing.T) {
	rs := &RunState{ID: "r"}
	rs.setBracket(solver.Interval{Min: 0, Max: 1})
	rs.addIter(solver.Iter{K: 1})
	rs.addIter(solver.Iter{K: 2})

	iters := rs.Iters()
	require.Len(t, iters, 2)
	iters[0].K = 99
	assert.Equal(t, 1, rs.Iters()[0].K)

	assert.Equal(t, solver.Interval{Min: 0, Max: 1}, rs.Bracket())

	rs.finish("")
	done, errText, last := rs.Status()
	assert.True(t, done)
	assert.Empty(t, errText)
	assert.Equal(t, 2, last.K)
}
