package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_EndpointsAlreadyBracket(t *testing.T) {
	src := &seqSource{vals: []float64{0.5}}
	iv, samples, err := Locate(Interval{Min: 0, Max: 2}, FuncOf(square2), 10, src)
	require.NoError(t, err)
	assert.Equal(t, Interval{Min: 0, Max: 2}, iv)
	assert.Equal(t, 0, samples)
	assert.Equal(t, 0, src.i, "no random draws expected")
}

func TestLocate_SamplesAndSortsPair(t *testing.T) {
	// на концах [0, 1] оба значения положительны
	f := func(x float64) float64 { return (x - 0.25) * (x - 0.75) }
	src := &seqSource{vals: []float64{0.9, 0.5}}

	iv, samples, err := Locate(Interval{Min: 0, Max: 1}, FuncOf(f), 10, src)
	require.NoError(t, err)
	assert.Equal(t, 1, samples)
	assert.Equal(t, Interval{Min: 0.5, Max: 0.9}, iv)
	assert.True(t, opposite(f(iv.Min), f(iv.Max)))
}

func TestLocate_NoRealRoot(t *testing.T) {
	f := FuncOf(func(x float64) float64 { return x*x + 1 })
	for _, seed := range []uint32{0, 1, 42} {
		_, samples, err := Locate(Interval{Min: -10, Max: 10}, f, 500, NewSeededSource(seed))
		require.ErrorIs(t, err, ErrNoBracketFound)
		assert.Equal(t, 500, samples)
	}
}

func TestLocate_ExactZeroIsResampled(t *testing.T) {
	// f(0) = 0, а на (0, 1] f > 0: смены знака нет
	f := FuncOf(func(x float64) float64 { return x })
	src := &seqSource{vals: []float64{0, 0.3, 0.7}}

	_, samples, err := Locate(Interval{Min: 0, Max: 1}, f, 25, src)
	require.ErrorIs(t, err, ErrNoBracketFound)
	assert.Equal(t, 25, samples)
	assert.Equal(t, 50, src.i)
}

func TestLocate_NaNNeverBrackets(t *testing.T) {
	_, _, err := Locate(Interval{Min: -1, Max: 1}, FuncOf(nan), 20, NewSeededSource(3))
	assert.ErrorIs(t, err, ErrNoBracketFound)
}

func TestLocate_UsesBatchEvaluation(t *testing.T) {
	rf := &recordFunc{f: func(x float64) float64 { return x*x - 1 }}
	iv, samples, err := Locate(Interval{Min: -2, Max: 2}, rf, 1000, NewSeededSource(11))
	require.NoError(t, err)

	assert.Equal(t, samples+1, rf.batches)
	assert.Len(t, rf.points, 2*rf.batches)
	assert.LessOrEqual(t, iv.Min, iv.Max)
	assert.True(t, opposite(rf.f(iv.Min), rf.f(iv.Max)))
	for _, x := range rf.points {
		assert.GreaterOrEqual(t, x, -2.0)
		assert.LessOrEqual(t, x, 2.0)
	}
}

func TestLocate_PropagatesEvalError(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := Locate(Interval{Min: 0, Max: 1}, errFunc{err: boom}, 5, NewSeededSource(1))
	assert.ErrorIs(t, err, boom)
}

type errFunc struct{ err error }

func (e errFunc) Eval(float64) (float64, error) { return 0, e.err }
