package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBisection_Sqrt2(t *testing.T) {
	x, err := RunBisection(Interval{Min: 0, Max: 2}, FuncOf(square2), 1e-10, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-10)
}

func TestRunBisection_KeepsSignChange(t *testing.T) {
	var iters []Iter
	_, err := RunBisection(Interval{Min: 1, Max: 2}, FuncOf(cubic), 1e-12, func(it Iter) error {
		iters = append(iters, it)
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, iters)

	prevLen := 1.0
	for _, it := range iters {
		assert.True(t, opposite(cubic(it.A), cubic(it.B)), "iteration %d lost the sign change", it.K)
		assert.Less(t, it.Len, prevLen)
		prevLen = it.Len
	}
	// ширина делится пополам, значит итераций не больше log2(1/1e-12)+1
	assert.LessOrEqual(t, len(iters), 41)
}

func TestRunBisection_ReversedSigns(t *testing.T) {
	f := FuncOf(func(x float64) float64 { return 3 - x })
	x, err := RunBisection(Interval{Min: 0, Max: 10}, f, 1e-9, nil)
	require.NoError(t, err)
	assert.InDelta(t, 3, x, 1e-9)
}

func TestRunBisection_PrecisionBelowUlpTerminates(t *testing.T) {
	x, err := RunBisection(Interval{Min: 1, Max: 2}, FuncOf(square2), 1e-300, nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-15)
}

func TestRunBisection_WideIntervalNoIterations(t *testing.T) {
	cf := &countingFunc{f: FuncOf(square2)}
	x, err := RunBisection(Interval{Min: 0, Max: 2}, cf, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1, cf.evals)
}

func TestRunBisection_Stopped(t *testing.T) {
	_, err := RunBisection(Interval{Min: 0, Max: 2}, FuncOf(square2), 1e-10, func(it Iter) error {
		if it.K == 3 {
			return ErrStopped
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrStopped)
}
